package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"

	"infernocorp/internal/domain/game"
)

// SaveKey is the single slot a game is persisted under.
const SaveKey = "infernocorp.save"

var ErrCorruptSave = errors.New("corrupt save")

// Meta travels next to the state in every save blob.
type Meta struct {
	CreatedAt  time.Time `json:"created_at"`
	SavedAt    time.Time `json:"saved_at"`
	Day        int       `json:"day"`
	LastOp     string    `json:"last_op"`
	LastSeed   int64     `json:"last_seed"`
	Operations int64     `json:"operations"`
}

type envelope struct {
	Meta  Meta        `json:"meta"`
	State *game.State `json:"state"`
}

func Encode(state *game.State, meta Meta) ([]byte, error) {
	blob, err := sonic.ConfigStd.Marshal(envelope{Meta: meta, State: state})
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return blob, nil
}

func Decode(blob []byte) (*game.State, Meta, error) {
	if !gjson.ValidBytes(blob) {
		return nil, Meta{}, fmt.Errorf("%w: not valid json", ErrCorruptSave)
	}
	var env envelope
	if err := sonic.ConfigStd.Unmarshal(blob, &env); err != nil {
		return nil, Meta{}, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	if env.State == nil {
		return nil, Meta{}, fmt.Errorf("%w: missing state", ErrCorruptSave)
	}
	if env.State.Selection.Phase == "" {
		env.State.Selection.Phase = game.PhaseIdle
	}
	return env.State, env.Meta, nil
}

// PeekMeta reads the meta block without decoding the whole state.
func PeekMeta(blob []byte) (Meta, bool) {
	m := gjson.GetBytes(blob, "meta")
	if !m.Exists() {
		return Meta{}, false
	}
	return Meta{
		CreatedAt:  m.Get("created_at").Time(),
		SavedAt:    m.Get("saved_at").Time(),
		Day:        int(m.Get("day").Int()),
		LastOp:     m.Get("last_op").String(),
		LastSeed:   m.Get("last_seed").Int(),
		Operations: m.Get("operations").Int(),
	}, true
}
