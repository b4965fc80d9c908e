package notify

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"infernocorp/internal/domain/game"
)

func TestFeedRecentNewestFirstAndWraps(t *testing.T) {
	f := NewFeed(3)
	assert.Empty(t, f.Recent(5))

	for _, msg := range []string{"a", "b", "c", "d"} {
		f.Notify(msg, game.SeverityInfo)
	}
	got := f.Recent(0)
	require.Len(t, got, 3)
	assert.Equal(t, "d", got[0].Message)
	assert.Equal(t, "b", got[2].Message)

	got = f.Recent(1)
	require.Len(t, got, 1)
	assert.Equal(t, "d", got[0].Message)
}

func TestLogSinkMapsSeverityToLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := LogSink{Logger: zap.New(core)}

	sink.Notify("saved", game.SeveritySuccess)
	sink.Notify("careful", game.SeverityWarning)
	sink.Notify("broken", game.SeverityError)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestMultiFansOut(t *testing.T) {
	a, b := NewFeed(4), NewFeed(4)
	Multi{a, nil, b}.Notify("hello", game.SeverityInfo)
	assert.Len(t, a.Recent(0), 1)
	assert.Len(t, b.Recent(0), 1)
}

func TestHubBroadcastsToWebsocketClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)

	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)
	hub.Notify("Mission accomplished", game.SeveritySuccess)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var entry Entry
	require.NoError(t, sonic.ConfigStd.Unmarshal(data, &entry))
	assert.Equal(t, "Mission accomplished", entry.Message)
	assert.Equal(t, game.SeveritySuccess, entry.Severity)
}
