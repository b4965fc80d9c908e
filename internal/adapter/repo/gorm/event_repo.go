package gormrepo

import (
	"context"

	"infernocorp/internal/adapter/repo/gorm/model"
	"infernocorp/internal/domain/game"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JournalRepo struct {
	db *gorm.DB
}

func NewJournalRepo(db *gorm.DB) JournalRepo {
	return JournalRepo{db: db}
}

func (r JournalRepo) Append(ctx context.Context, slot string, events []game.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.JournalEvent, 0, len(events))
	for _, e := range events {
		b, err := sonic.ConfigStd.Marshal(e.Payload)
		if err != nil {
			return err
		}
		rows = append(rows, model.JournalEvent{
			SlotKey:    slot,
			Type:       e.Type,
			Day:        int32(e.Day),
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return dbFrom(ctx, r.db).Create(&rows).Error
}

func (r JournalRepo) ListBySlot(ctx context.Context, slot string, limit int) ([]game.Event, error) {
	rows := []model.JournalEvent{}
	query := dbFrom(ctx, r.db).
		Where(&model.JournalEvent{SlotKey: slot}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]game.Event, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = sonic.ConfigStd.Unmarshal(row.Payload, &payload)
		}
		out = append(out, game.Event{
			Type:       row.Type,
			Day:        int(row.Day),
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
