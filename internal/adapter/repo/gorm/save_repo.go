package gormrepo

import (
	"context"
	"errors"

	"infernocorp/internal/adapter/repo/gorm/model"
	"infernocorp/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaveRepo struct {
	db *gorm.DB
}

func NewSaveRepo(db *gorm.DB) SaveRepo {
	return SaveRepo{db: db}
}

func (r SaveRepo) Get(ctx context.Context, key string) (ports.SaveRecord, error) {
	var m model.SaveSlot
	if err := dbFrom(ctx, r.db).Where("slot_key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SaveRecord{}, ports.ErrNotFound
		}
		return ports.SaveRecord{}, err
	}
	return ports.SaveRecord{
		Key:       m.SlotKey,
		Blob:      m.Blob,
		Day:       int(m.Day),
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func (r SaveRepo) Put(ctx context.Context, rec ports.SaveRecord) error {
	m := model.SaveSlot{
		SlotKey:   rec.Key,
		Blob:      rec.Blob,
		Day:       int32(rec.Day),
		UpdatedAt: rec.UpdatedAt,
	}
	return dbFrom(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"blob", "day", "updated_at"}),
		}).
		Create(&m).Error
}

func (r SaveRepo) Delete(ctx context.Context, key string) error {
	return dbFrom(ctx, r.db).Where("slot_key = ?", key).Delete(&model.SaveSlot{}).Error
}
