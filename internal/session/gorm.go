package session

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"spa_router_echo/internal/models"
)

// GormStore keeps session entries in the session_entries table
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a GormStore; the table is created by services.AutoMigrate
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get returns the value stored under key
func (s *GormStore) Get(ctx context.Context, key string) (string, error) {
	var entry models.SessionEntry
	err := s.db.WithContext(ctx).Where(&models.SessionEntry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

// Set upserts value under key
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	entry := models.SessionEntry{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete removes key
func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where(&models.SessionEntry{Key: key}).Delete(&models.SessionEntry{}).Error
}
