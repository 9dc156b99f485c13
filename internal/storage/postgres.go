package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// StoreEntry is one key-value row. The whole application state is a handful
// of rows in this table.
type StoreEntry struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     []byte    `gorm:"column:value;type:bytea"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (StoreEntry) TableName() string {
	return "store_entries"
}

type postgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to Postgres and returns a Store backed by a
// single key-value table.
func NewPostgresStore(databaseURL string) (Store, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&StoreEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database connected and migrated successfully")
	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry StoreEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return entry.Value, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	entry := StoreEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&StoreEntry{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
