package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// record is one stored collection blob
type record struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     []byte
	UpdatedAt time.Time
}

// TableName returns the table name for stored records
func (record) TableName() string {
	return "records"
}

// SQLiteStore persists collection blobs in a local SQLite file, the
// single-machine equivalent of per-browser local storage.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the store file at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns the blob stored under key, or ErrNotFound
func (s *SQLiteStore) Load(key string) ([]byte, error) {
	var rec record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

// Save writes the blob under key, replacing any previous value
func (s *SQLiteStore) Save(key string, value []byte) error {
	rec := record{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

// Delete removes the blob stored under key, if any
func (s *SQLiteStore) Delete(key string) error {
	return s.db.Delete(&record{}, "key = ?", key).Error
}
