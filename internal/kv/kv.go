// Package kv is the durable key/value store backing persistence: a
// single sqlite table of string entries keyed by reserved names.
package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry is one persisted blob.
type Entry struct {
	Key       string `gorm:"primarykey"`
	Value     string
	UpdatedAt time.Time
}

// Store wraps the sqlite database. Construct it once at process start
// and pass the handle around; there is no package-level connection.
type Store struct {
	db *gorm.DB
}

// Open connects to the database at path, creating the parent directory
// and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Get reads the value at key. The second return is false when the key
// has never been written.
func (s *Store) Get(key string) (string, bool, error) {
	var entry Entry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Put writes value under key, replacing any previous value.
func (s *Store) Put(key, value string) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Save(&entry).Error
}

// Delete removes the entry at key. Deleting a missing key is not an
// error.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
