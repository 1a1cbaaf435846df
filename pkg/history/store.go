package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultDBName = "history.db"
	defaultDBDir  = ".local/share/saverctl"
)

// Store is a sqlite-backed event log.
type Store struct {
	db *gorm.DB
}

// DefaultPath returns the default database location, creating its directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, defaultDBDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create database directory: %w", err)
	}

	return filepath.Join(dir, defaultDBName), nil
}

// Open opens the event log at path, migrating the schema. An empty path uses
// the default location.
func Open(path string) (*Store, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&Event{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends one state transition.
func (s *Store) Record(backend string, active bool, at time.Time) error {
	event := Event{
		Timestamp: at,
		Backend:   backend,
		Active:    active,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// Recent returns the most recent events, newest first.
func (s *Store) Recent(limit int) ([]Event, error) {
	var events []Event
	err := s.db.Order("timestamp DESC").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return events, nil
}

// LastEvent returns the most recent event, or nil when the log is empty.
func (s *Store) LastEvent() (*Event, error) {
	var event Event
	err := s.db.Order("timestamp DESC").First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest event: %w", err)
	}
	return &event, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
