package database

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rpupo63/portfolio-sync/errs"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Entry is one persisted key.
type Entry struct {
	Key       string         `gorm:"column:storage_key;primaryKey"`
	Value     datatypes.JSON `gorm:"column:value;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (Entry) TableName() string {
	return "session_entries"
}

// SQLStorage keeps the session in a sqlite file through gorm.
type SQLStorage struct {
	db *gorm.DB
}

// NewSQLStorage opens (and migrates) the sqlite database at path.
// ":memory:" gives a throwaway database.
func NewSQLStorage(path string) (*SQLStorage, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, errs.NewStorageError("", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errs.NewStorageError("", err)
	}
	// sqlite allows a single writer; ":memory:" is also per connection.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, errs.NewStorageError("", err)
	}
	return &SQLStorage{db: db}, nil
}

func (s *SQLStorage) Get(key string, dst any) (bool, error) {
	var entry Entry
	err := s.db.First(&entry, "storage_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errs.NewStorageError(key, err)
	}
	if err := decode(entry.Value, dst); err != nil {
		return false, errs.NewStorageError(key, err)
	}
	return true, nil
}

func (s *SQLStorage) Set(key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return errs.NewStorageError(key, err)
	}

	entry := Entry{Key: key, Value: datatypes.JSON(raw), UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return errs.NewStorageError(key, err)
	}
	return nil
}

func (s *SQLStorage) Remove(key string) error {
	if err := s.db.Delete(&Entry{}, "storage_key = ?", key).Error; err != nil {
		return errs.NewStorageError(key, err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *SQLStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
