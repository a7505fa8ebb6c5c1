package kvstore

import (
	"context"
	"time"

	"agroalerta/config"
	"agroalerta/internal/errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// blobModel is the persistence model for one stored snapshot.
type blobModel struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (blobModel) TableName() string {
	return "blobs"
}

// sqliteStore implements Store on a single-table SQLite database via GORM.
type sqliteStore struct {
	db *gorm.DB
}

// NewSQLite opens (or creates) the snapshot database at the configured path.
func NewSQLite(cfg *config.Config) (Store, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Storage.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open snapshot store at %s", cfg.Storage.Path)
	}

	if err := db.AutoMigrate(&blobModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate snapshot store")
	}

	return &sqliteStore{db: db}, nil
}

// Get retrieves the blob stored under key, or ErrKeyNotFound.
func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var blob blobModel
	err := s.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read key %s", key)
	}

	return blob.Value, nil
}

// Set stores the blob under key, overwriting any previous value.
func (s *sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	blob := blobModel{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Save(&blob).Error
	if err != nil {
		return errors.Wrapf(err, "failed to write key %s", key)
	}

	return nil
}

// Delete removes the key.
func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&blobModel{}, "key = ?", key).Error
	if err != nil {
		return errors.Wrapf(err, "failed to delete key %s", key)
	}

	return nil
}
