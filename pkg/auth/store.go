package auth

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lifehub/entities"
)

// SettingsStore reads and writes the settings key/value table.
type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore { return &SettingsStore{db: db} }

// Get returns the value for key, or ("", false) when the row is absent.
func (s *SettingsStore) Get(ctx context.Context, key string) (string, bool, error) {
	var row entities.Setting
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "get setting %s", key)
	}
	return row.Value, true, nil
}

// Set upserts the row for key.
func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entities.Setting{Key: key, Value: value}).Error
	if err != nil {
		return errors.Wrapf(err, "set setting %s", key)
	}
	return nil
}
