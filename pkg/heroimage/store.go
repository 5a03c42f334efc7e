// Package heroimage is the per-page banner blob store, upserted by page key.
package heroimage

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lifehub/entities"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// Get returns the image for pageKey, or ("", false) when none is set.
func (s *Store) Get(ctx context.Context, pageKey string) (string, bool, error) {
	var row entities.HeroImage
	err := s.db.WithContext(ctx).First(&row, "page_key = ?", pageKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "get hero image %s", pageKey)
	}
	return row.ImageData, true, nil
}

// Set inserts or replaces the image for pageKey.
func (s *Store) Set(ctx context.Context, pageKey, imageData string) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"image_data", "updated_at"}),
	}).Create(&entities.HeroImage{PageKey: pageKey, ImageData: imageData}).Error
	if err != nil {
		return errors.Wrapf(err, "set hero image %s", pageKey)
	}
	return nil
}

// Delete removes the image for pageKey; absent keys are not an error.
func (s *Store) Delete(ctx context.Context, pageKey string) error {
	err := s.db.WithContext(ctx).Delete(&entities.HeroImage{}, "page_key = ?", pageKey).Error
	if err != nil {
		return errors.Wrapf(err, "delete hero image %s", pageKey)
	}
	return nil
}
