// Package bin implements the soft-delete staging area: deleted records are
// snapshotted as JSON tagged with their origin kind, and can be re-inserted
// into the origin collection under a fresh id.
package bin

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"lifehub/entities"
	"lifehub/pkg/resource"
)

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

// record is what every restorable entity pointer satisfies via entities.Meta.
type record interface {
	ResetForInsert()
}

// prototype returns an empty entity for a kind. The switch is exhaustive over
// the closed Kind set; a kind missing here cannot be restored, so new kinds
// must be added to both places.
func prototype(k resource.Kind) (record, bool) {
	switch k {
	case resource.KindDiary:
		return &entities.DiaryEntry{}, true
	case resource.KindPlans:
		return &entities.PlannerTask{}, true
	case resource.KindPlannerCategories:
		return &entities.PlannerCategory{}, true
	case resource.KindExperiments:
		return &entities.Experiment{}, true
	case resource.KindMovies:
		return &entities.Movie{}, true
	case resource.KindRecipes:
		return &entities.Recipe{}, true
	case resource.KindCourses:
		return &entities.Course{}, true
	case resource.KindTravel:
		return &entities.TravelPlan{}, true
	case resource.KindStrategy:
		return &entities.StrategicPlan{}, true
	case resource.KindLibrary:
		return &entities.LibraryItem{}, true
	case resource.KindDocuments:
		return &entities.Document{}, true
	}
	return nil, false
}

// List returns the bin newest-deletion first.
func (s *Service) List(ctx context.Context) ([]entities.BinEntry, error) {
	var rows []entities.BinEntry
	if err := s.db.WithContext(ctx).Order("deletedAt DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list bin")
	}
	return rows, nil
}

// Stage appends a snapshot the client already holds. The source tag must name
// a known kind; the entry is stored under the canonical tag.
func (s *Service) Stage(ctx context.Context, source string, payload json.RawMessage) (*entities.BinEntry, error) {
	k, err := resource.ParseKind(source)
	if err != nil {
		return nil, err
	}
	entry := entities.BinEntry{Source: string(k), Data: payload}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, errors.Wrap(err, "stage bin entry")
	}
	return &entry, nil
}

// MoveToBin snapshots the record with the given id and deletes it, both in
// one transaction, so a crash cannot leave the record in both places.
func (s *Service) MoveToBin(ctx context.Context, kind resource.Kind, id uint) error {
	rec, ok := prototype(kind)
	if !ok {
		return errors.Wrap(resource.ErrUnknownKind, string(kind))
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(rec, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return resource.ErrNotFound
			}
			return errors.Wrapf(err, "load %s %d", kind, id)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return errors.Wrapf(err, "snapshot %s %d", kind, id)
		}
		entry := entities.BinEntry{Source: string(kind), Data: data}
		if err := tx.Create(&entry).Error; err != nil {
			return errors.Wrap(err, "stage bin entry")
		}
		if err := tx.Delete(rec).Error; err != nil {
			return errors.Wrapf(err, "delete %s %d", kind, id)
		}
		return nil
	})
}

// Restore re-inserts the snapshot into its origin collection and purges the
// entry, in one transaction. The restored record gets a fresh id. An entry
// whose source no longer parses is left in place and reported, never dropped.
func (s *Service) Restore(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry entities.BinEntry
		if err := tx.First(&entry, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return resource.ErrNotFound
			}
			return errors.Wrapf(err, "load bin entry %d", id)
		}
		k, err := resource.ParseKind(entry.Source)
		if err != nil {
			return err
		}
		rec, ok := prototype(k)
		if !ok {
			return errors.Wrap(resource.ErrUnknownKind, entry.Source)
		}
		if err := json.Unmarshal(entry.Data, rec); err != nil {
			return errors.Wrapf(err, "decode bin entry %d", id)
		}
		rec.ResetForInsert()
		if err := tx.Create(rec).Error; err != nil {
			return errors.Wrapf(err, "restore into %s", k)
		}
		if err := tx.Delete(&entities.BinEntry{}, id).Error; err != nil {
			return errors.Wrapf(err, "purge bin entry %d", id)
		}
		return nil
	})
}

// Purge permanently removes one entry; purging an absent id is not an error.
func (s *Service) Purge(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&entities.BinEntry{}, id).Error; err != nil {
		return errors.Wrapf(err, "purge bin entry %d", id)
	}
	return nil
}

// Empty wipes the bin.
func (s *Service) Empty(ctx context.Context) error {
	err := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.BinEntry{}).Error
	if err != nil {
		return errors.Wrap(err, "empty bin")
	}
	return nil
}
