package resource

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound signals an id that has no row, as opposed to a storage failure.
var ErrNotFound = errors.New("record not found")

// Record is the pointer side of an entity: anything with resettable identity
// columns (entities.Meta).
type Record[T any] interface {
	*T
	ResetForInsert()
}

// Store is the one repository implementation shared by every collection.
// Ordering is the only per-kind difference (creation time descending for all
// kinds except planner categories, which display in id order).
type Store[T any, PT Record[T]] struct {
	db    *gorm.DB
	kind  Kind
	order string
}

func NewStore[T any, PT Record[T]](db *gorm.DB, kind Kind) *Store[T, PT] {
	order := "created_at DESC"
	if kind == KindPlannerCategories {
		order = "id ASC"
	}
	return &Store[T, PT]{db: db, kind: kind, order: order}
}

func (s *Store[T, PT]) Kind() Kind { return s.kind }

// ListAll returns every record, composite fields already decoded. A row whose
// serialized column no longer parses fails the whole read.
func (s *Store[T, PT]) ListAll(ctx context.Context) ([]T, error) {
	var rows []T
	if err := s.db.WithContext(ctx).Order(s.order).Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "list %s", s.kind)
	}
	return rows, nil
}

// Create inserts rec under a fresh id and returns it with id and created_at
// filled in by the database.
func (s *Store[T, PT]) Create(ctx context.Context, rec PT) error {
	rec.ResetForInsert()
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return errors.Wrapf(err, "create %s", s.kind)
	}
	return nil
}

// Replace overwrites every mutable field of the row with id. It checks
// existence first so a missing row is ErrNotFound rather than a silent
// zero-row update, and re-reads the row afterwards so the caller gets the
// stored state, not an echo of its input.
func (s *Store[T, PT]) Replace(ctx context.Context, id uint, rec PT) (*T, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(PT(new(T))).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, errors.Wrapf(err, "check %s %d", s.kind, id)
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	err := s.db.WithContext(ctx).Model(PT(new(T))).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(rec).Error
	if err != nil {
		return nil, errors.Wrapf(err, "update %s %d", s.kind, id)
	}
	out := PT(new(T))
	if err := s.db.WithContext(ctx).First(out, id).Error; err != nil {
		return nil, errors.Wrapf(err, "reload %s %d", s.kind, id)
	}
	return out, nil
}

// Delete removes the row with id. Deleting an absent id is not an error.
func (s *Store[T, PT]) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(PT(new(T)), id).Error; err != nil {
		return errors.Wrapf(err, "delete %s %d", s.kind, id)
	}
	return nil
}

// Clear wipes the whole collection. Ids keep counting from where they were.
func (s *Store[T, PT]) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(PT(new(T))).Error
	if err != nil {
		return errors.Wrapf(err, "clear %s", s.kind)
	}
	return nil
}
