package bin_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lifehub/database"
	"lifehub/entities"
	"lifehub/pkg/bin"
	"lifehub/pkg/resource"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "bin_test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestMoveToBinThenRestore(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := bin.New(db)
	diary := resource.NewStore[entities.DiaryEntry](db, resource.KindDiary)

	in := &entities.DiaryEntry{
		Title:   "A",
		Content: []string{"line1", "line2"},
		Tags:    []string{"x", "y"},
		Day:     "1 June 2024",
		Weekday: "Saturday",
	}
	require.NoError(t, diary.Create(ctx, in))
	originalID := in.ID

	require.NoError(t, svc.MoveToBin(ctx, resource.KindDiary, originalID))

	rows, err := diary.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows, "binned record leaves its collection")

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "diary", entries[0].Source)

	require.NoError(t, svc.Restore(ctx, entries[0].ID))

	rows, err = diary.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].Title)
	assert.Equal(t, []string{"line1", "line2"}, rows[0].Content)
	assert.Equal(t, []string{"x", "y"}, rows[0].Tags)
	assert.NotEqual(t, originalID, rows[0].ID, "restore assigns a fresh id")

	entries, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries, "restored entry is purged")
}

func TestMoveToBinMissingRecord(t *testing.T) {
	ctx := context.Background()
	svc := bin.New(newTestDB(t))
	err := svc.MoveToBin(ctx, resource.KindMovies, 77)
	require.ErrorIs(t, err, resource.ErrNotFound)
}

func TestStageNormalizesLegacyAlias(t *testing.T) {
	ctx := context.Background()
	svc := bin.New(newTestDB(t))

	payload, _ := json.Marshal(entities.Experiment{Title: "cold showers", Tags: []string{"habit"}})
	entry, err := svc.Stage(ctx, "experimental", payload)
	require.NoError(t, err)
	assert.Equal(t, "experiments", entry.Source)
	assert.NotZero(t, entry.ID)
}

func TestStageRejectsUnknownSource(t *testing.T) {
	ctx := context.Background()
	svc := bin.New(newTestDB(t))
	_, err := svc.Stage(ctx, "widgets", json.RawMessage(`{}`))
	require.ErrorIs(t, err, resource.ErrUnknownKind)
}

func TestRestoreUnknownSourceKeepsEntry(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := bin.New(db)

	// A row written before the kind set was closed, or by hand.
	stale := entities.BinEntry{Source: "widgets", Data: json.RawMessage(`{"title":"?"}`)}
	require.NoError(t, db.Create(&stale).Error)

	err := svc.Restore(ctx, stale.ID)
	require.ErrorIs(t, err, resource.ErrUnknownKind)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "a failed restore must not lose the snapshot")
}

func TestRestoreMissingEntry(t *testing.T) {
	ctx := context.Background()
	svc := bin.New(newTestDB(t))
	require.ErrorIs(t, svc.Restore(ctx, 404), resource.ErrNotFound)
}

func TestPurgeIsIdempotentAndEmptyWipes(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := bin.New(db)

	payload, _ := json.Marshal(entities.Movie{Title: "Heat"})
	entry, err := svc.Stage(ctx, "movies", payload)
	require.NoError(t, err)

	require.NoError(t, svc.Purge(ctx, entry.ID))
	require.NoError(t, svc.Purge(ctx, entry.ID))

	for i := 0; i < 3; i++ {
		_, err := svc.Stage(ctx, "movies", payload)
		require.NoError(t, err)
	}
	require.NoError(t, svc.Empty(ctx))

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRestoreEveryKind(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := bin.New(db)

	payloads := map[resource.Kind]any{
		resource.KindDiary:             entities.DiaryEntry{Title: "d", Content: []string{"a"}},
		resource.KindPlans:             entities.PlannerTask{Title: "p", Category: "weekly"},
		resource.KindPlannerCategories: entities.PlannerCategory{Slug: "s", Title: "c"},
		resource.KindExperiments:       entities.Experiment{Title: "e"},
		resource.KindMovies:            entities.Movie{Title: "m"},
		resource.KindRecipes:           entities.Recipe{Title: "r", Tags: []string{"t"}},
		resource.KindCourses:           entities.Course{Title: "c"},
		resource.KindTravel:            entities.TravelPlan{Destination: "t"},
		resource.KindStrategy:          entities.StrategicPlan{Title: "s"},
		resource.KindLibrary:           entities.LibraryItem{Title: "l"},
		resource.KindDocuments:         entities.Document{Title: "doc"},
	}
	require.Len(t, payloads, len(resource.All()), "every kind must be restorable")

	for kind, rec := range payloads {
		data, err := json.Marshal(rec)
		require.NoError(t, err)
		entry, err := svc.Stage(ctx, string(kind), data)
		require.NoError(t, err, "stage %s", kind)
		require.NoError(t, svc.Restore(ctx, entry.ID), "restore %s", kind)
	}

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
