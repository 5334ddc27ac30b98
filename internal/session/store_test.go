package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ferro/internal/domain"
)

func testSpecs() []domain.ExerciseSpec {
	return []domain.ExerciseSpec{
		{
			Name:               "Bench Press",
			TargetSets:         3,
			RepScheme:          domain.ParseRepScheme("8-12"),
			Alternatives:       []string{"Dumbbell Press"},
			OptimalRestSeconds: 180,
			QuickRestSeconds:   90,
		},
		{
			Name:       "Cable Fly",
			TargetSets: 2,
			RepScheme:  domain.ParseRepScheme("12-10-8"),
		},
	}
}

func startedStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(testSpecs(), 1)
	store.Start(time.Now())
	return store
}

func TestStore_MutationsBlockedBeforeStart(t *testing.T) {
	store := NewStore(testSpecs(), 1)

	assert.False(t, store.UpdateSetField(0, 0, FieldWeight, "100"))
	_, ok := store.ToggleSetCompletion(0, 0)
	assert.False(t, ok)
	assert.False(t, store.ToggleDropSetMode(0, 0))
	assert.False(t, store.AddDropSet(0, 0))

	assert.Empty(t, store.State().Exercises[0][0].Weight)
	assert.False(t, store.State().Started())
}

func TestStore_StartIsIdempotent(t *testing.T) {
	store := NewStore(testSpecs(), 1)
	first := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	store.Start(first)
	store.Start(first.Add(time.Hour))

	assert.Equal(t, first, *store.State().StartedAt)
}

func TestStore_UpdateSetFieldSanitizes(t *testing.T) {
	store := startedStore(t)

	assert.True(t, store.UpdateSetField(0, 0, FieldWeight, "62,5kg"))
	assert.True(t, store.UpdateSetField(0, 0, FieldReps, "10 reps"))

	entry := store.State().Exercises[0][0]
	assert.Equal(t, "62.5", entry.Weight)
	assert.Equal(t, "10", entry.Reps)
}

func TestStore_ToggleSetCompletionTimerRequests(t *testing.T) {
	tests := []struct {
		name        string
		slot, set   int
		link        bool
		wantTimer   bool
		wantSeconds int
		wantQuick   int
		wantSuper   bool
	}{
		{"mid-exercise set rests", 0, 0, false, true, 180, 90, false},
		{"final set of unlinked exercise rests nothing", 0, 2, false, false, 0, 0, false},
		{"linked exercise gets transition window", 0, 0, true, true, SupersetTransitionSeconds, SupersetTransitionSeconds, true},
		{"linked final set still transitions", 0, 2, true, true, SupersetTransitionSeconds, SupersetTransitionSeconds, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := startedStore(t)
			if tt.link {
				store.ToggleSupersetLink(0)
			}

			req, ok := store.ToggleSetCompletion(tt.slot, tt.set)

			assert.True(t, ok)
			if !tt.wantTimer {
				assert.Nil(t, req)
				return
			}
			assert.NotNil(t, req)
			assert.Equal(t, tt.wantSeconds, req.DurationSeconds)
			assert.Equal(t, tt.wantQuick, req.QuickSeconds)
			assert.Equal(t, tt.wantSuper, req.Superset)
		})
	}
}

func TestStore_ToggleSetCompletionUsesDefaultRests(t *testing.T) {
	store := startedStore(t)

	// Cable Fly declares no rest hints and falls back to the defaults
	req, ok := store.ToggleSetCompletion(1, 0)

	assert.True(t, ok)
	assert.NotNil(t, req)
	assert.Equal(t, domain.DefaultOptimalRestSeconds, req.DurationSeconds)
	assert.Equal(t, domain.DefaultQuickRestSeconds, req.QuickSeconds)
}

func TestStore_UncompletingNeverStartsTimer(t *testing.T) {
	store := startedStore(t)

	_, _ = store.ToggleSetCompletion(0, 0)
	req, ok := store.ToggleSetCompletion(0, 0)

	assert.True(t, ok)
	assert.Nil(t, req)
	assert.False(t, store.State().Exercises[0][0].Completed)
}

func TestStore_DropSetLifecycle(t *testing.T) {
	store := startedStore(t)

	assert.True(t, store.ToggleDropSetMode(0, 0))
	entry := store.State().Entry(0, 0)
	assert.True(t, entry.IsDropSet)
	assert.Len(t, entry.Drops, 1)

	assert.True(t, store.AddDropSet(0, 0))
	assert.Len(t, store.State().Entry(0, 0).Drops, 2)

	assert.True(t, store.UpdateDropField(0, 0, 0, FieldWeight, "80"))
	assert.True(t, store.ToggleDropCompletion(0, 0, 0))
	entry = store.State().Entry(0, 0)
	assert.Equal(t, "80", entry.Drops[0].Weight)
	assert.True(t, entry.Drops[0].Completed)

	// Disabling wipes all drops
	assert.True(t, store.ToggleDropSetMode(0, 0))
	entry = store.State().Entry(0, 0)
	assert.False(t, entry.IsDropSet)
	assert.Nil(t, entry.Drops)
}

func TestStore_RemovingLastDropDisablesMode(t *testing.T) {
	store := startedStore(t)
	store.ToggleDropSetMode(0, 0)

	assert.True(t, store.RemoveDropSet(0, 0, 0))

	entry := store.State().Entry(0, 0)
	assert.False(t, entry.IsDropSet)
	assert.Nil(t, entry.Drops)
}

func TestStore_AddDropRequiresDropMode(t *testing.T) {
	store := startedStore(t)

	assert.False(t, store.AddDropSet(0, 0))
}

func TestStore_VariantSwitchIsolatesData(t *testing.T) {
	store := startedStore(t)
	store.UpdateSetField(0, 0, FieldWeight, "100")
	store.UpdateSetField(0, 0, FieldReps, "8")
	store.ToggleSetCompletion(0, 0)

	// First-time switch to the alternative starts blank
	store.SelectVariant(0, 1)
	entry := store.State().Entry(0, 0)
	assert.Equal(t, 1, entry.SelectedVariant)
	assert.Empty(t, entry.Weight)
	assert.False(t, entry.Completed)

	store.UpdateSetField(0, 0, FieldWeight, "40")

	// Switching back restores the primary's numbers untouched
	store.SelectVariant(0, 0)
	entry = store.State().Entry(0, 0)
	assert.Equal(t, "100", entry.Weight)
	assert.Equal(t, "8", entry.Reps)
	assert.True(t, entry.Completed)

	// And the alternative kept its own
	store.SelectVariant(0, 1)
	assert.Equal(t, "40", store.State().Entry(0, 0).Weight)
}

func TestStore_SelectVariantIgnoresOutOfRange(t *testing.T) {
	store := startedStore(t)
	store.UpdateSetField(0, 0, FieldWeight, "100")

	store.SelectVariant(0, 5)
	store.SelectVariant(5, 0)

	entry := store.State().Entry(0, 0)
	assert.Equal(t, 0, entry.SelectedVariant)
	assert.Equal(t, "100", entry.Weight)
}

func TestStore_SupersetLinkToggles(t *testing.T) {
	store := startedStore(t)

	store.ToggleSupersetLink(0)
	assert.True(t, store.State().SupersetLinks[0])

	store.ToggleSupersetLink(0)
	assert.False(t, store.State().SupersetLinks[0])

	// The last slot has nothing to link forward to
	store.ToggleSupersetLink(1)
	assert.False(t, store.State().SupersetLinks[1])
}

func TestStore_Notes(t *testing.T) {
	store := startedStore(t)

	store.SetNote(0, "elbows in")
	assert.Equal(t, "elbows in", store.Note(0))

	store.SetNote(0, "")
	assert.Empty(t, store.Note(0))
	assert.NotContains(t, store.State().Notes, 0)
}

func TestStore_Placeholders(t *testing.T) {
	store := startedStore(t)
	store.SetPreviousWeight(0, "97.5")

	assert.Equal(t, "97.5", store.PlaceholderWeight(0))
	assert.Empty(t, store.PlaceholderWeight(1))

	// Straight scheme suggests its minimum for every set
	assert.Equal(t, 8, store.PlaceholderReps(0, 0))
	assert.Equal(t, 8, store.PlaceholderReps(0, 2))

	// Pyramid scheme suggests per set position
	assert.Equal(t, 12, store.PlaceholderReps(1, 0))
	assert.Equal(t, 10, store.PlaceholderReps(1, 1))
}

func TestStore_TickDuration(t *testing.T) {
	store := NewStore(testSpecs(), 1)

	store.TickDuration()
	assert.Zero(t, store.State().Duration)

	store.Start(time.Now())
	store.TickDuration()
	store.TickDuration()
	assert.Equal(t, 2, store.State().Duration)
}

func TestStore_RestoreNormalizesNilMaps(t *testing.T) {
	store := NewStore(testSpecs(), 1)

	store.Restore(&domain.SessionState{Exercises: [][]domain.SetEntry{{{}}}})

	assert.NotNil(t, store.State().Notes)
	assert.NotNil(t, store.State().SupersetLinks)
}
