package statefile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoclair/slack-sheet-monitor/internal/domain/entity"
)

func TestStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	found, err := store.Get("row_5")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := New(path)
	require.NoError(t, err)

	notifiedAt := time.Date(2024, 12, 20, 10, 30, 0, 0, time.UTC)
	require.NoError(t, store.Upsert(&entity.StateEntry{Key: "row_5", NotifiedAt: notifiedAt}))

	reopened, err := New(path)
	require.NoError(t, err)

	found, err := reopened.Get("row_5")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "row_5", found.Key)
	assert.True(t, found.NotifiedAt.Equal(notifiedAt))
}

func TestStore_UpsertOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := New(path)
	require.NoError(t, err)

	first := time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Upsert(&entity.StateEntry{Key: "row_5", NotifiedAt: first}))
	require.NoError(t, store.Upsert(&entity.StateEntry{Key: "row_5", NotifiedAt: first.Add(4 * time.Hour)}))

	found, err := store.Get("row_5")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.True(t, found.NotifiedAt.Equal(first.Add(4*time.Hour)))
}

func TestStore_DeletePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := New(path)
	require.NoError(t, err)

	require.NoError(t, store.Upsert(&entity.StateEntry{Key: "row_5", NotifiedAt: time.Now()}))
	require.NoError(t, store.Delete("row_5"))

	// deleting an absent key is not an error
	require.NoError(t, store.Delete("row_5"))

	reopened, err := New(path)
	require.NoError(t, err)

	found, err := reopened.Get("row_5")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store, err := New(path)
	require.NoError(t, err)

	found, err := store.Get("row_5")
	require.NoError(t, err)
	assert.Nil(t, found)

	// the store is usable again and replaces the corrupt file
	notifiedAt := time.Date(2024, 12, 20, 10, 30, 0, 0, time.UTC)
	require.NoError(t, store.Upsert(&entity.StateEntry{Key: "row_5", NotifiedAt: notifiedAt}))

	reopened, err := New(path)
	require.NoError(t, err)

	found, err = reopened.Get("row_5")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.NotifiedAt.Equal(notifiedAt))
}

func TestStore_ConcurrentMutations(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	// overlapping cron jobs mutate the store from separate goroutines
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for n := 0; n < 25; n++ {
				key := fmt.Sprintf("row_%d", worker)
				assert.NoError(t, store.Upsert(&entity.StateEntry{Key: key, NotifiedAt: time.Now()}))

				_, err := store.Get(key)
				assert.NoError(t, err)

				assert.NoError(t, store.Delete(key))
			}
		}(i)
	}
	wg.Wait()

	found, err := store.Get("weekly_all_hands_reminder")
	require.NoError(t, err)
	assert.Nil(t, found)
}
