package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pets-provider/internal/adapters/storage/memory"
	"pets-provider/internal/domain/changes"
)

func TestChangeRepo_ListNewestFirstWithFilters(t *testing.T) {
	repo := memory.NewChangeRepo()
	base := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

	for i, uri := range []string{
		"content://com.example.android.pets/pets/1",
		"content://com.example.android.pets/pets/2",
		"content://com.example.android.pets/pets",
	} {
		require.NoError(t, repo.Create(context.Background(), changes.Change{
			ID:         uri,
			URI:        uri,
			Op:         changes.OpUpdate,
			Rows:       1,
			RecordedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := repo.List(context.Background(), changes.ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "content://com.example.android.pets/pets", got[0].URI)

	// la barra final no cambia el filtro: colección + filas
	got, err = repo.List(context.Background(), changes.ListFilter{URIPrefix: "content://com.example.android.pets/pets/"})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = repo.List(context.Background(), changes.ListFilter{URIPrefix: "content://com.example.android.pets/pets/1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "content://com.example.android.pets/pets/1", got[0].URI)

	since := base.Add(90 * time.Second)
	got, err = repo.List(context.Background(), changes.ListFilter{Since: &since})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = repo.List(context.Background(), changes.ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestChangeRepo_RequiresID(t *testing.T) {
	repo := memory.NewChangeRepo()
	assert.Error(t, repo.Create(context.Background(), changes.Change{URI: "content://x"}))
}

func TestChangeRepo_URIFilterIsSegmentAware(t *testing.T) {
	repo := memory.NewChangeRepo()
	base := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

	for i, uri := range []string{
		"content://com.example.android.pets/pets/1",
		"content://com.example.android.pets/pets/10",
		"content://com.example.android.pets/pets/11",
		"content://com.example.android.pets/petsx",
	} {
		require.NoError(t, repo.Create(context.Background(), changes.Change{
			ID:         uri,
			URI:        uri,
			Op:         changes.OpInsert,
			Rows:       1,
			RecordedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := repo.List(context.Background(), changes.ListFilter{URIPrefix: "content://com.example.android.pets/pets/1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "content://com.example.android.pets/pets/1", got[0].URI)

	got, err = repo.List(context.Background(), changes.ListFilter{URIPrefix: "content://com.example.android.pets/pets"})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
