package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

func TestMemoryCollection_PutGet(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	ann := entity.Announcement{ID: "ann-1", Title: "Hello", Message: "World", Date: "2025-01-01", Priority: entity.PriorityLow}
	require.NoError(t, st.Announcements.Put(ctx, ann.ID, ann))

	got, err := st.Announcements.Get(ctx, "ann-1")
	require.NoError(t, err)
	assert.Equal(t, ann, got)
}

func TestMemoryCollection_GetNotFound(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Users.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCollection_ListInsertionOrder(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		require.NoError(t, st.Announcements.Put(ctx, id, entity.Announcement{ID: id, Title: id, Message: id}))
	}

	anns, err := st.Announcements.List(ctx)
	require.NoError(t, err)
	require.Len(t, anns, 3)

	for i, id := range ids {
		assert.Equal(t, id, anns[i].ID)
	}
}

func TestMemoryCollection_PutReplacesInPlace(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Announcements.Put(ctx, "first", entity.Announcement{ID: "first", Title: "one"}))
	require.NoError(t, st.Announcements.Put(ctx, "second", entity.Announcement{ID: "second", Title: "two"}))
	require.NoError(t, st.Announcements.Put(ctx, "first", entity.Announcement{ID: "first", Title: "updated"}))

	anns, err := st.Announcements.List(ctx)
	require.NoError(t, err)
	require.Len(t, anns, 2)

	assert.Equal(t, "first", anns[0].ID)
	assert.Equal(t, "updated", anns[0].Title)
	assert.Equal(t, "second", anns[1].ID)
}

func TestMemoryCollection_Delete(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Files.Put(ctx, "f-1", entity.UploadedFile{ID: "f-1", Name: "doc.pdf"}))
	require.NoError(t, st.Files.Delete(ctx, "f-1"))

	_, err := st.Files.Get(ctx, "f-1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, st.Files.Delete(ctx, "f-1"), ErrNotFound)
}

func TestMemoryCollection_ListEmpty(t *testing.T) {
	st := NewMemoryStore()

	leaves, err := st.Leaves.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, leaves)
}
