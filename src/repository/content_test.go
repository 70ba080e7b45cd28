package repository

import (
	"context"
	"testing"

	app "frameless/src/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func newContent(theme string, public bool) *app.GeneratedContent {
	return &app.GeneratedContent{
		Title:     "Generated " + theme + " Story",
		Content:   "body about " + theme,
		Theme:     theme,
		IsStory:   true,
		IsPublic:  public,
		ImageURL1: "u1", ImageURL2: "u2", ImageURL3: "u3",
		Caption1: "c1", Caption2: "c2", Caption3: "c3",
	}
}

func TestContentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepository(newTestDB(t))

	t.Run("CreateAssignsIDAndTimestamp", func(t *testing.T) {
		content := newContent("space", true)
		require.NoError(t, repo.Create(ctx, content))
		assert.NotZero(t, content.ID)
		assert.False(t, content.CreatedAt.IsZero())
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 99999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ListWithFilters", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newContent("space", false)))
		require.NoError(t, repo.Create(ctx, newContent("ocean", true)))

		all, err := repo.List(ctx, ContentFilter{}, 0, 100)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		space, err := repo.List(ctx, ContentFilter{Theme: "space"}, 0, 100)
		require.NoError(t, err)
		assert.Len(t, space, 2)

		publicSpace, err := repo.List(ctx, ContentFilter{Theme: "space", IsPublic: boolPtr(true)}, 0, 100)
		require.NoError(t, err)
		assert.Len(t, publicSpace, 1)

		private, err := repo.List(ctx, ContentFilter{IsPublic: boolPtr(false)}, 0, 100)
		require.NoError(t, err)
		assert.Len(t, private, 1)
	})

	t.Run("PartialUpdate", func(t *testing.T) {
		content := newContent("forest", false)
		require.NoError(t, repo.Create(ctx, content))

		updated, err := repo.Update(ctx, content.ID, ContentPatch{
			Title:    strPtr("New Title"),
			IsPublic: boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)
		assert.True(t, updated.IsPublic)
		// Untouched fields survive the merge.
		assert.Equal(t, content.Content, updated.Content)
		assert.Equal(t, "forest", updated.Theme)
		assert.Equal(t, "c3", updated.Caption3)
	})

	t.Run("EmptyPatchLeavesRowUnchanged", func(t *testing.T) {
		content := newContent("desert", true)
		require.NoError(t, repo.Create(ctx, content))

		updated, err := repo.Update(ctx, content.ID, ContentPatch{})
		require.NoError(t, err)
		assert.Equal(t, content.Title, updated.Title)
		assert.Equal(t, content.IsPublic, updated.IsPublic)
		assert.Equal(t, content.CreatedAt.Unix(), updated.CreatedAt.Unix())
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		_, err := repo.Update(ctx, 99999, ContentPatch{Title: strPtr("x")})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteIsIdempotentlyNotFound", func(t *testing.T) {
		content := newContent("tundra", false)
		require.NoError(t, repo.Create(ctx, content))

		deleted, err := repo.Delete(ctx, content.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, content.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
