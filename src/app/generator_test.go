package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderGenerator(t *testing.T) {
	generator := NewPlaceholderGenerator()

	t.Run("ReferencesTheme", func(t *testing.T) {
		fields, err := generator.Generate(context.Background(), GenerationRequest{Theme: "space"})
		require.NoError(t, err)

		assert.Equal(t, "Generated space Story", fields.Title)
		assert.Contains(t, fields.Content, "space")
		assert.Contains(t, fields.Caption1, "space")
		assert.Contains(t, fields.Caption2, "space")
		assert.Contains(t, fields.Caption3, "space")
		assert.NotEmpty(t, fields.ImageURL1)
		assert.NotEmpty(t, fields.ImageURL2)
		assert.NotEmpty(t, fields.ImageURL3)
	})

	t.Run("PromptIncluded", func(t *testing.T) {
		fields, err := generator.Generate(context.Background(), GenerationRequest{
			Theme:  "space",
			Prompt: "a rocket to the moon",
		})
		require.NoError(t, err)
		assert.Contains(t, fields.Content, "a rocket to the moon")
	})

	t.Run("Deterministic", func(t *testing.T) {
		req := GenerationRequest{Theme: "ocean", Prompt: "deep water"}
		first, err := generator.Generate(context.Background(), req)
		require.NoError(t, err)
		second, err := generator.Generate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestRemoteGenerator(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/generate", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"title":"T","content":"B","image_url_1":"u1","image_url_2":"u2","image_url_3":"u3","caption_1":"c1","caption_2":"c2","caption_3":"c3"}`))
		}))
		defer srv.Close()

		generator := NewRemoteGenerator(srv.URL, time.Second)
		fields, err := generator.Generate(context.Background(), GenerationRequest{Theme: "space"})
		require.NoError(t, err)
		assert.Equal(t, "T", fields.Title)
		assert.Equal(t, "B", fields.Content)
		assert.Equal(t, "u3", fields.ImageURL3)
		assert.Equal(t, "c2", fields.Caption2)
	})

	t.Run("ServerError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		generator := NewRemoteGenerator(srv.URL, time.Second)
		_, err := generator.Generate(context.Background(), GenerationRequest{Theme: "space"})
		assert.ErrorIs(t, err, ErrGenerationFailed)
	})

	t.Run("Unreachable", func(t *testing.T) {
		generator := NewRemoteGenerator("http://127.0.0.1:1", 100*time.Millisecond)
		_, err := generator.Generate(context.Background(), GenerationRequest{Theme: "space"})
		assert.ErrorIs(t, err, ErrGenerationFailed)
	})
}
