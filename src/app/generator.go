package app

import (
	"context"
	"errors"
	"fmt"
)

// ErrGenerationFailed is returned when the generation backend could not
// produce a result. The placeholder backend never fails, but callers must
// handle the failure outcome so a real backend can be dropped in.
var ErrGenerationFailed = errors.New("content generation failed")

type (
	// GenerationRequest carries the caller-supplied inputs for a
	// generation run.
	GenerationRequest struct {
		Theme   string
		Prompt  string
		IsStory bool
	}

	// GeneratedFields is the structured output of a generation run,
	// matching the free-text fields of a GeneratedContent row.
	GeneratedFields struct {
		Title     string
		Content   string
		ImageURL1 string
		ImageURL2 string
		ImageURL3 string
		Caption1  string
		Caption2  string
		Caption3  string
	}

	// Generator produces title/body text and three image/caption pairs
	// from a theme and an optional prompt. Implementations may take
	// arbitrary time, so they receive the request context.
	Generator interface {
		Generate(ctx context.Context, req GenerationRequest) (GeneratedFields, error)
	}
)

// PlaceholderGenerator is the reference backend: deterministic string
// templating from the theme and prompt, no external call.
type PlaceholderGenerator struct{}

func NewPlaceholderGenerator() *PlaceholderGenerator {
	return &PlaceholderGenerator{}
}

func (g *PlaceholderGenerator) Generate(_ context.Context, req GenerationRequest) (GeneratedFields, error) {
	prompt := req.Prompt
	if prompt == "" {
		prompt = fmt.Sprintf("Create a %s story", req.Theme)
	}

	return GeneratedFields{
		Title:     fmt.Sprintf("Generated %s Story", req.Theme),
		Content:   fmt.Sprintf("This is a generated story about %s. %s", req.Theme, prompt),
		ImageURL1: "https://via.placeholder.com/300x200?text=Image+1",
		ImageURL2: "https://via.placeholder.com/300x200?text=Image+2",
		ImageURL3: "https://via.placeholder.com/300x200?text=Image+3",
		Caption1:  fmt.Sprintf("Caption for %s image 1", req.Theme),
		Caption2:  fmt.Sprintf("Caption for %s image 2", req.Theme),
		Caption3:  fmt.Sprintf("Caption for %s image 3", req.Theme),
	}, nil
}
