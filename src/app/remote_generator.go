package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type (
	// RemoteGenerator calls an external generation server over HTTP. It
	// implements Generator so it can replace the placeholder backend via
	// configuration without touching the content store.
	RemoteGenerator struct {
		host    string
		timeout time.Duration
		client  *http.Client
	}

	remoteGenerateBody struct {
		Theme   string `json:"theme"`
		Prompt  string `json:"prompt"`
		IsStory bool   `json:"is_story"`
	}

	remoteGenerateResponse struct {
		Title     string `json:"title"`
		Content   string `json:"content"`
		ImageURL1 string `json:"image_url_1"`
		ImageURL2 string `json:"image_url_2"`
		ImageURL3 string `json:"image_url_3"`
		Caption1  string `json:"caption_1"`
		Caption2  string `json:"caption_2"`
		Caption3  string `json:"caption_3"`
	}
)

func NewRemoteGenerator(host string, timeout time.Duration) *RemoteGenerator {
	tr := &http.Transport{
		MaxIdleConns:       10,
		IdleConnTimeout:    600 * time.Second,
		DisableCompression: true,
	}
	return &RemoteGenerator{
		host:    host,
		timeout: timeout,
		client:  &http.Client{Transport: tr},
	}
}

func (g *RemoteGenerator) Generate(ctx context.Context, req GenerationRequest) (GeneratedFields, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	body, err := json.Marshal(&remoteGenerateBody{
		Theme:   req.Theme,
		Prompt:  req.Prompt,
		IsStory: req.IsStory,
	})
	if err != nil {
		return GeneratedFields{}, fmt.Errorf("%w: can not marshall body: %v", ErrGenerationFailed, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/generate", g.host), bytes.NewReader(body))
	if err != nil {
		return GeneratedFields{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(request)
	if err != nil {
		return GeneratedFields{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GeneratedFields{}, fmt.Errorf("%w: generation server returned %d", ErrGenerationFailed, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return GeneratedFields{}, fmt.Errorf("%w: can not read response: %v", ErrGenerationFailed, err)
	}

	var result remoteGenerateResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return GeneratedFields{}, fmt.Errorf("%w: can not parse response: %v", ErrGenerationFailed, err)
	}

	return GeneratedFields{
		Title:     result.Title,
		Content:   result.Content,
		ImageURL1: result.ImageURL1,
		ImageURL2: result.ImageURL2,
		ImageURL3: result.ImageURL3,
		Caption1:  result.Caption1,
		Caption2:  result.Caption2,
		Caption3:  result.Caption3,
	}, nil
}
