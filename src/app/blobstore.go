package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlobStore persists uploaded image binaries. Save returns the URL under
// which the blob will be served; Delete removes a blob by that URL and is
// a no-op for URLs the store does not own (externally hosted images).
type BlobStore interface {
	Save(filename string, object io.Reader, size int64) (string, error)
	Delete(url string) error
	Owns(url string) bool
}

// RandomFilename allocates a random name for an upload, keeping the
// original extension. Concurrent uploads can not collide on it.
func RandomFilename(original string) string {
	ext := "jpg"
	if idx := strings.LastIndex(original, "."); idx >= 0 && idx < len(original)-1 {
		ext = original[idx+1:]
	}
	return fmt.Sprintf("%s.%s", uuid.New().String(), ext)
}

// LocalDiskStore keeps blobs in a fixed directory on the server and derives
// path-based URLs from a base prefix.
type LocalDiskStore struct {
	dir     string
	baseURL string
}

func NewLocalDiskStore(dir, baseURL string) (*LocalDiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can not create uploads dir %s: %w", dir, err)
	}
	return &LocalDiskStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Dir reports the backing directory so the server can mount it as a
// static route.
func (s *LocalDiskStore) Dir() string {
	return s.dir
}

func (s *LocalDiskStore) Save(filename string, object io.Reader, _ int64) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("can not create blob file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, object); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("can not write blob file: %w", err)
	}
	return fmt.Sprintf("%s/%s", s.baseURL, filepath.Base(filename)), nil
}

func (s *LocalDiskStore) Delete(url string) error {
	if !s.Owns(url) {
		return nil
	}
	path := filepath.Join(s.dir, filepath.Base(url))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("can not remove blob file: %w", err)
	}
	return nil
}

func (s *LocalDiskStore) Owns(url string) bool {
	return strings.HasPrefix(url, s.baseURL+"/")
}
