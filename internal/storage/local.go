package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes uploads to a directory on disk. Dev fallback for
// running without an S3 bucket; the returned URL is a relative path.
type LocalStorage struct {
	root    string
	baseURL string
}

func NewLocalStorage(root, baseURL string) (*LocalStorage, error) {
	if strings.TrimSpace(root) == "" {
		root = "uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("local storage: %w", err)
	}
	return &LocalStorage{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *LocalStorage) Save(_ context.Context, name string, r io.Reader) (string, error) {
	key := strings.TrimLeft(filepath.ToSlash(name), "/")
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("local storage: invalid key %q", name)
	}

	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("local storage: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("local storage: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("local storage write %s: %w", key, err)
	}

	if s.baseURL == "" {
		return "/" + s.root + "/" + key, nil
	}
	return s.baseURL + "/" + key, nil
}
