// Package blobstore holds the image upload contract. The service layer only
// sees the Store interface; swapping the disk implementation for a cloud
// bucket is a wiring change.
package blobstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store uploads a blob and returns the URI it is served from.
type Store interface {
	Upload(filename string, r io.Reader) (string, error)
}

// DiskStore writes blobs under a local directory and serves them from a
// base URL path.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &DiskStore{dir: dir, baseURL: baseURL}, nil
}

// Upload stores the blob under a uuid-prefixed name so repeated uploads of
// the same filename never collide.
func (s *DiskStore) Upload(filename string, r io.Reader) (string, error) {
	name := uuid.New().String() + "_" + filepath.Base(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return s.baseURL + "/" + name, nil
}
