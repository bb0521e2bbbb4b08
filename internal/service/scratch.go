package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"pdf-extract-service/internal/domain"
)

// FileScratchStore stages documents in a directory so path-based
// parsers can read them. Every staged document gets a unique name, so
// concurrent requests never observe each other's files.
type FileScratchStore struct {
	dir    string
	logger domain.Logger
}

// NewFileScratchStore creates a scratch store rooted at dir, creating
// the directory if needed. An empty dir falls back to the OS temp dir.
func NewFileScratchStore(dir string, logger domain.Logger) (*FileScratchStore, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}

	return &FileScratchStore{
		dir:    dir,
		logger: logger,
	}, nil
}

// Stage writes data to a fresh scratch file and returns its path along
// with a cleanup function that removes the file again.
func (s *FileScratchStore) Stage(data []byte) (string, func(), error) {
	path := filepath.Join(s.dir, uuid.New().String()+".pdf")

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", nil, fmt.Errorf("failed to write scratch file: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove scratch file", "path", path, "error", err)
		}
	}

	return path, cleanup, nil
}
