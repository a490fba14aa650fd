// Package media stores product and page images on the local filesystem.
package media

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"dentalstore/config"
	"dentalstore/internal/domain/service"
)

// localImageStore is a concrete implementation of the ImageStore interface
// backed by a directory on disk.
type localImageStore struct {
	root   string
	logger *slog.Logger
}

// NewLocalImageStore is the constructor for localImageStore.
func NewLocalImageStore(cfg *config.Config, logger *slog.Logger) service.ImageStore {
	return &localImageStore{
		root:   cfg.Media.Root,
		logger: logger,
	}
}

// Remove deletes a stored image. Removing an absent file succeeds so that
// catalog deletions never fail on missing media.
func (s *localImageStore) Remove(_ context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return errors.Wrap(err, "failed to remove image")
	}

	s.logger.Debug("removed image", slog.String("path", path))

	return nil
}

// resolve joins the path to the media root and rejects traversal outside it.
func (s *localImageStore) resolve(path string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(path))

	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("image path escapes media root: %s", path)
	}

	return full, nil
}
