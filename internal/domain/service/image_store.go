package service

import "context"

// ImageStore defines the interface for stored media files referenced by
// products and page images. Paths are relative to the media root.
type ImageStore interface {
	// Remove deletes a stored image. Removing an absent file succeeds;
	// deletion of catalog records must not fail on missing media.
	Remove(ctx context.Context, path string) error
}
