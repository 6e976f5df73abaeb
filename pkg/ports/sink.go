package ports

import (
	"image"
)

// SnapshotSink stores images of the surface taken during playback.
type SnapshotSink interface {
	// Enabled returns true if snapshots should be taken.
	Enabled() bool

	// SaveSnapshot saves the surface contents after the frame with the given index.
	SaveSnapshot(index int, img image.Image) error
}

// Snapshotter is implemented by surfaces that can return their contents.
type Snapshotter interface {
	// Snapshot returns the last presented image, or nil if nothing was presented.
	Snapshot() image.Image
}
