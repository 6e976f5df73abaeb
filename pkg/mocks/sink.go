package mocks

import (
	"image"
	"sync"

	"github.com/user/yuvrender/pkg/ports"
)

// SnapshotSink is a mock implementation of ports.SnapshotSink.
type SnapshotSink struct {
	mu sync.RWMutex

	enabled bool

	Snapshots map[int]image.Image
}

// NewSnapshotSink creates a new mock SnapshotSink.
func NewSnapshotSink(enabled bool) *SnapshotSink {
	return &SnapshotSink{
		enabled:   enabled,
		Snapshots: make(map[int]image.Image),
	}
}

func (m *SnapshotSink) Enabled() bool {
	return m.enabled
}

func (m *SnapshotSink) SaveSnapshot(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Snapshots[index] = img
	return nil
}

// Count returns the number of saved snapshots.
func (m *SnapshotSink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Snapshots)
}

var _ ports.SnapshotSink = (*SnapshotSink)(nil)
