// Package summarizer provides summary generation for playback results.
package summarizer

import "time"

// Summary contains all data collected during a playback run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time
	RunID       string

	// Input streams in play order
	Streams []StreamInfo

	// Playback results
	Playback PlaybackInfo

	// Renderer counters
	Render RenderInfo

	// Playback settings
	Settings Settings
}

// StreamInfo describes one played stream.
type StreamInfo struct {
	Path   string
	Width  int
	Height int
	Frames int
}

// PlaybackInfo contains totals for the run.
type PlaybackInfo struct {
	Frames      int
	Events      int
	Snapshots   int
	Interrupted bool
	Error       string
}

// RenderInfo contains renderer statistics and final state.
type RenderInfo struct {
	Phase          string
	SurfaceWidth   int
	SurfaceHeight  int
	FramesDrawn    int
	DrawFailures   int
	Resizes        int
	TargetsCreated int
	FormatChanges  int
	LastError      string
}

// Settings contains the playback configuration.
type Settings struct {
	ContainerWidth  int
	ContainerHeight int
	Tolerance       int
	Scaler          string
	Background      string
	SnapshotEvery   int // 0 = disabled
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithRunID sets the identifier of the playback run.
func (b *Builder) WithRunID(id string) *Builder {
	b.summary.RunID = id
	return b
}

// WithStream appends a played stream.
func (b *Builder) WithStream(path string, width, height, frames int) *Builder {
	b.summary.Streams = append(b.summary.Streams, StreamInfo{
		Path:   path,
		Width:  width,
		Height: height,
		Frames: frames,
	})
	return b
}

// WithPlayback sets playback totals.
func (b *Builder) WithPlayback(playback PlaybackInfo) *Builder {
	b.summary.Playback = playback
	return b
}

// WithRender sets renderer statistics.
func (b *Builder) WithRender(render RenderInfo) *Builder {
	b.summary.Render = render
	return b
}

// WithSettings sets playback settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithError records the error that ended playback, if any.
func (b *Builder) WithError(err error, interrupted bool) *Builder {
	b.summary.Playback.Interrupted = interrupted
	if err != nil && !interrupted {
		b.summary.Playback.Error = err.Error()
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
