// Package player drives a renderer with frames read from raw I420 files
// and applies scheduled changes to the host container between frames.
package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/user/yuvrender/pkg/adapters/rawsource"
	"github.com/user/yuvrender/pkg/ports"
	"github.com/user/yuvrender/pkg/render"
)

// EventAction names a change applied to the host container.
type EventAction string

const (
	ActionResize EventAction = "resize"
	ActionHide   EventAction = "hide"
	ActionShow   EventAction = "show"
	ActionClear  EventAction = "clear"
)

// Stream is one raw I420 file of fixed resolution.
type Stream struct {
	Path      string
	Width     int
	Height    int
	MaxFrames int // 0 plays the whole file
}

// Event is applied before the frame with the given zero-based index
// (counted across all streams). Events past the last frame run at the end.
type Event struct {
	Frame  int
	Action EventAction
	Width  int // resize only
	Height int // resize only
}

// Config contains all configuration for a playback run.
type Config struct {
	ContainerWidth  int
	ContainerHeight int
	Tolerance       int

	Streams []Stream
	Events  []Event

	// SnapshotEvery saves a snapshot after every N frames; 0 disables.
	SnapshotEvery int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ContainerWidth:  640,
		ContainerHeight: 360,
		Tolerance:       render.DefaultTolerance,
	}
}

// Host is a host container whose size and visibility can be changed.
type Host interface {
	ports.HostContainer
	Resize(width, height int)
	SetVisible(visible bool)
}

// StreamResult reports how much of one stream was played.
type StreamResult struct {
	Path   string
	Width  int
	Height int
	Frames int
}

// Result contains the outcome of a run for summary generation.
type Result struct {
	RunID     string
	Streams   []StreamResult
	Frames    int
	Events    int
	Snapshots int

	Container render.Dimensions
	Surface   render.Dimensions
	Phase     render.Phase
	Stats     render.Stats
	LastError error
}

// Player pushes frames into a renderer bound to a host.
type Player struct {
	renderer *render.Renderer
	host     Host
	fs       ports.FileSystem
	sink     ports.SnapshotSink
	logger   ports.Logger
}

// New creates a new Player.
func New(
	renderer *render.Renderer,
	host Host,
	fs ports.FileSystem,
	sink ports.SnapshotSink,
	logger ports.Logger,
) *Player {
	return &Player{
		renderer: renderer,
		host:     host,
		fs:       fs,
		sink:     sink,
		logger:   logger.WithComponent("player"),
	}
}

// Run binds the renderer to the host and plays every stream in order.
// Each call is identified by a fresh RunID.
// Cancelling ctx stops playback between frames; the partial result is
// returned together with ctx.Err().
func (p *Player) Run(ctx context.Context, config Config) (Result, error) {
	if config.ContainerWidth > 0 || config.ContainerHeight > 0 {
		p.host.Resize(config.ContainerWidth, config.ContainerHeight)
	}
	p.renderer.SetView(p.host)

	r := &run{
		Player: p,
		config: config,
		events: sortEvents(config.Events),
		result: Result{RunID: uuid.NewString()},
	}
	p.logger.Debug("Run %s started", r.result.RunID)

	for _, s := range config.Streams {
		sr, err := r.playStream(ctx, s)
		r.result.Streams = append(r.result.Streams, sr)
		if err != nil {
			return r.finish(), err
		}
	}
	r.applyEvents(math.MaxInt)

	result := r.finish()
	p.logger.Info("Playback finished: %d frames, %d drawn", result.Frames, result.Stats.FramesDrawn)
	return result, nil
}

// run holds the state of one Run call.
type run struct {
	*Player
	config Config
	events []Event
	next   int
	result Result
}

func (r *run) playStream(ctx context.Context, s Stream) (StreamResult, error) {
	sr := StreamResult{Path: s.Path, Width: s.Width, Height: s.Height}

	f, err := r.fs.Open(s.Path)
	if err != nil {
		r.logger.Error("Failed to open %s: %v", s.Path, err)
		return sr, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	src, err := rawsource.NewReader(f, s.Width, s.Height)
	if err != nil {
		return sr, fmt.Errorf("stream %s: %w", s.Path, err)
	}
	r.logger.Info("Playing %s (%dx%d)", s.Path, s.Width, s.Height)

	for s.MaxFrames == 0 || sr.Frames < s.MaxFrames {
		if err := ctx.Err(); err != nil {
			return sr, err
		}

		frame, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			r.logger.Error("Failed to read frame: %v", err)
			return sr, fmt.Errorf("stream %s: %w", s.Path, err)
		}

		r.applyEvents(r.result.Frames)
		r.renderer.UpdateRender(frame)
		sr.Frames++
		r.result.Frames++
		r.snapshot()
	}
	return sr, nil
}

// applyEvents applies pending events scheduled at or before frame.
func (r *run) applyEvents(frame int) {
	for r.next < len(r.events) && r.events[r.next].Frame <= frame {
		r.apply(r.events[r.next])
		r.next++
		r.result.Events++
	}
}

func (r *run) apply(e Event) {
	switch e.Action {
	case ActionResize:
		r.host.Resize(e.Width, e.Height)
		r.logger.Info("Container resized to %dx%d", e.Width, e.Height)
		r.renderer.Redraw()
	case ActionHide:
		r.host.SetVisible(false)
		r.logger.Info("Container hidden")
	case ActionShow:
		r.host.SetVisible(true)
		r.logger.Info("Container shown")
		r.renderer.Redraw()
	case ActionClear:
		r.renderer.ClearRender()
		r.logger.Info("Render target cleared")
	default:
		r.logger.Warn("Unknown event %q ignored", e.Action)
	}
}

func (r *run) snapshot() {
	every := r.config.SnapshotEvery
	if every <= 0 || !r.sink.Enabled() || r.result.Frames%every != 0 {
		return
	}
	shooter, ok := r.host.(ports.Snapshotter)
	if !ok {
		return
	}
	img := shooter.Snapshot()
	if img == nil {
		return
	}

	index := r.result.Frames - 1
	if err := r.sink.SaveSnapshot(index, img); err != nil {
		r.logger.Warn("Failed to save snapshot %d: %v", index, err)
		return
	}
	r.result.Snapshots++
}

func (r *run) finish() Result {
	res := r.result
	res.Container = render.Dimensions{Width: r.host.ClientWidth(), Height: r.host.ClientHeight()}
	if s := r.renderer.Surface(); s != nil {
		res.Surface = render.Dimensions{Width: s.Width(), Height: s.Height()}
	}
	res.Phase = r.renderer.Phase()
	res.Stats = r.renderer.Stats()
	res.LastError = r.renderer.LastError()
	return res
}

// sortEvents returns a copy of events ordered by frame, keeping the
// configured order for events on the same frame.
func sortEvents(events []Event) []Event {
	out := append([]Event(nil), events...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frame < out[j].Frame
	})
	return out
}
