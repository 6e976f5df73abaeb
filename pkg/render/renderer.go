// Package render draws planar YUV frames onto a surface inside a host
// container, keeping the surface sized to the video's aspect ratio.
//
// A Renderer is driven by a single caller: SetView binds it to a container,
// UpdateRender pushes one raw frame at a time, and RemoveView tears it down.
// Drawing failures never reach the caller. They discard the render target,
// which is recreated on the next frame.
//
// A Renderer is not safe for concurrent use.
package render

import (
	"github.com/user/yuvrender/pkg/ports"
)

// Phase is the lifecycle phase of a Renderer.
type Phase int

const (
	// PhaseUnbound means no view is bound.
	PhaseUnbound Phase = iota
	// PhaseBoundNoFrame means a view is bound but no render target exists.
	PhaseBoundNoFrame
	// PhaseRendering means a render target is attached to the surface.
	PhaseRendering
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseUnbound:
		return "unbound"
	case PhaseBoundNoFrame:
		return "bound"
	case PhaseRendering:
		return "rendering"
	default:
		return "unknown"
	}
}

// Dimensions represents a width and height in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// Known reports whether both dimensions are positive.
func (d Dimensions) Known() bool {
	return d.Width > 0 && d.Height > 0
}

// RawFrame is one decoded I420 frame as delivered by the playback pipeline.
// A RawFrame without plane data redraws the last frame.
type RawFrame struct {
	Width  int
	Height int
	Y      []byte
	U      []byte
	V      []byte
}

func (f RawFrame) hasData() bool {
	return f.Y != nil || f.U != nil || f.V != nil
}

// Stats counts what the renderer did.
type Stats struct {
	FramesDrawn    int // Frames handed to a render target successfully
	DrawFailures   int // Frames that failed to build or draw
	Resizes        int // Surface pixel size changes
	TargetsCreated int // Render targets attached
	FormatChanges  int // Video dimension changes after the first frame
}

// state is one of unboundState, *boundState or *renderingState.
type state interface {
	phase() Phase
}

type unboundState struct{}

func (unboundState) phase() Phase { return PhaseUnbound }

// boundState holds everything valid while a view is bound.
type boundState struct {
	view   binding
	video  Dimensions
	format *ports.FrameFormat
	frame  *ports.Frame // last built frame, kept for redraws
}

func (*boundState) phase() Phase { return PhaseBoundNoFrame }

type renderingState struct {
	*boundState
	target ports.RenderTarget
}

func (*renderingState) phase() Phase { return PhaseRendering }

// Renderer renders raw frames onto a surface bound to a host container.
type Renderer struct {
	doc       ports.Document
	formatter ports.PlanarBufferFormatter
	surfaces  ports.SurfaceRenderer
	logger    ports.Logger
	tolerance int

	st      state
	stats   Stats
	lastErr error
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTolerance sets how far, in pixels, the container may drift from the
// surface size on both axes before the surface is resized.
func WithTolerance(px int) Option {
	return func(r *Renderer) {
		if px >= 0 {
			r.tolerance = px
		}
	}
}

// New creates an unbound Renderer.
func New(
	doc ports.Document,
	formatter ports.PlanarBufferFormatter,
	surfaces ports.SurfaceRenderer,
	logger ports.Logger,
	opts ...Option,
) *Renderer {
	r := &Renderer{
		doc:       doc,
		formatter: formatter,
		surfaces:  surfaces,
		logger:    logger.WithComponent("render"),
		tolerance: DefaultTolerance,
		st:        unboundState{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Phase returns the current lifecycle phase.
func (r *Renderer) Phase() Phase {
	return r.st.phase()
}

// VideoSize returns the current video dimensions, or zero when unknown.
func (r *Renderer) VideoSize() Dimensions {
	if b := r.bound(); b != nil {
		return b.video
	}
	return Dimensions{}
}

// Format returns the current frame format, if one has been computed.
func (r *Renderer) Format() (ports.FrameFormat, bool) {
	if b := r.bound(); b != nil && b.format != nil {
		return *b.format, true
	}
	return ports.FrameFormat{}, false
}

// Surface returns the bound surface, or nil when unbound.
func (r *Renderer) Surface() ports.Surface {
	if b := r.bound(); b != nil {
		return b.view.surface
	}
	return nil
}

// Stats returns counters accumulated since the Renderer was created.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// bound returns the bound state, or nil when unbound.
func (r *Renderer) bound() *boundState {
	switch s := r.st.(type) {
	case *boundState:
		return s
	case *renderingState:
		return s.boundState
	default:
		return nil
	}
}

// target returns the active render target, or nil.
func (r *Renderer) target() ports.RenderTarget {
	if s, ok := r.st.(*renderingState); ok {
		return s.target
	}
	return nil
}

// dropTarget forgets the active render target without clearing the surface.
func (r *Renderer) dropTarget() {
	if s, ok := r.st.(*renderingState); ok {
		r.st = s.boundState
	}
}
