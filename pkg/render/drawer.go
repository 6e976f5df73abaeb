package render

import (
	"fmt"

	"github.com/user/yuvrender/pkg/ports"
)

// UpdateRender draws one raw frame. It does nothing unless a view is bound
// and the host container is visible.
//
// A change of video resolution invalidates the format, the render target and
// the retained frame, and forces the surface to be refitted. Failures are
// logged and discard the render target; the next call attaches a new one.
func (r *Renderer) UpdateRender(frame RawFrame) {
	b := r.bound()
	if b == nil || !b.view.parent.Visible() {
		return
	}

	incoming := Dimensions{Width: frame.Width, Height: frame.Height}
	forced := false
	if !b.video.Known() {
		b.video = incoming
	} else if b.video != incoming {
		r.logger.Debug("Video size changed from %dx%d to %dx%d",
			b.video.Width, b.video.Height, incoming.Width, incoming.Height)
		b.video = incoming
		b.format = nil
		b.frame = nil
		r.dropTarget()
		r.stats.FormatChanges++
		forced = true
	}

	r.drawFrame(b, forced, frame)
}

// Redraw draws the retained frame again, refitting the surface to the
// container first. It is meant for container resizes between frames.
func (r *Renderer) Redraw() {
	b := r.bound()
	if b == nil || !b.view.parent.Visible() {
		return
	}
	r.drawFrame(b, false, RawFrame{})
}

// ClearRender clears and discards the active render target. The view and
// the video dimensions are kept.
func (r *Renderer) ClearRender() {
	if t := r.target(); t != nil {
		t.Clear()
	}
	r.dropTarget()
}

// LastError returns the most recent draw failure, or nil.
func (r *Renderer) LastError() error {
	return r.lastErr
}

// drawFrame refits the surface, refreshes the format and render target as
// needed, then draws. A panic from any collaborator is recorded as a
// failure.
func (r *Renderer) drawFrame(b *boundState, forced bool, frame RawFrame) {
	defer func() {
		if p := recover(); p != nil {
			r.fail(&DrawError{Stage: StagePanic, Err: fmt.Errorf("%v", p)})
		}
	}()

	resized := r.resize(b, forced)

	s := b.view.surface
	if !b.video.Known() || s.Width() == 0 || s.Height() == 0 {
		return
	}
	if !frame.hasData() && b.frame == nil {
		return
	}

	if forced || resized || b.format == nil {
		if err := r.refreshFormat(b); err != nil {
			r.fail(err)
			return
		}
	}

	target := r.target()
	if target == nil || forced || resized {
		t, err := r.surfaces.Attach(s)
		if err != nil {
			r.fail(&DrawError{Stage: StageAttach, Err: err})
			return
		}
		r.st = &renderingState{boundState: b, target: t}
		r.stats.TargetsCreated++
		target = t
	}

	if err := r.draw(b, target, frame); err != nil {
		r.fail(err)
		return
	}
	r.stats.FramesDrawn++
}

// draw builds a frame from raw (or reuses the retained one) and hands it to
// target.
func (r *Renderer) draw(b *boundState, target ports.RenderTarget, raw RawFrame) error {
	if raw.hasData() {
		f, err := r.buildFrame(*b.format, raw)
		if err != nil {
			return err
		}
		b.frame = &f
	}

	f := *b.frame
	f.Format = *b.format
	if err := target.DrawFrame(f); err != nil {
		return &DrawError{Stage: StageDraw, Err: err}
	}
	return nil
}

func (r *Renderer) buildFrame(format ports.FrameFormat, raw RawFrame) (ports.Frame, error) {
	y, err := r.formatter.LumaPlane(format, raw.Y)
	if err != nil {
		return ports.Frame{}, &DrawError{Stage: StagePlane, Err: fmt.Errorf("luma: %w", err)}
	}
	u, err := r.formatter.ChromaPlane(format, raw.U)
	if err != nil {
		return ports.Frame{}, &DrawError{Stage: StagePlane, Err: fmt.Errorf("chroma u: %w", err)}
	}
	v, err := r.formatter.ChromaPlane(format, raw.V)
	if err != nil {
		return ports.Frame{}, &DrawError{Stage: StagePlane, Err: fmt.Errorf("chroma v: %w", err)}
	}
	f, err := r.formatter.Frame(format, y, u, v)
	if err != nil {
		return ports.Frame{}, &DrawError{Stage: StageFrame, Err: err}
	}
	return f, nil
}

// fail records a draw failure and discards the render target. The surface
// keeps showing the last frame that was drawn.
func (r *Renderer) fail(err error) {
	r.stats.DrawFailures++
	r.lastErr = err
	r.logger.Warn("Render error: %v", err)
	r.dropTarget()
}
