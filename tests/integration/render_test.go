// Package integration contains integration tests for the frame renderer
// wired to its real adapters.
package integration

import (
	"bytes"
	"context"
	"image"
	"testing"

	"github.com/user/yuvrender/pkg/adapters/ggsurface"
	"github.com/user/yuvrender/pkg/adapters/logger"
	"github.com/user/yuvrender/pkg/adapters/memhost"
	"github.com/user/yuvrender/pkg/adapters/nullsink"
	"github.com/user/yuvrender/pkg/adapters/rawsource"
	"github.com/user/yuvrender/pkg/adapters/yuvbuffer"
	"github.com/user/yuvrender/pkg/mocks"
	"github.com/user/yuvrender/pkg/player"
	"github.com/user/yuvrender/pkg/render"
)

// frame returns a uniform I420 frame with the given luma.
func frame(width, height int, luma byte) render.RawFrame {
	c := (width / 2) * (height / 2)
	return render.RawFrame{
		Width:  width,
		Height: height,
		Y:      bytes.Repeat([]byte{luma}, width*height),
		U:      bytes.Repeat([]byte{128}, c),
		V:      bytes.Repeat([]byte{128}, c),
	}
}

func newRenderer() *render.Renderer {
	return render.New(
		memhost.NewDocument(),
		yuvbuffer.New(),
		ggsurface.New(ggsurface.WithScaler(ggsurface.ScalerByName("nearest"))),
		logger.NewNoop(),
	)
}

func surfaceOf(t *testing.T, r *render.Renderer) *memhost.Surface {
	t.Helper()
	s, ok := r.Surface().(*memhost.Surface)
	if !ok {
		t.Fatalf("expected a memhost surface, got %T", r.Surface())
	}
	return s
}

func luma(img image.Image, x, y int) (uint32, uint32) {
	r, _, _, a := img.At(x, y).RGBA()
	return r >> 8, a >> 8
}

// TestRender_ResolutionChange follows a 16:9 stream switching to 4:3 in a
// 640x360 container.
func TestRender_ResolutionChange(t *testing.T) {
	host := memhost.NewHost(640, 360)
	r := newRenderer()
	r.SetView(host)

	r.UpdateRender(frame(1280, 720, 235))

	s := surfaceOf(t, r)
	if s.Width() != 640 || s.Height() != 360 {
		t.Fatalf("expected 640x360 surface, got %dx%d", s.Width(), s.Height())
	}

	r.UpdateRender(frame(640, 480, 235))

	if s.Width() != 480 || s.Height() != 360 {
		t.Fatalf("expected 480x360 surface, got %dx%d", s.Width(), s.Height())
	}
	stats := r.Stats()
	if stats.FormatChanges != 1 || stats.TargetsCreated != 2 || stats.FramesDrawn != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if r.LastError() != nil {
		t.Errorf("unexpected error %v", r.LastError())
	}

	shot := host.Snapshot()
	if v, a := luma(shot, 320, 180); a != 255 || v < 200 {
		t.Errorf("expected bright centre pixel, got value %d alpha %d", v, a)
	}
	// The surface is centred, leaving 80px of the host uncovered on each side.
	if _, a := luma(shot, 40, 180); a != 0 {
		t.Errorf("expected uncovered pixel left of the surface, got alpha %d", a)
	}
}

func TestRender_ContainerResizeAndVisibility(t *testing.T) {
	host := memhost.NewHost(640, 360)
	r := newRenderer()
	r.SetView(host)
	r.UpdateRender(frame(64, 48, 100))
	s := surfaceOf(t, r)

	host.Resize(320, 240)
	r.Redraw()

	if s.Width() != 320 || s.Height() != 240 {
		t.Fatalf("expected 320x240 surface, got %dx%d", s.Width(), s.Height())
	}
	if v, _ := luma(s.Snapshot(), 160, 120); v != 100 {
		t.Errorf("expected redrawn frame with luma 100, got %d", v)
	}

	presented := s.Presented()
	host.SetVisible(false)
	r.UpdateRender(frame(64, 48, 200))
	if s.Presented() != presented {
		t.Error("expected no drawing while hidden")
	}

	host.SetVisible(true)
	r.UpdateRender(frame(64, 48, 200))
	if v, _ := luma(s.Snapshot(), 160, 120); v != 200 {
		t.Errorf("expected new frame with luma 200, got %d", v)
	}
}

func TestRender_ClearAndRemoveView(t *testing.T) {
	host := memhost.NewHost(64, 48)
	r := newRenderer()
	r.SetView(host)
	r.UpdateRender(frame(64, 48, 200))
	s := surfaceOf(t, r)

	r.ClearRender()

	if v, _ := luma(s.Snapshot(), 32, 24); v != 0 {
		t.Errorf("expected cleared surface, got luma %d", v)
	}
	if r.Phase() != render.PhaseBoundNoFrame {
		t.Errorf("expected phase %s, got %s", render.PhaseBoundNoFrame, r.Phase())
	}

	r.RemoveView()

	if len(host.Children()) != 0 {
		t.Errorf("expected host to be empty, got %d children", len(host.Children()))
	}
	if r.Phase() != render.PhaseUnbound {
		t.Errorf("expected phase %s, got %s", render.PhaseUnbound, r.Phase())
	}
}

// TestPlayer_RawStreams plays two raw files of different resolution through
// the real adapters.
func TestPlayer_RawStreams(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("wide.yuv", bytes.Repeat([]byte{128}, 3*rawsource.FrameSize(64, 36)))
	fs.WriteFile("square.yuv", bytes.Repeat([]byte{128}, 2*rawsource.FrameSize(32, 32)))

	host := memhost.NewHost(0, 0)
	p := player.New(newRenderer(), host, fs, nullsink.New(), logger.NewNoop())

	cfg := player.DefaultConfig()
	cfg.ContainerWidth, cfg.ContainerHeight = 128, 72
	cfg.Streams = []player.Stream{
		{Path: "wide.yuv", Width: 64, Height: 36},
		{Path: "square.yuv", Width: 32, Height: 32},
	}
	cfg.Events = []player.Event{{Frame: 4, Action: player.ActionResize, Width: 100, Height: 100}}

	result, err := p.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Frames != 5 {
		t.Errorf("expected 5 frames, got %d", result.Frames)
	}
	if result.Stats.DrawFailures != 0 {
		t.Errorf("expected no draw failures, got %d (%v)", result.Stats.DrawFailures, result.LastError)
	}
	if result.Surface != (render.Dimensions{Width: 100, Height: 100}) {
		t.Errorf("expected 100x100 surface, got %+v", result.Surface)
	}
}
