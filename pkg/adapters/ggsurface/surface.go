// Package ggsurface provides a surface renderer implementation using the gg library.
package ggsurface

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/yuvrender/pkg/ports"
)

var (
	// ErrNoSurface is returned when attaching to a nil surface.
	ErrNoSurface = errors.New("ggsurface: no surface")

	// ErrEmptySurface is returned when drawing onto a surface with no pixels.
	ErrEmptySurface = errors.New("ggsurface: surface has zero size")

	// ErrInvalidFrame is returned when plane data does not cover the frame.
	ErrInvalidFrame = errors.New("ggsurface: invalid frame")
)

// Renderer implements ports.SurfaceRenderer using the gg library.
type Renderer struct {
	background color.Color
	scaler     draw.Scaler
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBackground sets the letterbox colour.
func WithBackground(c color.Color) Option {
	return func(r *Renderer) {
		r.background = c
	}
}

// WithScaler sets the interpolator used to scale frames to display size.
func WithScaler(s draw.Scaler) Option {
	return func(r *Renderer) {
		if s != nil {
			r.scaler = s
		}
	}
}

// ScalerByName returns the interpolator for name: "nearest", "bilinear",
// "approx-bilinear" or "catmullrom". Unknown names return nil.
func ScalerByName(name string) draw.Scaler {
	switch name {
	case "nearest":
		return draw.NearestNeighbor
	case "bilinear":
		return draw.BiLinear
	case "approx-bilinear":
		return draw.ApproxBiLinear
	case "catmullrom":
		return draw.CatmullRom
	default:
		return nil
	}
}

// New creates a new Renderer with a black background and bilinear scaling.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		background: color.Black,
		scaler:     draw.ApproxBiLinear,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Attach creates a render target for surface.
func (r *Renderer) Attach(surface ports.Surface) (ports.RenderTarget, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	return &Target{
		surface:    surface,
		background: r.background,
		scaler:     r.scaler,
	}, nil
}

// Ensure Renderer implements ports.SurfaceRenderer
var _ ports.SurfaceRenderer = (*Renderer)(nil)

// Target implements ports.RenderTarget on a gg.Context sized to the surface.
type Target struct {
	surface    ports.Surface
	background color.Color
	scaler     draw.Scaler
	dc         *gg.Context
}

// DrawFrame converts frame to RGB, scales it to the display size and draws
// it centred on the surface over the background colour.
func (t *Target) DrawFrame(frame ports.Frame) error {
	w, h := t.surface.Width(), t.surface.Height()
	if w <= 0 || h <= 0 {
		return ErrEmptySurface
	}

	src, err := toYCbCr(frame)
	if err != nil {
		return err
	}
	crop := cropRect(frame.Format).Intersect(src.Rect)
	if crop.Empty() {
		return fmt.Errorf("%w: empty crop", ErrInvalidFrame)
	}

	dw, dh := frame.Format.DisplayWidth, frame.Format.DisplayHeight
	if dw <= 0 || dw > w {
		dw = w
	}
	if dh <= 0 || dh > h {
		dh = h
	}

	scaled := image.NewRGBA(image.Rect(0, 0, dw, dh))
	t.scaler.Scale(scaled, scaled.Bounds(), src, crop, draw.Src, nil)

	dc := t.context(w, h)
	dc.SetColor(t.background)
	dc.Clear()
	dc.DrawImageAnchored(scaled, w/2, h/2, 0.5, 0.5)
	t.surface.Present(dc.Image())
	return nil
}

// Clear fills the surface with the background colour.
func (t *Target) Clear() {
	w, h := t.surface.Width(), t.surface.Height()
	if w <= 0 || h <= 0 {
		return
	}
	dc := t.context(w, h)
	dc.SetColor(t.background)
	dc.Clear()
	t.surface.Present(dc.Image())
}

// context returns a drawing context matching the surface size, replacing
// the previous one if the surface was resized.
func (t *Target) context(w, h int) *gg.Context {
	if t.dc == nil || t.dc.Width() != w || t.dc.Height() != h {
		t.dc = gg.NewContext(w, h)
	}
	return t.dc
}

// Ensure Target implements ports.RenderTarget
var _ ports.RenderTarget = (*Target)(nil)

// toYCbCr wraps the frame planes as a 4:2:0 image. An odd trailing luma
// row or column has no chroma samples and is left out.
func toYCbCr(frame ports.Frame) (*image.YCbCr, error) {
	f := frame.Format
	w := min(f.Width, 2*f.ChromaWidth)
	h := min(f.Height, 2*f.ChromaHeight)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidFrame, f.Width, f.Height)
	}
	if !covers(frame.Y, w, h) || !covers(frame.U, w/2, h/2) || !covers(frame.V, w/2, h/2) {
		return nil, fmt.Errorf("%w: planes do not cover %dx%d", ErrInvalidFrame, w, h)
	}
	if frame.U.Stride != frame.V.Stride {
		return nil, fmt.Errorf("%w: chroma strides differ (%d, %d)", ErrInvalidFrame, frame.U.Stride, frame.V.Stride)
	}

	return &image.YCbCr{
		Y:              frame.Y.Bytes,
		Cb:             frame.U.Bytes,
		Cr:             frame.V.Bytes,
		YStride:        frame.Y.Stride,
		CStride:        frame.U.Stride,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, w, h),
	}, nil
}

func covers(p ports.Plane, width, height int) bool {
	return p.Stride >= width && len(p.Bytes) >= p.Stride*(height-1)+width
}

func cropRect(f ports.FrameFormat) image.Rectangle {
	cw, ch := f.CropWidth, f.CropHeight
	if cw == 0 {
		cw = f.Width - f.CropLeft
	}
	if ch == 0 {
		ch = f.Height - f.CropTop
	}
	return image.Rect(f.CropLeft, f.CropTop, f.CropLeft+cw, f.CropTop+ch)
}
