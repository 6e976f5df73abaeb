// Package yuvbuffer builds planar YUV 4:2:0 frames from raw plane buffers.
package yuvbuffer

import (
	"fmt"

	"github.com/user/yuvrender/pkg/ports"
)

// Formatter implements ports.PlanarBufferFormatter.
type Formatter struct {
	copyPlanes bool
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithCopy makes planes own a copy of the raw data instead of aliasing it.
// Use it when the caller reuses its buffers between frames.
func WithCopy() Option {
	return func(f *Formatter) {
		f.copyPlanes = true
	}
}

// New creates a new Formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format validates the requested format and defaults the crop rectangle
// to the full frame and the display size to the crop size.
func (f *Formatter) Format(requested ports.FrameFormat) (ports.FrameFormat, error) {
	if requested.Width <= 0 || requested.Height <= 0 {
		return requested, fmt.Errorf("%w: size %dx%d", ErrInvalidFormat, requested.Width, requested.Height)
	}
	if requested.ChromaWidth != requested.Width/2 || requested.ChromaHeight != requested.Height/2 {
		return requested, fmt.Errorf("%w: chroma %dx%d for luma %dx%d",
			ErrInvalidFormat, requested.ChromaWidth, requested.ChromaHeight, requested.Width, requested.Height)
	}

	out := requested
	if out.CropWidth == 0 {
		out.CropWidth = out.Width - out.CropLeft
	}
	if out.CropHeight == 0 {
		out.CropHeight = out.Height - out.CropTop
	}
	if out.CropLeft < 0 || out.CropTop < 0 || out.CropWidth <= 0 || out.CropHeight <= 0 ||
		out.CropLeft+out.CropWidth > out.Width || out.CropTop+out.CropHeight > out.Height {
		return requested, fmt.Errorf("%w: crop %d,%d %dx%d outside %dx%d", ErrInvalidFormat,
			out.CropLeft, out.CropTop, out.CropWidth, out.CropHeight, out.Width, out.Height)
	}

	if out.DisplayWidth == 0 {
		out.DisplayWidth = out.CropWidth
	}
	if out.DisplayHeight == 0 {
		out.DisplayHeight = out.CropHeight
	}
	if out.DisplayWidth < 0 || out.DisplayHeight < 0 {
		return requested, fmt.Errorf("%w: display %dx%d", ErrInvalidFormat, out.DisplayWidth, out.DisplayHeight)
	}
	return out, nil
}

// LumaPlane wraps data as a Width x Height plane.
func (f *Formatter) LumaPlane(format ports.FrameFormat, data []byte) (ports.Plane, error) {
	return f.plane(data, format.Width, format.Height)
}

// ChromaPlane wraps data as a ChromaWidth x ChromaHeight plane.
func (f *Formatter) ChromaPlane(format ports.FrameFormat, data []byte) (ports.Plane, error) {
	return f.plane(data, format.ChromaWidth, format.ChromaHeight)
}

// Frame checks that the planes fit format and assembles them.
func (f *Formatter) Frame(format ports.FrameFormat, y, u, v ports.Plane) (ports.Frame, error) {
	if err := checkPlane("y", y, format.Width, format.Height); err != nil {
		return ports.Frame{}, err
	}
	if err := checkPlane("u", u, format.ChromaWidth, format.ChromaHeight); err != nil {
		return ports.Frame{}, err
	}
	if err := checkPlane("v", v, format.ChromaWidth, format.ChromaHeight); err != nil {
		return ports.Frame{}, err
	}
	return ports.Frame{Format: format, Y: y, U: u, V: v}, nil
}

func (f *Formatter) plane(data []byte, width, height int) (ports.Plane, error) {
	size := width * height
	if len(data) < size {
		return ports.Plane{}, fmt.Errorf("%w: have %d bytes, need %d (%dx%d)",
			ErrShortBuffer, len(data), size, width, height)
	}
	data = data[:size]
	if f.copyPlanes {
		data = append([]byte(nil), data...)
	}
	return ports.Plane{Bytes: data, Stride: width}, nil
}

func checkPlane(name string, p ports.Plane, width, height int) error {
	if p.Stride < width {
		return fmt.Errorf("%w: %s stride %d < width %d", ErrPlaneMismatch, name, p.Stride, width)
	}
	if height > 0 && len(p.Bytes) < p.Stride*(height-1)+width {
		return fmt.Errorf("%w: %s has %d bytes for %dx%d at stride %d",
			ErrPlaneMismatch, name, len(p.Bytes), width, height, p.Stride)
	}
	return nil
}

// Ensure Formatter implements ports.PlanarBufferFormatter
var _ ports.PlanarBufferFormatter = (*Formatter)(nil)
