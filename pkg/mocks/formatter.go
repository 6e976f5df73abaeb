package mocks

import (
	"github.com/user/yuvrender/pkg/ports"
)

// Formatter is a mock implementation of ports.PlanarBufferFormatter.
// Without overrides it accepts everything and wraps data unchanged.
type Formatter struct {
	FormatFunc      func(requested ports.FrameFormat) (ports.FrameFormat, error)
	LumaPlaneFunc   func(format ports.FrameFormat, data []byte) (ports.Plane, error)
	ChromaPlaneFunc func(format ports.FrameFormat, data []byte) (ports.Plane, error)
	FrameFunc       func(format ports.FrameFormat, y, u, v ports.Plane) (ports.Frame, error)

	Formats []ports.FrameFormat
}

func (m *Formatter) Format(requested ports.FrameFormat) (ports.FrameFormat, error) {
	m.Formats = append(m.Formats, requested)
	if m.FormatFunc != nil {
		return m.FormatFunc(requested)
	}
	return requested, nil
}

func (m *Formatter) LumaPlane(format ports.FrameFormat, data []byte) (ports.Plane, error) {
	if m.LumaPlaneFunc != nil {
		return m.LumaPlaneFunc(format, data)
	}
	return ports.Plane{Bytes: data, Stride: format.Width}, nil
}

func (m *Formatter) ChromaPlane(format ports.FrameFormat, data []byte) (ports.Plane, error) {
	if m.ChromaPlaneFunc != nil {
		return m.ChromaPlaneFunc(format, data)
	}
	return ports.Plane{Bytes: data, Stride: format.ChromaWidth}, nil
}

func (m *Formatter) Frame(format ports.FrameFormat, y, u, v ports.Plane) (ports.Frame, error) {
	if m.FrameFunc != nil {
		return m.FrameFunc(format, y, u, v)
	}
	return ports.Frame{Format: format, Y: y, U: u, V: v}, nil
}

var _ ports.PlanarBufferFormatter = (*Formatter)(nil)
