package mocks

import (
	"github.com/user/yuvrender/pkg/ports"
)

// SurfaceRenderer is a mock implementation of ports.SurfaceRenderer.
// Every attached target is recorded in Targets.
type SurfaceRenderer struct {
	AttachFunc func(surface ports.Surface) (ports.RenderTarget, error)

	// DrawFrameFunc is installed on every target created by the default Attach.
	DrawFrameFunc func(frame ports.Frame) error

	Targets []*RenderTarget
}

func (m *SurfaceRenderer) Attach(surface ports.Surface) (ports.RenderTarget, error) {
	if m.AttachFunc != nil {
		return m.AttachFunc(surface)
	}
	t := &RenderTarget{Surface: surface, DrawFrameFunc: m.DrawFrameFunc}
	m.Targets = append(m.Targets, t)
	return t, nil
}

// Last returns the most recently attached target, or nil.
func (m *SurfaceRenderer) Last() *RenderTarget {
	if len(m.Targets) == 0 {
		return nil
	}
	return m.Targets[len(m.Targets)-1]
}

var _ ports.SurfaceRenderer = (*SurfaceRenderer)(nil)

// RenderTarget is a mock implementation of ports.RenderTarget.
type RenderTarget struct {
	Surface       ports.Surface
	DrawFrameFunc func(frame ports.Frame) error

	Drawn   []ports.Frame
	Cleared int
}

func (m *RenderTarget) DrawFrame(frame ports.Frame) error {
	if m.DrawFrameFunc != nil {
		if err := m.DrawFrameFunc(frame); err != nil {
			return err
		}
	}
	m.Drawn = append(m.Drawn, frame)
	return nil
}

func (m *RenderTarget) Clear() {
	m.Cleared++
}

var _ ports.RenderTarget = (*RenderTarget)(nil)
