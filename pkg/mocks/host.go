package mocks

import (
	"image"

	"github.com/user/yuvrender/pkg/ports"
)

// Host is a mock implementation of ports.HostContainer.
type Host struct {
	Width    int
	Height   int
	Hidden   bool
	Children []ports.Element
}

// NewHost creates a visible mock host of the given size.
func NewHost(width, height int) *Host {
	return &Host{Width: width, Height: height}
}

func (m *Host) ClientWidth() int  { return m.Width }
func (m *Host) ClientHeight() int { return m.Height }
func (m *Host) Visible() bool     { return !m.Hidden }

func (m *Host) AppendChild(el ports.Element) {
	m.Children = append(m.Children, el)
	if c, ok := el.(*Container); ok {
		c.parent = m
	}
}

func (m *Host) RemoveChild(el ports.Element) {
	m.Children = removeElement(m.Children, el)
	if c, ok := el.(*Container); ok && c.parent == ports.Container(m) {
		c.parent = nil
	}
}

var _ ports.HostContainer = (*Host)(nil)

// Container is a mock implementation of ports.Container.
// A container with the Fill style reports its parent's size.
type Container struct {
	Style    ports.ContainerStyle
	Width    int
	Height   int
	Children []ports.Element

	parent ports.Container
}

func (m *Container) ClientWidth() int {
	if m.Style.Fill && m.parent != nil {
		return m.parent.ClientWidth()
	}
	return m.Width
}

func (m *Container) ClientHeight() int {
	if m.Style.Fill && m.parent != nil {
		return m.parent.ClientHeight()
	}
	return m.Height
}

func (m *Container) AppendChild(el ports.Element) {
	m.Children = append(m.Children, el)
	if c, ok := el.(*Container); ok {
		c.parent = m
	}
}

func (m *Container) RemoveChild(el ports.Element) {
	m.Children = removeElement(m.Children, el)
}

// Parent returns the container this one was appended to.
func (m *Container) Parent() ports.Container {
	return m.parent
}

var _ ports.Container = (*Container)(nil)

// Surface is a mock implementation of ports.Surface.
type Surface struct {
	W, H      int
	SizeCalls int
	Presented []image.Image
}

func (m *Surface) ClientWidth() int  { return m.W }
func (m *Surface) ClientHeight() int { return m.H }
func (m *Surface) Width() int        { return m.W }
func (m *Surface) Height() int       { return m.H }

func (m *Surface) SetSize(width, height int) {
	m.W, m.H = width, height
	m.SizeCalls++
}

func (m *Surface) Present(img image.Image) {
	m.Presented = append(m.Presented, img)
}

var _ ports.Surface = (*Surface)(nil)

// Document is a mock implementation of ports.Document.
// It records every element it creates.
type Document struct {
	Containers []*Container
	Surfaces   []*Surface
}

func (m *Document) CreateContainer(style ports.ContainerStyle) ports.Container {
	c := &Container{Style: style}
	m.Containers = append(m.Containers, c)
	return c
}

func (m *Document) CreateSurface() ports.Surface {
	s := &Surface{}
	m.Surfaces = append(m.Surfaces, s)
	return s
}

var _ ports.Document = (*Document)(nil)

func removeElement(list []ports.Element, el ports.Element) []ports.Element {
	for i, c := range list {
		if c == el {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
