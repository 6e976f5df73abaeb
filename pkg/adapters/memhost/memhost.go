// Package memhost provides an in-memory element tree for hosting surfaces
// without a windowing system.
package memhost

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/user/yuvrender/pkg/ports"
)

// Document implements ports.Document.
type Document struct{}

// NewDocument creates a new Document.
func NewDocument() *Document {
	return &Document{}
}

// CreateContainer creates a detached container with the given style.
func (d *Document) CreateContainer(style ports.ContainerStyle) ports.Container {
	return &Container{style: style}
}

// CreateSurface creates a detached, zero-sized surface.
func (d *Document) CreateSurface() ports.Surface {
	return &Surface{}
}

// Ensure Document implements ports.Document
var _ ports.Document = (*Document)(nil)

// node holds what every element has in common.
type node struct {
	parent ports.Container
}

// Parent returns the container the element is attached to, or nil.
func (n *node) Parent() ports.Container {
	return n.parent
}

// attachable is implemented by every element created in this package.
type attachable interface {
	setParent(c ports.Container)
}

func (n *node) setParent(c ports.Container) {
	n.parent = c
}

// children is an ordered child list shared by Host and Container.
type children []ports.Element

func (c *children) append(owner ports.Container, el ports.Element) {
	if a, ok := el.(attachable); ok {
		a.setParent(owner)
	}
	*c = append(*c, el)
}

func (c *children) remove(el ports.Element) {
	for i, child := range *c {
		if child == el {
			*c = append((*c)[:i], (*c)[i+1:]...)
			if a, ok := el.(attachable); ok {
				a.setParent(nil)
			}
			return
		}
	}
}

// Host implements ports.HostContainer with a settable size and visibility.
type Host struct {
	node
	width, height int
	hidden        bool
	kids          children
}

// NewHost creates a visible host of the given size.
func NewHost(width, height int) *Host {
	return &Host{width: width, height: height}
}

// Resize changes the host's client size.
func (h *Host) Resize(width, height int) {
	h.width, h.height = width, height
}

// SetVisible shows or hides the host.
func (h *Host) SetVisible(visible bool) {
	h.hidden = !visible
}

func (h *Host) ClientWidth() int             { return h.width }
func (h *Host) ClientHeight() int            { return h.height }
func (h *Host) Visible() bool                { return !h.hidden }
func (h *Host) AppendChild(el ports.Element) { h.kids.append(h, el) }
func (h *Host) RemoveChild(el ports.Element) { h.kids.remove(el) }
func (h *Host) Children() []ports.Element    { return append([]ports.Element(nil), h.kids...) }

// Snapshot composes the host as displayed: surfaces are drawn at their
// laid-out position over a transparent background.
func (h *Host) Snapshot() image.Image {
	if h.width <= 0 || h.height <= 0 {
		return nil
	}
	out := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	for _, k := range h.kids {
		if c, ok := k.(*Container); ok {
			c.compose(out, image.Point{})
		}
	}
	return out
}

// Ensure Host implements ports.HostContainer and ports.Snapshotter
var (
	_ ports.HostContainer = (*Host)(nil)
	_ ports.Snapshotter   = (*Host)(nil)
)

// Container implements ports.Container. A container with the Fill style
// takes its parent's client size; otherwise it is as large as its largest
// child.
type Container struct {
	node
	style ports.ContainerStyle
	kids  children
}

// Style returns the layout style the container was created with.
func (c *Container) Style() ports.ContainerStyle {
	return c.style
}

func (c *Container) ClientWidth() int {
	if c.style.Fill && c.parent != nil {
		return c.parent.ClientWidth()
	}
	w := 0
	for _, k := range c.kids {
		w = max(w, k.ClientWidth())
	}
	return w
}

func (c *Container) ClientHeight() int {
	if c.style.Fill && c.parent != nil {
		return c.parent.ClientHeight()
	}
	h := 0
	for _, k := range c.kids {
		h = max(h, k.ClientHeight())
	}
	return h
}

func (c *Container) AppendChild(el ports.Element) { c.kids.append(c, el) }
func (c *Container) RemoveChild(el ports.Element) { c.kids.remove(el) }
func (c *Container) Children() []ports.Element    { return append([]ports.Element(nil), c.kids...) }

// Ensure Container implements ports.Container
var _ ports.Container = (*Container)(nil)

// Offset returns the position of a child of the given size inside the
// container. Centred containers split the free space evenly.
func (c *Container) Offset(childW, childH int) image.Point {
	if !c.style.Center {
		return image.Point{}
	}
	return image.Pt((c.ClientWidth()-childW)/2, (c.ClientHeight()-childH)/2)
}

func (c *Container) compose(dst *image.RGBA, at image.Point) {
	for _, k := range c.kids {
		pos := at.Add(c.Offset(k.ClientWidth(), k.ClientHeight()))
		switch el := k.(type) {
		case *Surface:
			if el.pixels != nil {
				draw.Draw(dst, el.pixels.Rect.Add(pos), el.pixels, image.Point{}, draw.Over)
			}
		case *Container:
			el.compose(dst, pos)
		}
	}
}

// Surface implements ports.Surface with an RGBA backing store.
type Surface struct {
	node
	pixels *image.RGBA
	frames int
}

func (s *Surface) ClientWidth() int  { return s.Width() }
func (s *Surface) ClientHeight() int { return s.Height() }

// Width returns the pixel width of the backing store.
func (s *Surface) Width() int {
	if s.pixels == nil {
		return 0
	}
	return s.pixels.Rect.Dx()
}

// Height returns the pixel height of the backing store.
func (s *Surface) Height() int {
	if s.pixels == nil {
		return 0
	}
	return s.pixels.Rect.Dy()
}

// SetSize reallocates the backing store, discarding its contents.
func (s *Surface) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		s.pixels = nil
		return
	}
	s.pixels = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Present copies img into the backing store.
func (s *Surface) Present(img image.Image) {
	if s.pixels == nil || img == nil {
		return
	}
	draw.Draw(s.pixels, s.pixels.Rect, img, img.Bounds().Min, draw.Src)
	s.frames++
}

// Presented returns how many images have been presented.
func (s *Surface) Presented() int {
	return s.frames
}

// Snapshot returns a copy of the backing store, or nil if it is empty.
func (s *Surface) Snapshot() image.Image {
	if s.pixels == nil {
		return nil
	}
	out := image.NewRGBA(s.pixels.Rect)
	copy(out.Pix, s.pixels.Pix)
	return out
}

// Ensure Surface implements ports.Surface and ports.Snapshotter
var (
	_ ports.Surface     = (*Surface)(nil)
	_ ports.Snapshotter = (*Surface)(nil)
)
