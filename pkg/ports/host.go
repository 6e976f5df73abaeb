// Package ports defines interfaces for external dependencies.
package ports

import "image"

// Element is anything placed inside a host layout.
type Element interface {
	// ClientWidth returns the current laid-out width in pixels.
	ClientWidth() int

	// ClientHeight returns the current laid-out height in pixels.
	ClientHeight() int
}

// Container is an element that holds child elements.
type Container interface {
	Element

	// AppendChild adds el as the last child of the container.
	AppendChild(el Element)

	// RemoveChild detaches el from the container. Removing an element that
	// is not a child does nothing.
	RemoveChild(el Element)
}

// HostContainer is an externally owned container the renderer attaches into.
type HostContainer interface {
	Container

	// Visible reports whether the container is currently displayed.
	Visible() bool
}

// Surface is a drawable pixel target such as a canvas.
type Surface interface {
	Element

	// Width returns the pixel width of the backing store.
	Width() int

	// Height returns the pixel height of the backing store.
	Height() int

	// SetSize changes the pixel size of the backing store.
	// Changing the size discards the current contents.
	SetSize(width, height int)

	// Present replaces the visible contents with img.
	Present(img image.Image)
}

// ContainerStyle describes how a created container lays out its children.
type ContainerStyle struct {
	Fill   bool // Occupy the full size of the parent
	Center bool // Center children on both axes
}

// Document creates layout elements.
type Document interface {
	// CreateContainer creates a detached container with the given style.
	CreateContainer(style ContainerStyle) Container

	// CreateSurface creates a detached surface with a zero-sized backing store.
	CreateSurface() Surface
}
