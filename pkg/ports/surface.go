package ports

// SurfaceRenderer binds render targets to surfaces.
type SurfaceRenderer interface {
	// Attach creates a render target that draws onto surface.
	Attach(surface Surface) (RenderTarget, error)
}

// RenderTarget draws frames onto the surface it was attached to.
type RenderTarget interface {
	// DrawFrame draws frame onto the surface.
	DrawFrame(frame Frame) error

	// Clear blanks the surface.
	Clear()
}
