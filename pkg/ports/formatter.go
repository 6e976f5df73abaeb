package ports

// FrameFormat describes the geometry of a planar YUV 4:2:0 frame and the
// size it should be displayed at.
type FrameFormat struct {
	Width        int // Luma width
	Height       int // Luma height
	ChromaWidth  int // Chroma plane width, floor(Width/2)
	ChromaHeight int // Chroma plane height, floor(Height/2)

	// Visible region of the luma plane. Zero values mean the full frame.
	CropLeft   int
	CropTop    int
	CropWidth  int
	CropHeight int

	DisplayWidth  int // Target width on the surface
	DisplayHeight int // Target height on the surface
}

// Plane is a single image plane.
type Plane struct {
	Bytes  []byte
	Stride int
}

// Frame is a drawable planar frame.
type Frame struct {
	Format FrameFormat
	Y      Plane
	U      Plane
	V      Plane
}

// PlanarBufferFormatter builds frames out of raw plane buffers.
type PlanarBufferFormatter interface {
	// Format validates the requested format and fills in defaulted fields.
	Format(requested FrameFormat) (FrameFormat, error)

	// LumaPlane wraps raw luma bytes as a plane for format.
	LumaPlane(format FrameFormat, data []byte) (Plane, error)

	// ChromaPlane wraps raw chroma bytes as a plane for format.
	ChromaPlane(format FrameFormat, data []byte) (Plane, error)

	// Frame assembles a frame from planes built for format.
	Frame(format FrameFormat, y, u, v Plane) (Frame, error)
}
