// Package rawsource reads headerless I420 frames from a byte stream.
package rawsource

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/user/yuvrender/pkg/render"
)

var (
	// ErrTruncated is returned when the stream ends in the middle of a frame.
	ErrTruncated = errors.New("rawsource: truncated frame")

	// ErrInvalidSize is returned for non-positive frame dimensions.
	ErrInvalidSize = errors.New("rawsource: invalid frame size")
)

// FrameSize returns the byte size of one I420 frame.
func FrameSize(width, height int) int {
	cw, ch := width/2, height/2
	return width*height + 2*cw*ch
}

// Reader reads consecutive frames of a fixed size.
type Reader struct {
	r      *bufio.Reader
	width  int
	height int
	read   int
}

// NewReader creates a Reader for width x height frames.
func NewReader(r io.Reader, width, height int) (*Reader, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Reader{
		r:      bufio.NewReaderSize(r, FrameSize(width, height)),
		width:  width,
		height: height,
	}, nil
}

// Next reads the next frame. It returns io.EOF when the stream ends on a
// frame boundary. Each frame gets freshly allocated planes.
func (r *Reader) Next() (render.RawFrame, error) {
	buf := make([]byte, FrameSize(r.width, r.height))
	n, err := io.ReadFull(r.r, buf)
	switch {
	case err == io.EOF:
		return render.RawFrame{}, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return render.RawFrame{}, fmt.Errorf("%w: frame %d has %d of %d bytes", ErrTruncated, r.read, n, len(buf))
	case err != nil:
		return render.RawFrame{}, fmt.Errorf("read frame %d: %w", r.read, err)
	}

	ySize := r.width * r.height
	cSize := (r.width / 2) * (r.height / 2)
	r.read++
	return render.RawFrame{
		Width:  r.width,
		Height: r.height,
		Y:      buf[:ySize:ySize],
		U:      buf[ySize : ySize+cSize : ySize+cSize],
		V:      buf[ySize+cSize:],
	}, nil
}

// Count returns the number of frames read so far.
func (r *Reader) Count() int {
	return r.read
}
