package render

import (
	"github.com/user/yuvrender/pkg/ports"
)

// ComputeFormat returns the format of a 4:2:0 frame of videoW x videoH
// displayed at displayW x displayH. Chroma planes are half the luma size,
// rounded down.
func ComputeFormat(videoW, videoH, displayW, displayH int) ports.FrameFormat {
	return ports.FrameFormat{
		Width:         videoW,
		Height:        videoH,
		ChromaWidth:   videoW / 2,
		ChromaHeight:  videoH / 2,
		DisplayWidth:  displayW,
		DisplayHeight: displayH,
	}
}

// refreshFormat recomputes the format for the current video size and
// surface size.
func (r *Renderer) refreshFormat(b *boundState) error {
	s := b.view.surface
	requested := ComputeFormat(b.video.Width, b.video.Height, s.Width(), s.Height())
	format, err := r.formatter.Format(requested)
	if err != nil {
		b.format = nil
		return &DrawError{Stage: StageFormat, Err: err}
	}
	b.format = &format
	return nil
}
