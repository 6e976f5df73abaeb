package render

// DefaultTolerance is the default resize tolerance in pixels.
const DefaultTolerance = 5

// ShouldResize reports whether a surface of the given size needs resizing to
// follow the container. A forced resize always does; otherwise the surface is
// left alone only while both axes are within tolerance.
func ShouldResize(forced bool, container, surface Dimensions, tolerance int) bool {
	if forced {
		return true
	}
	return abs(container.Width-surface.Width) > tolerance ||
		abs(container.Height-surface.Height) > tolerance
}

// ComputeSize returns the largest size with the video's aspect ratio that fits
// the container. A container wider than the video fits to its height,
// otherwise to its width. Fractional pixels are dropped.
// Non-positive inputs yield 0, 0.
func ComputeSize(videoW, videoH, containerW, containerH int) (int, int) {
	if videoW <= 0 || videoH <= 0 || containerW <= 0 || containerH <= 0 {
		return 0, 0
	}
	// containerW/containerH >= videoW/videoH, cross-multiplied.
	if containerW*videoH >= videoW*containerH {
		return containerH * videoW / videoH, containerH
	}
	return containerW, containerW * videoH / videoW
}

// resize fits the surface to the wrapper and reports whether its pixel size
// changed.
func (r *Renderer) resize(b *boundState, forced bool) bool {
	s := b.view.surface
	container := Dimensions{Width: b.view.wrapper.ClientWidth(), Height: b.view.wrapper.ClientHeight()}
	current := Dimensions{Width: s.Width(), Height: s.Height()}

	if !ShouldResize(forced, container, current, r.tolerance) {
		return false
	}
	w, h := ComputeSize(b.video.Width, b.video.Height, container.Width, container.Height)
	if w == 0 || h == 0 {
		return false
	}
	if w == current.Width && h == current.Height {
		return false
	}

	s.SetSize(w, h)
	r.stats.Resizes++
	r.logger.Debug("Surface resized from %dx%d to %dx%d", current.Width, current.Height, w, h)
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
