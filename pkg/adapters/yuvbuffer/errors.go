package yuvbuffer

import "errors"

var (
	// ErrInvalidFormat is returned when a format has non-positive or inconsistent dimensions.
	ErrInvalidFormat = errors.New("yuvbuffer: invalid format")

	// ErrShortBuffer is returned when raw plane data is smaller than the plane.
	ErrShortBuffer = errors.New("yuvbuffer: buffer too short for plane")

	// ErrPlaneMismatch is returned when a plane does not match the frame format.
	ErrPlaneMismatch = errors.New("yuvbuffer: plane does not match format")
)
