package render

import "fmt"

// DrawStage identifies where drawing a frame failed.
type DrawStage int

const (
	StageFormat DrawStage = iota // Normalising the frame format
	StageAttach                  // Attaching a render target
	StagePlane                   // Wrapping raw plane data
	StageFrame                   // Assembling the frame
	StageDraw                    // Drawing onto the target
	StagePanic                   // A collaborator panicked
)

// String returns the string representation of the stage.
func (s DrawStage) String() string {
	switch s {
	case StageFormat:
		return "format"
	case StageAttach:
		return "attach"
	case StagePlane:
		return "plane"
	case StageFrame:
		return "frame"
	case StageDraw:
		return "draw"
	case StagePanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DrawError describes a frame that could not be drawn. It is logged and
// counted, never returned to the caller of UpdateRender.
type DrawError struct {
	Stage DrawStage
	Err   error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("render: %s: %v", e.Stage, e.Err)
}

func (e *DrawError) Unwrap() error {
	return e.Err
}
