package render

import (
	"testing"

	"github.com/user/yuvrender/pkg/mocks"
	"github.com/user/yuvrender/pkg/ports"
)

type fixture struct {
	doc       *mocks.Document
	formatter *mocks.Formatter
	surfaces  *mocks.SurfaceRenderer
	logger    *mocks.Logger
	renderer  *Renderer
}

func newFixture(opts ...Option) *fixture {
	f := &fixture{
		doc:       &mocks.Document{},
		formatter: &mocks.Formatter{},
		surfaces:  &mocks.SurfaceRenderer{},
		logger:    mocks.NewLogger(),
	}
	f.renderer = New(f.doc, f.formatter, f.surfaces, f.logger, opts...)
	return f
}

// i420 returns a raw frame whose planes are filled with distinct values.
func i420(width, height int) RawFrame {
	y := make([]byte, width*height)
	u := make([]byte, (width/2)*(height/2))
	v := make([]byte, (width/2)*(height/2))
	for i := range y {
		y[i] = 0x80
	}
	for i := range u {
		u[i] = 0x40
		v[i] = 0xC0
	}
	return RawFrame{Width: width, Height: height, Y: y, U: u, V: v}
}

func TestSetView_CreatesWrapperAndSurface(t *testing.T) {
	f := newFixture()
	host := mocks.NewHost(640, 360)

	f.renderer.SetView(host)

	if f.renderer.Phase() != PhaseBoundNoFrame {
		t.Fatalf("expected phase %s, got %s", PhaseBoundNoFrame, f.renderer.Phase())
	}
	if len(f.doc.Containers) != 1 || len(f.doc.Surfaces) != 1 {
		t.Fatalf("expected 1 container and 1 surface, got %d and %d", len(f.doc.Containers), len(f.doc.Surfaces))
	}

	wrapper := f.doc.Containers[0]
	if wrapper.Style != (ports.ContainerStyle{Fill: true, Center: true}) {
		t.Errorf("expected fill+center wrapper, got %+v", wrapper.Style)
	}
	if len(host.Children) != 1 || host.Children[0] != ports.Element(wrapper) {
		t.Errorf("expected wrapper to be the only host child, got %v", host.Children)
	}
	if len(wrapper.Children) != 1 || wrapper.Children[0] != ports.Element(f.doc.Surfaces[0]) {
		t.Errorf("expected surface inside wrapper, got %v", wrapper.Children)
	}
	if f.renderer.Surface() != ports.Surface(f.doc.Surfaces[0]) {
		t.Error("expected Surface() to return the created surface")
	}
}

func TestSetView_SameParentTwice(t *testing.T) {
	f := newFixture()
	host := mocks.NewHost(640, 360)

	f.renderer.SetView(host)
	surface := f.renderer.Surface()
	f.renderer.SetView(host)

	if len(f.doc.Containers) != 1 || len(f.doc.Surfaces) != 1 {
		t.Errorf("expected no new elements, got %d containers and %d surfaces",
			len(f.doc.Containers), len(f.doc.Surfaces))
	}
	if f.renderer.Surface() != surface {
		t.Error("expected surface to be unchanged")
	}
	if len(host.Children) != 1 {
		t.Errorf("expected 1 host child, got %d", len(host.Children))
	}
}

// taggedHost is a host passed by value that cannot be compared with ==.
type taggedHost struct {
	*mocks.Host
	tags []string
}

func TestSetView_NonComparableHost(t *testing.T) {
	f := newFixture()
	inner := mocks.NewHost(640, 360)
	host := taggedHost{Host: inner, tags: []string{"main"}}

	f.renderer.SetView(host)
	f.renderer.SetView(host)

	if f.renderer.Phase() != PhaseBoundNoFrame {
		t.Errorf("expected phase %s, got %s", PhaseBoundNoFrame, f.renderer.Phase())
	}
	if len(inner.Children) != 1 {
		t.Errorf("expected 1 host child after rebinding, got %d", len(inner.Children))
	}

	f.renderer.UpdateRender(i420(1280, 720))
	if f.renderer.Phase() != PhaseRendering {
		t.Errorf("expected phase %s, got %s", PhaseRendering, f.renderer.Phase())
	}
}

func TestSetView_NilParent(t *testing.T) {
	f := newFixture()

	f.renderer.SetView(nil)

	if f.renderer.Phase() != PhaseUnbound {
		t.Errorf("expected phase %s, got %s", PhaseUnbound, f.renderer.Phase())
	}
	if len(f.doc.Containers) != 0 {
		t.Errorf("expected no elements created, got %d", len(f.doc.Containers))
	}
}

func TestSetView_RebindTearsDownPrevious(t *testing.T) {
	f := newFixture()
	first := mocks.NewHost(640, 360)
	second := mocks.NewHost(320, 240)

	f.renderer.SetView(first)
	f.renderer.UpdateRender(i420(1280, 720))
	target := f.surfaces.Last()

	f.renderer.SetView(second)

	if len(first.Children) != 0 {
		t.Errorf("expected first host to be emptied, got %d children", len(first.Children))
	}
	if len(second.Children) != 1 {
		t.Errorf("expected second host to hold the wrapper, got %d children", len(second.Children))
	}
	if target.Cleared != 1 {
		t.Errorf("expected previous target to be cleared once, got %d", target.Cleared)
	}
	if f.renderer.Phase() != PhaseBoundNoFrame {
		t.Errorf("expected phase %s, got %s", PhaseBoundNoFrame, f.renderer.Phase())
	}
	if got := f.renderer.VideoSize(); got.Known() {
		t.Errorf("expected unknown video size after rebind, got %+v", got)
	}
}

func TestRemoveView(t *testing.T) {
	f := newFixture()
	host := mocks.NewHost(640, 360)

	f.renderer.SetView(host)
	f.renderer.UpdateRender(i420(1280, 720))
	if f.renderer.Phase() != PhaseRendering {
		t.Fatalf("expected phase %s, got %s", PhaseRendering, f.renderer.Phase())
	}
	target := f.surfaces.Last()

	f.renderer.RemoveView()

	if f.renderer.Phase() != PhaseUnbound {
		t.Errorf("expected phase %s, got %s", PhaseUnbound, f.renderer.Phase())
	}
	if got := f.renderer.VideoSize(); got != (Dimensions{}) {
		t.Errorf("expected zero video size, got %+v", got)
	}
	if _, ok := f.renderer.Format(); ok {
		t.Error("expected no format after RemoveView")
	}
	if f.renderer.Surface() != nil {
		t.Error("expected no surface after RemoveView")
	}
	if target.Cleared != 1 {
		t.Errorf("expected target cleared once, got %d", target.Cleared)
	}
	if len(host.Children) != 0 {
		t.Errorf("expected host to be emptied, got %d children", len(host.Children))
	}
	if len(f.doc.Containers[0].Children) != 0 {
		t.Errorf("expected surface detached from wrapper")
	}
}

func TestRemoveView_Idempotent(t *testing.T) {
	f := newFixture()

	f.renderer.RemoveView()
	f.renderer.SetView(mocks.NewHost(640, 360))
	f.renderer.RemoveView()
	f.renderer.RemoveView()

	if f.renderer.Phase() != PhaseUnbound {
		t.Errorf("expected phase %s, got %s", PhaseUnbound, f.renderer.Phase())
	}
}

func TestWithTolerance(t *testing.T) {
	f := newFixture(WithTolerance(50))
	host := mocks.NewHost(640, 360)

	f.renderer.SetView(host)
	f.renderer.UpdateRender(i420(1280, 720))

	host.Width, host.Height = 680, 380
	f.renderer.UpdateRender(i420(1280, 720))

	if got := f.renderer.Stats().Resizes; got != 1 {
		t.Errorf("expected drift within 50px to be ignored, got %d resizes", got)
	}
}

func TestPhase_String(t *testing.T) {
	tests := map[Phase]string{
		PhaseUnbound:      "unbound",
		PhaseBoundNoFrame: "bound",
		PhaseRendering:    "rendering",
		Phase(99):         "unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), got, want)
		}
	}
}
