package render

import (
	"reflect"

	"github.com/user/yuvrender/pkg/ports"
)

// binding is the renderer's attachment to a host container.
type binding struct {
	parent  ports.HostContainer
	wrapper ports.Container
	surface ports.Surface
}

// SetView binds the renderer to parent, creating a centred wrapper and a
// surface inside it. Binding to the already bound parent does nothing;
// binding to another parent tears the previous view down first. Hosts that
// cannot be compared with == are never treated as the bound parent.
func (r *Renderer) SetView(parent ports.HostContainer) {
	if parent == nil {
		return
	}
	if b := r.bound(); b != nil && sameHost(b.view.parent, parent) {
		return
	}
	r.RemoveView()

	wrapper := r.doc.CreateContainer(ports.ContainerStyle{Fill: true, Center: true})
	parent.AppendChild(wrapper)
	surface := r.doc.CreateSurface()
	wrapper.AppendChild(surface)

	r.st = &boundState{
		view: binding{
			parent:  parent,
			wrapper: wrapper,
			surface: surface,
		},
	}
	r.logger.Debug("View bound (%dx%d)", parent.ClientWidth(), parent.ClientHeight())
}

// sameHost reports whether a and b are the same host without panicking on
// non-comparable dynamic types.
func sameHost(a, b ports.HostContainer) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// RemoveView clears any active render target, detaches the wrapper and
// surface, and forgets the video dimensions. It is safe to call when
// nothing is bound.
func (r *Renderer) RemoveView() {
	b := r.bound()
	if b == nil {
		return
	}
	if t := r.target(); t != nil {
		t.Clear()
	}
	b.view.wrapper.RemoveChild(b.view.surface)
	b.view.parent.RemoveChild(b.view.wrapper)

	r.st = unboundState{}
	r.logger.Debug("View removed")
}
