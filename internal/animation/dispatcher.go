package animation

import "scene-demo/internal/transform"

// Resolver looks up live element transforms in two disjoint registries.
// A miss is reported with ok == false and is not an error.
type Resolver interface {
	MeshTransform(id uint32) (*transform.Transform, bool)
	LabelTransform(id string) (*transform.Transform, bool)
}

// Dispatcher holds the directive list and applies it once per frame.
// It is owned by the frame loop goroutine and is not safe for concurrent use.
type Dispatcher struct {
	directives []Directive
	skipped    uint64
}

// NewDispatcher returns a dispatcher with no directives.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Add appends a directive. There is no removal; directives live for the process lifetime.
func (d *Dispatcher) Add(dir Directive) {
	d.directives = append(d.directives, dir)
}

// Len returns the number of directives.
func (d *Dispatcher) Len() int {
	return len(d.directives)
}

// Directives returns a copy of the directive list in application order.
func (d *Dispatcher) Directives() []Directive {
	out := make([]Directive, len(d.directives))
	copy(out, d.directives)
	return out
}

// Skipped returns how many directive applications were skipped because the target did not resolve.
func (d *Dispatcher) Skipped() uint64 {
	return d.skipped
}

// Apply runs every directive once, in insertion order, and returns how many resolved.
// Directives whose target is missing are skipped for this frame only.
func (d *Dispatcher) Apply(r Resolver) int {
	applied := 0
	for _, dir := range d.directives {
		t, ok := resolve(r, dir.Target)
		if !ok {
			d.skipped++
			continue
		}
		dir.apply(t)
		applied++
	}
	return applied
}

func resolve(r Resolver, ref Ref) (*transform.Transform, bool) {
	var (
		t  *transform.Transform
		ok bool
	)
	switch ref.Kind() {
	case RefMesh:
		t, ok = r.MeshTransform(ref.mesh)
	case RefText:
		t, ok = r.LabelTransform(ref.text)
	}
	if t == nil {
		return nil, false
	}
	return t, ok
}
