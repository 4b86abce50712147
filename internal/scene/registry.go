package scene

import (
	"sort"

	"scene-demo/internal/text"
	"scene-demo/internal/transform"
)

// Registry tracks which ids correspond to live elements: objects by numeric id
// and labels by string id. Elements are only ever inserted.
type Registry struct {
	nextID  uint32
	objects map[uint32]*Object
	names   map[string]uint32
	order   []uint32
	labels  map[string]*text.Label
	lorder  []string
}

// NewRegistry returns an empty registry. The first object gets id 1.
func NewRegistry() *Registry {
	return &Registry{
		objects: make(map[uint32]*Object),
		names:   make(map[string]uint32),
		labels:  make(map[string]*text.Label),
	}
}

// Add inserts o, assigns its id and returns it. A non-empty name is indexed for IDByName;
// a repeated name points at the newest object.
func (r *Registry) Add(o *Object) uint32 {
	r.nextID++
	o.ID = r.nextID
	r.objects[o.ID] = o
	r.order = append(r.order, o.ID)
	if o.Name != "" {
		r.names[o.Name] = o.ID
	}
	return o.ID
}

// AddLabel inserts l under its ID. A label with the same ID replaces the old one.
func (r *Registry) AddLabel(l *text.Label) string {
	if _, exists := r.labels[l.ID]; !exists {
		r.lorder = append(r.lorder, l.ID)
	}
	r.labels[l.ID] = l
	return l.ID
}

// Object looks up an object by id.
func (r *Registry) Object(id uint32) (*Object, bool) {
	o, ok := r.objects[id]
	return o, ok
}

// Label looks up a label by id.
func (r *Registry) Label(id string) (*text.Label, bool) {
	l, ok := r.labels[id]
	return l, ok
}

// IDByName returns the id of the object registered under name.
func (r *Registry) IDByName(name string) (uint32, bool) {
	id, ok := r.names[name]
	return id, ok
}

// MeshTransform implements animation.Resolver.
func (r *Registry) MeshTransform(id uint32) (*transform.Transform, bool) {
	o, ok := r.objects[id]
	if !ok {
		return nil, false
	}
	return &o.Transform, true
}

// LabelTransform implements animation.Resolver.
func (r *Registry) LabelTransform(id string) (*transform.Transform, bool) {
	l, ok := r.labels[id]
	if !ok {
		return nil, false
	}
	return &l.Transform, true
}

// Objects returns objects in insertion order.
func (r *Registry) Objects() []*Object {
	out := make([]*Object, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.objects[id])
	}
	return out
}

// Labels returns labels in insertion order.
func (r *Registry) Labels() []*text.Label {
	out := make([]*text.Label, 0, len(r.lorder))
	for _, id := range r.lorder {
		out = append(out, r.labels[id])
	}
	return out
}

// Names returns the indexed object names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.names))
	for n := range r.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of objects and labels.
func (r *Registry) Len() (objects, labels int) {
	return len(r.objects), len(r.labels)
}
