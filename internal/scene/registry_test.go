package scene

import (
	"reflect"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"scene-demo/internal/animation"
	"scene-demo/internal/text"
	"scene-demo/internal/transform"
)

var _ animation.Resolver = (*Registry)(nil)

var blue, _ = colorful.Hex("#1da2d8")

func TestAddAssignsSequentialIDs(t *testing.T) {
	r := NewRegistry()
	cube := NewCube("cube", transform.V(1, 1, 1), blue)
	line := NewLine("line", []transform.Vec3{transform.V(-10, 0, 0), transform.V(10, 0, 0)}, blue)
	if id := r.Add(cube); id != 1 || cube.ID != 1 {
		t.Errorf("first id = %d (object %d), want 1", id, cube.ID)
	}
	if id := r.Add(line); id != 2 {
		t.Errorf("second id = %d, want 2", id)
	}
	if id, ok := r.IDByName("line"); !ok || id != 2 {
		t.Errorf("IDByName(line) = %d, %v", id, ok)
	}
	got := r.Objects()
	if len(got) != 2 || got[0] != cube || got[1] != line {
		t.Errorf("Objects() order wrong: %v", got)
	}
	if !reflect.DeepEqual(r.Names(), []string{"cube", "line"}) {
		t.Errorf("Names() = %v", r.Names())
	}
}

func TestLookupMissIsNotAnError(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Object(42); ok {
		t.Error("Object(42) found in empty registry")
	}
	if tr, ok := r.MeshTransform(42); ok || tr != nil {
		t.Error("MeshTransform(42) resolved in empty registry")
	}
	if tr, ok := r.LabelTransform("x"); ok || tr != nil {
		t.Error("LabelTransform(x) resolved in empty registry")
	}
}

func TestResolverReturnsLiveTransforms(t *testing.T) {
	r := NewRegistry()
	cube := NewCube("cube", transform.V(1, 1, 1), blue)
	id := r.Add(cube)
	l := text.New(text.Config{ID: "title", Text: "hello"})
	r.AddLabel(l)

	d := animation.NewDispatcher()
	d.Add(animation.Rotate(animation.MeshRef(id), animation.X(0.5)))
	d.Add(animation.Move(animation.TextRef("title"), animation.Y(2)))
	if n := d.Apply(r); n != 2 {
		t.Fatalf("Apply resolved %d, want 2", n)
	}
	if cube.Transform.Rotation.X != 0.5 {
		t.Errorf("cube rotation.x = %v", cube.Transform.Rotation.X)
	}
	if l.Transform.Position.Y != 2 {
		t.Errorf("label position.y = %v", l.Transform.Position.Y)
	}
}

func TestAddLabelReplacesSameID(t *testing.T) {
	r := NewRegistry()
	r.AddLabel(text.New(text.Config{ID: "a", Text: "one"}))
	second := text.New(text.Config{ID: "a", Text: "two"})
	r.AddLabel(second)
	if objs, labels := r.Len(); objs != 0 || labels != 1 {
		t.Errorf("Len() = %d, %d", objs, labels)
	}
	if got, _ := r.Label("a"); got != second {
		t.Error("Label(a) is not the newest label")
	}
	if len(r.Labels()) != 1 {
		t.Errorf("Labels() = %d entries", len(r.Labels()))
	}
}

func TestWorldPoints(t *testing.T) {
	line := NewLine("line", []transform.Vec3{transform.V(1, 0, 0)}, blue)
	line.Transform.Position = transform.V(0, 5, 0)
	got := line.WorldPoints()
	if len(got) != 1 || got[0] != transform.V(1, 5, 0) {
		t.Errorf("WorldPoints() = %v", got)
	}
}

func TestPlaybackAdvanceWraps(t *testing.T) {
	p := &Playback{FrameCount: 3}
	var frames []int
	for i := 0; i < 4; i++ {
		frames = append(frames, p.Advance())
	}
	if !reflect.DeepEqual(frames, []int{1, 2, 0, 1}) {
		t.Errorf("frames = %v", frames)
	}
	empty := &Playback{Frame: 5}
	if empty.Advance() != 0 {
		t.Error("empty playback advanced")
	}
}

func TestKindString(t *testing.T) {
	if KindCube.String() != "cube" || KindLine.String() != "line" || KindModel.String() != "model" || Kind(9).String() != "unknown" {
		t.Error("Kind.String mismatch")
	}
}
