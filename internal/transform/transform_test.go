package transform

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-5

func near(a, b Vec3) bool {
	return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps && math32.Abs(a.Z-b.Z) < eps
}

func TestIdentityLeavesPointsAlone(t *testing.T) {
	p := V(1, -2, 3)
	if got := Identity().Apply(p); !near(got, p) {
		t.Fatalf("Identity().Apply(%v) = %v", p, got)
	}
}

func TestZeroScaleTreatedAsOne(t *testing.T) {
	var tr Transform
	p := V(4, 5, 6)
	if got := tr.Apply(p); !near(got, p) {
		t.Fatalf("zero Transform Apply(%v) = %v", p, got)
	}
}

func TestApply(t *testing.T) {
	half := math32.Pi / 2
	tests := []struct {
		name string
		tr   Transform
		in   Vec3
		want Vec3
	}{
		{"translate", At(V(1, 2, 3)), V(1, 0, 0), V(2, 2, 3)},
		{"rotate z", Transform{Rotation: V(0, 0, half)}, V(1, 0, 0), V(0, 1, 0)},
		{"rotate x", Transform{Rotation: V(half, 0, 0)}, V(0, 1, 0), V(0, 0, 1)},
		{"rotate y", Transform{Rotation: V(0, half, 0)}, V(0, 0, 1), V(1, 0, 0)},
		{"scale then translate", Transform{Position: V(0, 1, 0), Scale: V(2, 2, 2)}, V(1, 1, 1), V(2, 3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.Apply(tt.in); !near(got, tt.want) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	if got := V(1, 2, 3).Add(V(0.5, -2, 1)); got != V(1.5, 0, 4) {
		t.Fatalf("Add = %v", got)
	}
}
