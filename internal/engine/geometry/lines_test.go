package geometry

import (
	"testing"

	"github.com/Faultbox/wireline/pkg/math"
)

func TestGridLines(t *testing.T) {
	gray := math.Vec4{0.5, 0.5, 0.5, 1}
	vertices := GridLines(10, 1, gray)

	if len(vertices)%2 != 0 {
		t.Fatalf("line list must have an even vertex count, got %d", len(vertices))
	}
	// 21 lines per direction for halfExtent 10, spacing 1
	want := 21 * 2 * 2
	if len(vertices) != want {
		t.Errorf("got %d vertices, want %d", len(vertices), want)
	}

	for i, v := range vertices {
		if v.Color != gray {
			t.Fatalf("vertex %d color = %v, want %v", i, v.Color, gray)
		}
		if v.Position.Y != 0 {
			t.Fatalf("vertex %d not on XZ plane: %v", i, v.Position)
		}
	}
}

func TestGridLinesInvalidInput(t *testing.T) {
	if v := GridLines(10, 0, math.Vec4{}); v != nil {
		t.Error("zero spacing should produce no vertices")
	}
	if v := GridLines(-1, 1, math.Vec4{}); v != nil {
		t.Error("negative extent should produce no vertices")
	}
}

func TestAxisLines(t *testing.T) {
	vertices := AxisLines(5)

	if len(vertices) != 6 {
		t.Fatalf("got %d vertices, want 6", len(vertices))
	}

	// Each axis starts at origin and ends on its own axis
	ends := []math.Vec3{
		{X: 5}, {Y: 5}, {Z: 5},
	}
	for i, end := range ends {
		start := vertices[i*2]
		stop := vertices[i*2+1]
		if start.Position != (math.Vec3{}) {
			t.Errorf("axis %d should start at origin, got %v", i, start.Position)
		}
		if stop.Position != end {
			t.Errorf("axis %d should end at %v, got %v", i, end, stop.Position)
		}
		if start.Color != stop.Color {
			t.Errorf("axis %d endpoints must share a color", i)
		}
	}

	// X red, Y green, Z blue
	if vertices[0].Color != (math.Vec4{1, 0, 0, 1}) {
		t.Errorf("X axis color = %v, want red", vertices[0].Color)
	}
	if vertices[2].Color != (math.Vec4{0, 1, 0, 1}) {
		t.Errorf("Y axis color = %v, want green", vertices[2].Color)
	}
	if vertices[4].Color != (math.Vec4{0, 0, 1, 1}) {
		t.Errorf("Z axis color = %v, want blue", vertices[4].Color)
	}
}

func TestBBoxWireframe(t *testing.T) {
	min := math.Vec3{X: -1, Y: -2, Z: -3}
	max := math.Vec3{X: 1, Y: 2, Z: 3}
	white := math.Vec4{1, 1, 1, 1}

	vertices := BBoxWireframe(min, max, white)

	if len(vertices) != BBoxWireframeVertexCount {
		t.Fatalf("got %d vertices, want %d", len(vertices), BBoxWireframeVertexCount)
	}

	// Every vertex must be a corner of the box
	for i, v := range vertices {
		p := v.Position
		if (p.X != min.X && p.X != max.X) ||
			(p.Y != min.Y && p.Y != max.Y) ||
			(p.Z != min.Z && p.Z != max.Z) {
			t.Errorf("vertex %d is not a box corner: %v", i, p)
		}
		if v.Color != white {
			t.Errorf("vertex %d color = %v, want %v", i, v.Color, white)
		}
	}
}

func TestBounds(t *testing.T) {
	vertices := AxisLines(7)
	min, max := Bounds(vertices)

	if min != (math.Vec3{}) {
		t.Errorf("min = %v, want origin", min)
	}
	if max != (math.Vec3{X: 7, Y: 7, Z: 7}) {
		t.Errorf("max = %v, want (7,7,7)", max)
	}
}

func TestBoundsEmpty(t *testing.T) {
	min, max := Bounds(nil)
	if min != (math.Vec3{}) || max != (math.Vec3{}) {
		t.Errorf("empty bounds should be zero, got %v %v", min, max)
	}
}
