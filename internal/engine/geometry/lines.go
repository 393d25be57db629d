// Package geometry builds line-list vertex data for the viewer scene.
package geometry

import (
	"github.com/Faultbox/wireline/internal/engine/pipeline"
	"github.com/Faultbox/wireline/pkg/math"
)

// GridLines generates a square grid of lines on the XZ plane centered at
// the origin. halfExtent is the distance from center to edge, spacing the
// distance between adjacent lines. Vertices come in pairs, one segment
// per pair, for LINES topology.
func GridLines(halfExtent, spacing float32, color math.Vec4) []pipeline.Vertex {
	if spacing <= 0 || halfExtent <= 0 {
		return nil
	}

	// Integer stepping avoids float drift on the last line
	half := int(halfExtent / spacing)
	var vertices []pipeline.Vertex

	// Lines parallel to Z
	for i := -half; i <= half; i++ {
		x := float32(i) * spacing
		vertices = append(vertices,
			pipeline.Vertex{Position: math.Vec3{X: x, Z: -halfExtent}, Color: color},
			pipeline.Vertex{Position: math.Vec3{X: x, Z: halfExtent}, Color: color},
		)
	}

	// Lines parallel to X
	for i := -half; i <= half; i++ {
		z := float32(i) * spacing
		vertices = append(vertices,
			pipeline.Vertex{Position: math.Vec3{X: -halfExtent, Z: z}, Color: color},
			pipeline.Vertex{Position: math.Vec3{X: halfExtent, Z: z}, Color: color},
		)
	}

	return vertices
}

// AxisLines generates the three basis axes from the origin: X red,
// Y green, Z blue.
func AxisLines(length float32) []pipeline.Vertex {
	red := math.Vec4{1, 0, 0, 1}
	green := math.Vec4{0, 1, 0, 1}
	blue := math.Vec4{0, 0, 1, 1}

	return []pipeline.Vertex{
		{Position: math.Vec3{}, Color: red},
		{Position: math.Vec3{X: length}, Color: red},
		{Position: math.Vec3{}, Color: green},
		{Position: math.Vec3{Y: length}, Color: green},
		{Position: math.Vec3{}, Color: blue},
		{Position: math.Vec3{Z: length}, Color: blue},
	}
}

// BBoxWireframeVertexCount is the number of vertices for a box wireframe
// (12 edges × 2 endpoints).
const BBoxWireframeVertexCount = 24

// BBoxWireframe generates line vertices for a wireframe box with the
// given corners in world space.
func BBoxWireframe(min, max math.Vec3, color math.Vec4) []pipeline.Vertex {
	corners := [8]math.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
	}

	edges := [12][2]int{
		// Bottom face
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		// Top face
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		// Vertical edges
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}

	vertices := make([]pipeline.Vertex, 0, BBoxWireframeVertexCount)
	for _, e := range edges {
		vertices = append(vertices,
			pipeline.Vertex{Position: corners[e[0]], Color: color},
			pipeline.Vertex{Position: corners[e[1]], Color: color},
		)
	}
	return vertices
}

// Bounds returns the axis-aligned bounding box of the given vertices.
// Returns zero vectors for an empty slice.
func Bounds(vertices []pipeline.Vertex) (min, max math.Vec3) {
	if len(vertices) == 0 {
		return
	}
	min = vertices[0].Position
	max = vertices[0].Position
	for _, v := range vertices[1:] {
		p := v.Position
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return
}
