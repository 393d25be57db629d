// Package pipeline implements the vertex stage of the line renderer.
package pipeline

import "github.com/Faultbox/wireline/pkg/math"

// Vertex is one element of a line vertex buffer: object-space position
// plus an unpremultiplied RGBA color.
type Vertex struct {
	Position math.Vec3
	Color    math.Vec4
}

// FrameUniforms is the uniform block shared by every vertex of a frame.
// It is written once per frame by the camera and read-only afterwards.
//
// CameraPosition is reserved for view-dependent shading in a companion
// fragment stage; the vertex transform never reads it, but the field
// stays in the block so the GPU layout matches.
type FrameUniforms struct {
	CameraPosition math.Vec3
	ViewProjection math.Mat4
}

// VertexOutput is what the vertex stage hands to the rasterizer: a
// homogeneous clip-space position and the interpolated color.
type VertexOutput struct {
	ClipPosition math.Vec4
	Color        math.Vec4
}

// Transform maps one vertex into clip space.
//
// The clip position is ViewProjection * (Position, 1). The perspective
// divide is the rasterizer's job and must not happen here. Color passes
// through bit-identical. Transform is a pure function: no validation,
// no shared state, safe to call from any number of goroutines.
func Transform(v Vertex, u FrameUniforms) VertexOutput {
	p := v.Position
	return VertexOutput{
		ClipPosition: u.ViewProjection.MulVec4(math.Vec4{p.X, p.Y, p.Z, 1}),
		Color:        v.Color,
	}
}

// TransformAll transforms a batch of vertices sharing one uniform block.
func TransformAll(vertices []Vertex, u FrameUniforms) []VertexOutput {
	out := make([]VertexOutput, len(vertices))
	for i, v := range vertices {
		out[i] = Transform(v, u)
	}
	return out
}
