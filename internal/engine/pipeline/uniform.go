package pipeline

// UniformBlockBinding is the binding point of FrameUniforms on the GPU.
const UniformBlockBinding = 0

// Std140Floats is the number of float32 slots in the packed block.
const Std140Floats = 20

// Std140Size is the byte size of the packed block.
const Std140Size = Std140Floats * 4

// Std140 packs the block with std140 layout: CameraPosition as a vec3 at
// offset 0, one float of alignment padding, then the column-major
// ViewProjection matrix at offset 16. Field order and padding must stay
// exactly like this; shaders declare the block with the same layout.
func (u FrameUniforms) Std140() [Std140Floats]float32 {
	var b [Std140Floats]float32
	b[0] = u.CameraPosition.X
	b[1] = u.CameraPosition.Y
	b[2] = u.CameraPosition.Z
	// b[3] is the vec3 alignment pad
	copy(b[4:], u.ViewProjection[:])
	return b
}
