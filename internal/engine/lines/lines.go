// Package lines renders batched line geometry with a shared frame uniform block.
package lines

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/wireline/internal/engine/lines/shaders"
	"github.com/Faultbox/wireline/internal/engine/pipeline"
	"github.com/Faultbox/wireline/internal/engine/shader"
	"github.com/Faultbox/wireline/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// floatsPerVertex is the interleaved layout: vec3 position + vec4 color.
const floatsPerVertex = 7

// Renderer draws line batches with the GPU twin of pipeline.Transform.
type Renderer struct {
	program uint32
	ubo     uint32
	raster  pipeline.RasterState
}

// New creates a line renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New() (*Renderer, error) {
	r := &Renderer{
		raster: pipeline.DefaultRasterState(),
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	program, err := shader.CompileProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	r.program = program

	if err := shader.BindUniformBlock(program, "FrameUniforms", pipeline.UniformBlockBinding); err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}

	// Uniform buffer for the per-frame block
	gl.GenBuffers(1, &r.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, pipeline.Std140Size, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, pipeline.UniformBlockBinding, r.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	logger.Debug("line renderer created",
		zap.Uint32("program", r.program),
		zap.Uint32("ubo", r.ubo),
		zap.Float32("line_width", r.raster.LineWidth),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing line renderer")
	if r.ubo != 0 {
		gl.DeleteBuffers(1, &r.ubo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// RasterState returns the raster configuration shared by all line draws.
func (r *Renderer) RasterState() pipeline.RasterState {
	return r.raster
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetFrameUniforms uploads the per-frame uniform block. Call once per
// frame before any Draw; every draw of the frame shares the block.
func (r *Renderer) SetFrameUniforms(u pipeline.FrameUniforms) {
	block := u.Std140()
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, pipeline.Std140Size, unsafe.Pointer(&block[0]))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// Batch is an uploaded line list, drawn with LINES topology.
type Batch struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Upload creates a GPU batch from a line list. Vertices come in pairs,
// one segment per pair.
func (r *Renderer) Upload(vertices []pipeline.Vertex) (*Batch, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("empty vertex list")
	}
	if len(vertices)%2 != 0 {
		return nil, fmt.Errorf("line list needs an even vertex count, got %d", len(vertices))
	}

	// Interleave: position at location 0, color at location 1
	data := make([]float32, 0, len(vertices)*floatsPerVertex)
	for _, v := range vertices {
		data = append(data,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Color[0], v.Color[1], v.Color[2], v.Color[3],
		)
	}

	b := &Batch{count: int32(len(vertices))}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("line batch uploaded",
		zap.Uint32("vao", b.vao),
		zap.Int32("vertices", b.count),
	)
	return b, nil
}

// Draw renders one batch. Raster state is applied here, once per draw,
// outside the per-vertex path.
func (r *Renderer) Draw(b *Batch) {
	gl.UseProgram(r.program)
	gl.LineWidth(r.raster.LineWidth)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.LINES, 0, b.count)
	gl.BindVertexArray(0)
}

// Delete frees the batch's GPU buffers.
func (b *Batch) Delete() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
}
