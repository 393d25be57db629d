package pipeline

// DefaultLineWidth is the line width in device units for every line draw.
const DefaultLineWidth = 5.0

// RasterState holds the fixed-function raster configuration for a draw.
// It is per-draw pipeline state: the renderer applies it once before a
// draw call, never per vertex, and it has no effect on vertex output.
type RasterState struct {
	LineWidth float32
}

// DefaultRasterState returns the raster state used for line draws.
func DefaultRasterState() RasterState {
	return RasterState{LineWidth: DefaultLineWidth}
}
