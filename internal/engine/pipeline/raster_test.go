package pipeline

import "testing"

func TestDefaultRasterState(t *testing.T) {
	rs := DefaultRasterState()
	if rs.LineWidth != 5.0 {
		t.Errorf("LineWidth = %f, want 5.0", rs.LineWidth)
	}
}

func TestRasterStateSharedAcrossDraws(t *testing.T) {
	// Two draws issued against the same pipeline configuration must use
	// the same raster state; width is not a per-vertex value.
	rs := DefaultRasterState()

	draw1 := rs
	draw2 := rs

	if draw1 != draw2 {
		t.Error("draws sharing a pipeline must share raster state")
	}
	if draw1.LineWidth != DefaultLineWidth || draw2.LineWidth != DefaultLineWidth {
		t.Errorf("both draws should rasterize at %f", float32(DefaultLineWidth))
	}
}
