package pipeline

import (
	"testing"

	"github.com/Faultbox/wireline/pkg/math"
)

func TestStd140Layout(t *testing.T) {
	u := FrameUniforms{
		CameraPosition: math.Vec3{X: 1, Y: 2, Z: 3},
		ViewProjection: math.Translate(4, 5, 6),
	}

	b := u.Std140()

	// CameraPosition at offset 0
	if b[0] != 1 || b[1] != 2 || b[2] != 3 {
		t.Errorf("camera position slots = (%f, %f, %f), want (1, 2, 3)", b[0], b[1], b[2])
	}
	// vec3 pads to 16 bytes
	if b[3] != 0 {
		t.Errorf("padding slot should be 0, got %f", b[3])
	}
	// Matrix starts at float slot 4 (byte offset 16), column-major
	for i := 0; i < 16; i++ {
		if b[4+i] != u.ViewProjection[i] {
			t.Errorf("matrix slot %d = %f, want %f", i, b[4+i], u.ViewProjection[i])
		}
	}
}

func TestStd140Size(t *testing.T) {
	if Std140Size != 80 {
		t.Errorf("Std140Size = %d, want 80 (vec3 + pad + mat4)", Std140Size)
	}
	var b = FrameUniforms{}.Std140()
	if len(b)*4 != Std140Size {
		t.Errorf("packed block is %d bytes, want %d", len(b)*4, Std140Size)
	}
}

func TestStd140PreservesUnreadField(t *testing.T) {
	// CameraPosition is unread by the vertex stage but must still be
	// packed for layout compatibility with other consumers of the block.
	u1 := FrameUniforms{CameraPosition: math.Vec3{X: 7, Y: 8, Z: 9}}
	u2 := FrameUniforms{}

	if u1.Std140() == u2.Std140() {
		t.Error("CameraPosition must be part of the packed block")
	}
}
