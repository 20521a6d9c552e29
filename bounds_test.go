package glide

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestComputeBounds_ContentLargerThanViewport(t *testing.T) {
	b, ok := ComputeBounds(Size{800, 600}, Size{6000, 6000}, 1)
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if b.MinX == b.MaxX {
		t.Error("MinX == MaxX, want free play on a larger world")
	}
	if !approxEqual(b.MinX, -2200, epsilon) || !approxEqual(b.MaxX, 3000, epsilon) {
		t.Errorf("X range = [%v, %v], want [-2200, 3000]", b.MinX, b.MaxX)
	}
	if !approxEqual(b.MinY, -2400, epsilon) || !approxEqual(b.MaxY, 3000, epsilon) {
		t.Errorf("Y range = [%v, %v], want [-2400, 3000]", b.MinY, b.MaxY)
	}
}

func TestComputeBounds_CentersSmallContent(t *testing.T) {
	tests := []struct {
		name     string
		viewport Size
		world    Size
		scale    float64
		wantX    float64
		wantY    float64
	}{
		{"both axes smaller", Size{800, 600}, Size{6000, 6000}, 0.05, 400, 300},
		{"exact fit on Y", Size{800, 600}, Size{6000, 6000}, 0.1, 400, 300},
		{"offset world", Size{1000, 1000}, Size{400, 200}, 1, 500, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := ComputeBounds(tt.viewport, tt.world, tt.scale)
			if !ok {
				t.Fatal("ok = false")
			}
			if b.MinX != b.MaxX || b.MinY != b.MaxY {
				t.Fatalf("bounds = %+v, want min == max on both axes", b)
			}
			if !approxEqual(b.MinX, tt.wantX, epsilon) || !approxEqual(b.MinY, tt.wantY, epsilon) {
				t.Errorf("center = (%v, %v), want (%v, %v)", b.MinX, b.MinY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestComputeBounds_MixedAxes(t *testing.T) {
	// 0.12 * 6000 = 720: narrower than 800 wide, taller than 600 high.
	b, _ := ComputeBounds(Size{800, 600}, Size{6000, 6000}, 0.12)
	if b.MinX != b.MaxX {
		t.Errorf("X range = [%v, %v], want centered", b.MinX, b.MaxX)
	}
	if b.MinY == b.MaxY {
		t.Errorf("Y range collapsed, want free play")
	}
}

func TestComputeBounds_UnknownViewport(t *testing.T) {
	for _, vp := range []Size{{0, 0}, {800, 0}, {-1, 600}} {
		if _, ok := ComputeBounds(vp, Size{6000, 6000}, 1); ok {
			t.Errorf("ComputeBounds(%v) ok = true, want false", vp)
		}
	}
	if _, ok := ComputeBounds(Size{800, 600}, Size{6000, 6000}, 0); ok {
		t.Error("scale 0: ok = true, want false")
	}
}

func TestTranslateBoundsClamp(t *testing.T) {
	b := TranslateBounds{MinX: -10, MaxX: 10, MinY: 0, MaxY: 5}
	x, y := b.Clamp(20, -3)
	if x != 10 || y != 0 {
		t.Errorf("Clamp(20,-3) = (%v,%v), want (10,0)", x, y)
	}
	if !b.Contains(-10, 5) {
		t.Error("edges should be contained")
	}
	if b.Contains(-10.01, 5) {
		t.Error("point past MinX should not be contained")
	}
}
