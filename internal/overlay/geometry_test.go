package overlay

import "testing"

func TestInvertY(t *testing.T) {
	got := invertY(50, 20, 792)
	want := 792.0 - 50 - 20
	if got != want {
		t.Errorf("invertY = %v, want %v", got, want)
	}
}

func TestFitFill(t *testing.T) {
	p := fit(100, 50, 200, 200, FitFill)
	if p.RenderW != 200 || p.RenderH != 200 || p.OffsetX != 0 || p.OffsetY != 0 {
		t.Errorf("fill placement = %+v", p)
	}
}

func TestFitContain(t *testing.T) {
	p := fit(100, 50, 200, 200, FitContain)
	// scale = min(2, 4) = 2 -> 200x100, centered vertically
	if p.RenderW != 200 || p.RenderH != 100 {
		t.Errorf("contain size = %vx%v, want 200x100", p.RenderW, p.RenderH)
	}
	if p.OffsetY != 50 || p.OffsetX != 0 {
		t.Errorf("contain offset = %v,%v, want 0,50", p.OffsetX, p.OffsetY)
	}
}

func TestFitCover(t *testing.T) {
	p := fit(100, 50, 200, 200, FitCover)
	// scale = max(2, 4) = 4 -> 400x200, clipped, centered so offsetX is negative
	if p.RenderW != 400 || p.RenderH != 200 {
		t.Errorf("cover size = %vx%v, want 400x200", p.RenderW, p.RenderH)
	}
	if p.OffsetX != -100 || p.OffsetY != 0 {
		t.Errorf("cover offset = %v,%v, want -100,0", p.OffsetX, p.OffsetY)
	}
}

func TestFitScaleDownSmallerFitsAsIs(t *testing.T) {
	p := fit(50, 50, 200, 200, FitScaleDown)
	if p.RenderW != 50 || p.RenderH != 50 {
		t.Errorf("scale_down size = %vx%v, want 50x50 (no upscale)", p.RenderW, p.RenderH)
	}
}

func TestFitScaleDownLargerShrinks(t *testing.T) {
	p := fit(400, 400, 200, 200, FitScaleDown)
	if p.RenderW != 200 || p.RenderH != 200 {
		t.Errorf("scale_down size = %vx%v, want 200x200 (contain-equivalent)", p.RenderW, p.RenderH)
	}
}

func TestFitZeroDimensionFallsBackToFill(t *testing.T) {
	p := fit(0, 0, 200, 100, FitContain)
	if p.RenderW != 200 || p.RenderH != 100 {
		t.Errorf("zero-dim fallback = %vx%v, want fill (200x100)", p.RenderW, p.RenderH)
	}
}

func TestNormalizeFitMode(t *testing.T) {
	cases := []struct {
		in         string
		want       FitMode
		recognized bool
	}{
		{"fill", FitFill, true},
		{"contain", FitContain, true},
		{"cover", FitCover, true},
		{"scale_down", FitScaleDown, true},
		{"", FitContain, true},
		{"bogus", FitContain, false},
	}
	for _, c := range cases {
		mode, recognized := normalizeFitMode(c.in)
		if mode != c.want || recognized != c.recognized {
			t.Errorf("normalizeFitMode(%q) = (%v, %v), want (%v, %v)", c.in, mode, recognized, c.want, c.recognized)
		}
	}
}
