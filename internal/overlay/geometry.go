package overlay

// FitMode mirrors formfill.FitMode without importing the public package,
// keeping internal/overlay decoupled from pkg/formfill's JSON tags.
type FitMode string

const (
	FitFill      FitMode = "fill"
	FitContain   FitMode = "contain"
	FitCover     FitMode = "cover"
	FitScaleDown FitMode = "scale_down"
)

// invertY converts a field's top-down Y coordinate into PDF-native
// (origin lower-left) space: pdf_y = page_h - field_y - field_h.
func invertY(fieldY, fieldH, pageH float64) float64 {
	return pageH - fieldY - fieldH
}

// fitPlacement is the result of fit(): where and how large to draw an image
// inside a target box.
type fitPlacement struct {
	RenderW, RenderH float64
	OffsetX, OffsetY float64
}

// fit computes the render rectangle for an image of size (imgW, imgH) inside
// a box of size (boxW, boxH), per the requested FitMode. Offsets are
// relative to the box's own origin (i.e. box-local, not page-absolute).
func fit(imgW, imgH, boxW, boxH float64, mode FitMode) fitPlacement {
	if imgW <= 0 || imgH <= 0 {
		mode = FitFill
	}

	switch mode {
	case FitCover:
		s := maxF(boxW/imgW, boxH/imgH)
		rw, rh := imgW*s, imgH*s
		return fitPlacement{
			RenderW: rw, RenderH: rh,
			OffsetX: (boxW - rw) / 2,
			OffsetY: (boxH - rh) / 2,
		}
	case FitScaleDown:
		if imgW <= boxW && imgH <= boxH {
			return fitPlacement{
				RenderW: imgW, RenderH: imgH,
				OffsetX: (boxW - imgW) / 2,
				OffsetY: (boxH - imgH) / 2,
			}
		}
		return fit(imgW, imgH, boxW, boxH, FitContain)
	case FitFill:
		return fitPlacement{RenderW: boxW, RenderH: boxH, OffsetX: 0, OffsetY: 0}
	case FitContain:
		fallthrough
	default:
		s := minF(boxW/imgW, boxH/imgH)
		rw, rh := imgW*s, imgH*s
		return fitPlacement{
			RenderW: rw, RenderH: rh,
			OffsetX: (boxW - rw) / 2,
			OffsetY: (boxH - rh) / 2,
		}
	}
}

// normalizeFitMode maps an unrecognized fit mode to contain, reporting
// whether the input was recognized.
func normalizeFitMode(s string) (FitMode, bool) {
	switch FitMode(s) {
	case FitFill, FitContain, FitCover, FitScaleDown:
		return FitMode(s), true
	case "":
		return FitContain, true
	default:
		return FitContain, false
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
