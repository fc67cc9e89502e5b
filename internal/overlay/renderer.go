package overlay

import (
	"fmt"
	"strconv"
)

// Field is the renderer's internal view of a field descriptor, decoupled
// from pkg/formfill's JSON tags (see SPEC_FULL.md §3).
type Field struct {
	FieldID           string
	Page              int
	X, Y              float64
	Width, Height     float64
	FieldType         string
	Value             any
	FontSize          float64
	Alignment         string
	VerticalAlignment string
	FitMode           string
	Options           []string
}

const (
	minFontSize        = 6.0
	defaultFontSize    = 12.0
	checkboxGlyph byte = '4' // ZapfDingbats check mark
	radioGlyph    byte = 'l' // ZapfDingbats filled bullet
)

// RenderFields lays every field out onto the overlay, in input order,
// dispatching per field_type. Page-not-found and image failures are
// recorded as warnings/errors and do not abort the run.
func RenderFields(o *Overlay, pages []PageDim, fields []Field, meta *Metadata) {
	for _, f := range fields {
		if f.Page < 0 || f.Page >= len(pages) {
			meta.Warn(fmt.Sprintf("Page %d not found in template", f.Page))
			meta.RecordSkipped()
			continue
		}

		page := pages[f.Page]
		pdfY := invertY(f.Y, f.Height, page.Height)

		switch f.FieldType {
		case "text", "number", "date", "dropdown":
			renderText(o, f, pdfY)
			meta.RecordProcessed(f.Page)

		case "checkbox":
			if isTruthy(f.Value) {
				size := minF(f.Width, f.Height) * 0.8
				cx := f.X + f.Width/2 - size/2
				cy := pdfY + f.Height/2 - size/2
				o.DrawGlyph(f.Page, "ZapfDingbats", checkboxGlyph, size, cx, cy)
			}
			meta.RecordProcessed(f.Page)

		case "radio":
			if isTruthy(f.Value) {
				size := minF(f.Width, f.Height) * 0.6
				cx := f.X + f.Width/2 - size/2
				cy := pdfY + f.Height/2 - size/2
				o.DrawGlyph(f.Page, "ZapfDingbats", radioGlyph, size, cx, cy)
			}
			meta.RecordProcessed(f.Page)

		case "signature", "image":
			if renderImage(o, f, pdfY, meta) {
				meta.RecordProcessed(f.Page)
			} else {
				meta.RecordSkipped()
			}

		default:
			meta.Warn(fmt.Sprintf("Unknown field_type %q for field %s, treated as text", f.FieldType, f.FieldID))
			renderText(o, f, pdfY)
			meta.RecordProcessed(f.Page)
		}
	}
}

func renderText(o *Overlay, f Field, pdfY float64) {
	size := f.FontSize
	if size < minFontSize {
		size = defaultFontSize
	}
	text := stringifyValue(f.Value)
	layout := layoutText(text, "Helvetica", size, f.X, pdfY, f.Width, f.Height, string(f.Alignment), string(f.VerticalAlignment))
	o.DrawText(f.Page, "Helvetica", layout.Lines)
}

func renderImage(o *Overlay, f Field, pdfY float64, meta *Metadata) bool {
	raw, ok := f.Value.([]byte)
	if !ok {
		meta.Warn(fmt.Sprintf("Skipped URL image for field %s", f.FieldID))
		return false
	}

	img, err := decodeImage(raw)
	if err != nil {
		meta.Error(fmt.Sprintf("Failed to decode image %s: %s", f.FieldID, err.Error()))
		return false
	}

	mode, recognized := normalizeFitMode(f.FitMode)
	if !recognized {
		meta.Warn(fmt.Sprintf("Unknown fit_mode %q for field %s, treated as contain", f.FitMode, f.FieldID))
	}

	placement := fit(float64(img.Width), float64(img.Height), f.Width, f.Height, mode)
	o.DrawImage(f.Page, f.FieldID, img, placedImage{
		X: f.X + placement.OffsetX,
		Y: pdfY + placement.OffsetY,
		W: placement.RenderW,
		H: placement.RenderH,
	})
	return true
}

// isTruthy reports whether v represents a "true" marker: a Go bool, a
// nonzero JSON number, a non-empty/non-"false" string, or any other
// non-nil value.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != "" && t != "false" && t != "0"
	default:
		return true
	}
}

// stringifyValue renders a JSON-decoded value the way a text/number/date/
// dropdown field displays it.
func stringifyValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(t)
	}
}
