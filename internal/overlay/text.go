package overlay

import "strings"

const textPadding = 2.0 // points of inset on each side of a field box

// textWidth estimates the rendered width, in points, of s set in font at
// size, per spec: width(s, size) = sum(glyph_width(c)) * size / 1000.
func textWidth(s string, font string, size float64) float64 {
	total := 0
	for i := 0; i < len(s); i++ {
		total += glyphWidth(font, s[i])
	}
	return float64(total) * size / 1000.0
}

// textLine is one laid-out line of text, ready to be placed at an
// (x, baseline) origin.
type textLine struct {
	Text string
	X    float64 // absolute page X of the line's left edge (post-alignment)
	Y    float64 // absolute page Y of the baseline
	Size float64
}

// layoutResult is the outcome of laying a string out inside a field box.
type layoutResult struct {
	Lines       []textLine
	FontSize    float64 // the size actually used, after auto-shrink
	Shrunk      bool
	Overflowed  bool // content extends past the box vertically
}

// layoutText lays s out inside the PDF-space box [x, pdfY, x+w, pdfY+h]
// (pdfY already inverted — see invertY) using the given font, requested
// size, and alignment hints. It implements the spec's single-line fit
// rule, word-wrap, line-height, and alignment rules.
func layoutText(s, font string, fontSize, x, pdfY, boxW, boxH float64, align string, valign string) layoutResult {
	innerW := boxW - 2*textPadding
	if innerW < 0 {
		innerW = 0
	}

	size := fontSize
	var lines []string
	w0 := textWidth(s, font, size)
	shrunk := false

	if w0 <= innerW {
		lines = []string{s}
	} else {
		shrunkSize := size * 0.9
		if textWidth(s, font, shrunkSize) <= innerW {
			size = shrunkSize
			shrunk = true
			lines = []string{s}
		} else {
			size = shrunkSize
			shrunk = true
			lines = wrapText(s, font, size, innerW)
		}
	}

	lineHeight := size * 1.2
	n := len(lines)
	blockHeight := float64(n) * lineHeight

	var firstBaseline float64
	overflowed := false
	switch valign {
	case "top":
		firstBaseline = pdfY + boxH - size
	case "bottom":
		lastBaseline := pdfY + textPadding
		firstBaseline = lastBaseline + float64(n-1)*lineHeight
	case "baseline":
		firstBaseline = pdfY // field.y+field.height interpreted as baseline directly
	case "middle", "":
		top := pdfY + boxH - (boxH-blockHeight)/2
		firstBaseline = top - size
	default:
		top := pdfY + boxH - (boxH-blockHeight)/2
		firstBaseline = top - size
	}

	if blockHeight > boxH {
		overflowed = true
	}

	out := make([]textLine, 0, n)
	for i, ln := range lines {
		lw := textWidth(ln, font, size)
		var lx float64
		switch align {
		case "right":
			lx = x + boxW - textPadding - lw
		case "center":
			lx = x + (boxW-lw)/2
		default: // left, and unknown values
			lx = x + textPadding
		}
		out = append(out, textLine{
			Text: ln,
			X:    lx,
			Y:    firstBaseline - float64(i)*lineHeight,
			Size: size,
		})
	}

	return layoutResult{Lines: out, FontSize: size, Shrunk: shrunk, Overflowed: overflowed}
}

// wrapText greedily packs words into lines no wider than maxWidth. A single
// word longer than maxWidth is emitted on its own line unbroken.
func wrapText(s, font string, size, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	cur := words[0]
	curWidth := textWidth(cur, font, size)
	spaceWidth := textWidth(" ", font, size)

	for _, w := range words[1:] {
		ww := textWidth(w, font, size)
		if curWidth+spaceWidth+ww <= maxWidth {
			cur += " " + w
			curWidth += spaceWidth + ww
		} else {
			lines = append(lines, cur)
			cur = w
			curWidth = ww
		}
	}
	lines = append(lines, cur)
	return lines
}
