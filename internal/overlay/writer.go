package overlay

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// PageDim is a template page's size, in points.
type PageDim struct {
	Width, Height float64
}

// imageRef is a resource descriptor for a decoded image embedded once and
// referenced by one or more Do operators — the "(xobject_ref, pixel_width,
// pixel_height)" tuple from the spec's per-build image cache.
type imageRef struct {
	ObjectID      int
	Width, Height int
}

// Overlay builds a transient, in-memory PDF containing only the rendered
// marks for a fill invocation: same page count and sizes as the template,
// no AcroForm, no widget annotations.
type Overlay struct {
	pages     []PageDim
	content   []bytes.Buffer
	pageFonts []map[string]bool          // per-page: font resource names used ("F1", "F2")
	pageXObjs []map[string]int           // per-page: xobject resource name -> object id
	imageByID map[string]imageRef        // field_id -> xobject resource (dedup keyed on identity)
	imageData []pendingImage            // registered images, in first-use order
	nextObjID int
}

// NewOverlay creates an overlay document with one blank page per entry in
// pages, matching the template's page dimensions.
func NewOverlay(pages []PageDim) *Overlay {
	// Image XObjects are numbered after catalog(1), pages(2), the per-page
	// page/content objects (2*n), and the two font objects — leaving a
	// comfortable margin keeps this correct for any page count.
	firstImageObjID := 3 + 2*len(pages) + 2 + 8
	o := &Overlay{
		pages:     pages,
		content:   make([]bytes.Buffer, len(pages)),
		pageFonts: make([]map[string]bool, len(pages)),
		pageXObjs: make([]map[string]int, len(pages)),
		imageByID: make(map[string]imageRef),
		nextObjID: firstImageObjID,
	}
	for i := range pages {
		o.pageFonts[i] = make(map[string]bool)
		o.pageXObjs[i] = make(map[string]int)
	}
	return o
}

// PageCount reports how many pages the overlay has.
func (o *Overlay) PageCount() int { return len(o.pages) }

// DrawText emits BT/Tf/Td/Tj/ET operators for each laid-out line, in the
// given font.
func (o *Overlay) DrawText(page int, font string, lines []textLine) {
	if page < 0 || page >= len(o.pages) {
		return
	}
	if len(lines) == 0 {
		return
	}
	o.pageFonts[page][fontResourceName(font)] = true
	buf := &o.content[page]
	// Td positions text relative to the current line's origin, which resets
	// at each BT — so each line gets its own q/BT/.../ET/Q block rather than
	// accumulating offsets across lines.
	for _, ln := range lines {
		buf.WriteString("q\nBT\n")
		fmt.Fprintf(buf, "/%s %s Tf\n", fontResourceName(font), fmtNum(ln.Size))
		fmt.Fprintf(buf, "%s %s Td\n", fmtNum(ln.X), fmtNum(ln.Y))
		buf.WriteString("(")
		buf.WriteString(escapePDFString(ln.Text))
		buf.WriteString(") Tj\n")
		buf.WriteString("ET\nQ\n")
	}
}

// DrawGlyph draws a single ZapfDingbats (or Helvetica) glyph at the given
// baseline origin and size — used for checkbox/radio marks.
func (o *Overlay) DrawGlyph(page int, font string, glyph byte, size, x, y float64) {
	if page < 0 || page >= len(o.pages) {
		return
	}
	o.pageFonts[page][fontResourceName(font)] = true
	buf := &o.content[page]
	fmt.Fprintf(buf, "q\nBT\n/%s %s Tf\n%s %s Td\n(", fontResourceName(font), fmtNum(size), fmtNum(x), fmtNum(y))
	buf.WriteString(escapePDFString(string(glyph)))
	buf.WriteString(") Tj\nET\nQ\n")
}

// placedImage describes where and how large to draw an already-registered
// image resource.
type placedImage struct {
	X, Y, W, H float64
}

// DrawImage registers (if not already present for this field_id) and draws
// an image XObject at the given placement. Re-use is keyed on field_id
// identity, not pixel content, per the spec's per-build image cache.
func (o *Overlay) DrawImage(page int, fieldID string, img *decodedImage, placement placedImage) {
	if page < 0 || page >= len(o.pages) {
		return
	}
	ref, ok := o.imageByID[fieldID]
	if !ok {
		ref = imageRef{ObjectID: o.nextObjID, Width: img.Width, Height: img.Height}
		o.nextObjID++
		o.imageByID[fieldID] = ref
		o.imageData = append(o.imageData, pendingImage{ObjectID: ref.ObjectID, Img: img})
	}
	name := fmt.Sprintf("Im%d", ref.ObjectID)
	o.pageXObjs[page][name] = ref.ObjectID

	buf := &o.content[page]
	fmt.Fprintf(buf, "q\n%s 0 0 %s %s %s cm\n/%s Do\nQ\n",
		fmtNum(placement.W), fmtNum(placement.H), fmtNum(placement.X), fmtNum(placement.Y), name)
}

type pendingImage struct {
	ObjectID int
	Img      *decodedImage
}

func fontResourceName(font string) string {
	if font == "ZapfDingbats" {
		return "F2"
	}
	return "F1"
}

// fmtNum formats a float with up to 2 decimal places, trimming trailing
// zeros, matching the compact numeric style PDF content streams use.
func fmtNum(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	// Trim trailing zeros but keep at least one digit after the point only
	// if it's nonzero; PDF readers accept "100" and "100.00" equally, but
	// shorter output is both more idiomatic and deterministic to produce.
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}

// escapePDFString escapes '(', ')' and '\' and emits non-ASCII bytes as
// \ddd octal escapes, per the spec's literal-string escaping rule.
func escapePDFString(s string) string {
	var buf bytes.Buffer
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(' || c == ')' || c == '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case c < 0x20 || c >= 0x7F:
			fmt.Fprintf(&buf, "\\%03o", c)
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String()
}

// Build serializes the overlay to PDF bytes: catalog, pages tree, per-page
// page/content/resource objects, shared font objects, and image XObjects.
// Object numbering is a pure function of the page count and registered
// images, in registration order, so identical inputs produce byte-equal
// output.
func (o *Overlay) Build() []byte {
	var buf bytes.Buffer
	xref := map[int]int{}

	n := len(o.pages)
	const (
		catalogID = 1
		pagesID   = 2
	)
	firstPageID := 3
	firstContentID := firstPageID + n
	fontHelveticaID := firstContentID + n
	fontZapfID := fontHelveticaID + 1

	buf.WriteString("%PDF-1.7\n%\xE2\xE3\xCF\xD3\n")

	xref[catalogID] = buf.Len()
	fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Catalog /Pages %d 0 R >>\nendobj\n", catalogID, pagesID)

	xref[pagesID] = buf.Len()
	buf.WriteString(fmt.Sprintf("%d 0 obj\n<< /Type /Pages /Kids [", pagesID))
	for i := 0; i < n; i++ {
		fmt.Fprintf(&buf, "%d 0 R ", firstPageID+i)
	}
	fmt.Fprintf(&buf, "] /Count %d >>\nendobj\n", n)

	for i, p := range o.pages {
		pageID := firstPageID + i
		contentID := firstContentID + i

		var resBuf bytes.Buffer
		resBuf.WriteString("<< /Font <<")
		if o.pageFonts[i]["F1"] {
			fmt.Fprintf(&resBuf, " /F1 %d 0 R", fontHelveticaID)
		}
		if o.pageFonts[i]["F2"] {
			fmt.Fprintf(&resBuf, " /F2 %d 0 R", fontZapfID)
		}
		resBuf.WriteString(" >>")
		if len(o.pageXObjs[i]) > 0 {
			names := make([]string, 0, len(o.pageXObjs[i]))
			for name := range o.pageXObjs[i] {
				names = append(names, name)
			}
			// Map iteration order is randomized by the runtime; without this
			// sort, a page with two or more distinct images could emit its
			// /XObject entries in a different order on every Build() call,
			// breaking the byte-equal-output-for-identical-input property.
			sort.Strings(names)
			resBuf.WriteString(" /XObject <<")
			for _, name := range names {
				fmt.Fprintf(&resBuf, " /%s %d 0 R", name, o.pageXObjs[i][name])
			}
			resBuf.WriteString(" >>")
		}
		resBuf.WriteString(" >>")

		xref[pageID] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %s %s] /Resources %s /Contents %d 0 R >>\nendobj\n",
			pageID, pagesID, fmtNum(p.Width), fmtNum(p.Height), resBuf.String(), contentID)

		xref[contentID] = buf.Len()
		stream := o.content[i].Bytes()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n", contentID, len(stream))
		buf.Write(stream)
		buf.WriteString("\nendstream\nendobj\n")
	}

	xref[fontHelveticaID] = buf.Len()
	fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n", fontHelveticaID)
	xref[fontZapfID] = buf.Len()
	fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /ZapfDingbats >>\nendobj\n", fontZapfID)

	for _, pi := range o.imageData {
		xref[pi.ObjectID] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter %s /Length %d >>\nstream\n",
			pi.ObjectID, pi.Img.Width, pi.Img.Height, pi.Img.Filter, len(pi.Img.Data))
		buf.Write(pi.Img.Data)
		buf.WriteString("\nendstream\nendobj\n")
	}

	maxObjID := fontZapfID
	for id := range xref {
		if id > maxObjID {
			maxObjID = id
		}
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", maxObjID+1)
	buf.WriteString("0000000000 65535 f \n")
	for id := 1; id <= maxObjID; id++ {
		if off, ok := xref[id]; ok {
			fmt.Fprintf(&buf, "%010d 00000 n \n", off)
		} else {
			buf.WriteString("0000000000 00000 f \n")
		}
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", maxObjID+1, catalogID, xrefOffset)

	return buf.Bytes()
}
