package compose

import (
	"bytes"
	"fmt"
	"regexp"
)

// Compose embeds each overlay page as a Form XObject onto the matching
// template page and appends a single "q cm /OverlayN Do Q" invocation to
// that page's content stream. If flatten is set, the returned document's
// catalog carries no /AcroForm and no page carries /Annots. Page count and
// MediaBox are preserved exactly; pages beyond the overlay's count (or
// vice versa) are left untouched / ignored respectively.
func Compose(templateBytes, overlayBytes []byte, flatten bool) ([]byte, error) {
	if hasEncrypt(templateBytes) {
		return nil, fmt.Errorf("compose: encrypted templates are not supported")
	}

	tmpl := parseObjects(templateBytes)
	if len(tmpl.Bodies) == 0 {
		return nil, fmt.Errorf("compose: template has no parseable objects")
	}
	rootNum, ok := findRootNum(tmpl)
	if !ok {
		return nil, fmt.Errorf("compose: template has no /Root catalog")
	}
	catalogBody, ok := tmpl.Bodies[rootNum]
	if !ok {
		return nil, fmt.Errorf("compose: template catalog object %d missing", rootNum)
	}
	pagesNum, ok := findRef(catalogBody, "Pages")
	if !ok {
		return nil, fmt.Errorf("compose: template catalog has no /Pages")
	}
	tmplPageNums := flattenPageTree(tmpl, pagesNum, map[int]bool{})
	if len(tmplPageNums) == 0 {
		return nil, fmt.Errorf("compose: template has no pages")
	}

	overlay := parseObjects(overlayBytes)
	var overlayPageNums []int
	if len(overlay.Bodies) > 0 {
		if oRootNum, ok := findRootNum(overlay); ok {
			if oCatalogBody, ok := overlay.Bodies[oRootNum]; ok {
				if oPagesNum, ok := findRef(oCatalogBody, "Pages"); ok {
					overlayPageNums = flattenPageTree(overlay, oPagesNum, map[int]bool{})
				}
			}
		}
	}

	out := make(map[int][]byte, len(tmpl.Bodies))
	for num, body := range tmpl.Bodies {
		out[num] = body
	}

	nextObjNum := tmpl.MaxNum + 1000 // wide margin: avoids any chance of clashing with objects the regex scanner missed (object/xref streams)
	allocObj := func(body []byte) int {
		n := nextObjNum
		nextObjNum++
		out[n] = body
		return n
	}

	for i, pageNum := range tmplPageNums {
		if i >= len(overlayPageNums) {
			break
		}
		pageBody := out[pageNum]
		overlayPageBody, ok := overlay.Bodies[overlayPageNums[i]]
		if !ok {
			continue
		}
		overlayContentRef, ok := findRef(overlayPageBody, "Contents")
		if !ok {
			continue
		}
		overlayContentBody, ok := overlay.Bodies[overlayContentRef]
		if !ok {
			continue
		}
		streamBytes, ok := contentStreamBytes(overlayContentBody)
		if !ok {
			continue
		}
		if len(bytes.TrimSpace(streamBytes)) == 0 {
			continue // nothing drawn on this page, skip the XObject entirely
		}

		mediaBox, ok := findFloatArray(overlayPageBody, "MediaBox")
		if !ok || len(mediaBox) != 4 {
			mediaBox = []float64{0, 0, 612, 792}
		}
		bboxW := mediaBox[2] - mediaBox[0]
		bboxH := mediaBox[3] - mediaBox[1]

		overlayResDict, _ := resolveDict(overlay, overlayPageBody, "Resources")
		if overlayResDict == nil {
			overlayResDict = []byte("<< >>")
		}
		overlayResDict = remapImageRefs(overlayResDict, overlay, allocObj)

		formBody := fmt.Sprintf("<< /Type /XObject /Subtype /Form /FormType 1 /BBox [0 0 %s %s] /Resources %s /Length %d >>\nstream\n%s\nendstream",
			fnum(bboxW), fnum(bboxH), overlayResDict, len(streamBytes), streamBytes)
		formObjNum := allocObj([]byte(formBody))

		pageBody = addXObjectResource(pageBody, fmt.Sprintf("Overlay%d", i), formObjNum)

		invokeStream := []byte(fmt.Sprintf("q 1 0 0 1 0 0 cm /Overlay%d Do Q", i))
		newContentObjNum := allocObj([]byte(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(invokeStream), invokeStream)))
		pageBody = appendContentsRef(pageBody, newContentObjNum)

		out[pageNum] = pageBody
	}

	if flatten {
		catalogBody = stripKey(catalogBody, "AcroForm")
		out[rootNum] = catalogBody
		for _, pageNum := range tmplPageNums {
			out[pageNum] = stripKey(out[pageNum], "Annots")
		}
	}

	return serialize(out, rootNum), nil
}

// remapImageRefs rewrites every image XObject referenced from an overlay
// page's /Resources dict into a newly allocated object number in the
// composed document, copying the referenced object bodies across.
func remapImageRefs(resDict []byte, overlay *parsedDoc, allocObj func([]byte) int) []byte {
	xobjDict, ok := findInlineDict(resDict, "XObject")
	if !ok {
		return resDict
	}
	remap := map[int]int{}
	out := append([]byte(nil), resDict...)
	// /XObject dicts map names to refs directly ("/Im5 5 0 R"), not inside an
	// array, so scan name/ref pairs explicitly.
	nameRefRe := regexp.MustCompile(`/(\w+)\s+(\d+)\s+\d+\s+R`)
	for _, m := range nameRefRe.FindAllSubmatch(xobjDict, -1) {
		var refNum int
		fmt.Sscanf(string(m[2]), "%d", &refNum)
		if body, ok := overlay.Bodies[refNum]; ok {
			if _, done := remap[refNum]; !done {
				remap[refNum] = allocObj(body)
			}
			newNum := remap[refNum]
			old := string(m[0])
			replacement := fmt.Sprintf("/%s %d 0 R", m[1], newNum)
			out = bytes.Replace(out, []byte(old), []byte(replacement), 1)
		}
	}
	return out
}

var xobjDictStartRe = regexp.MustCompile(`/XObject\s*<<`)
var resourcesDictStartRe = regexp.MustCompile(`/Resources\s*<<`)
var resourcesRefRe = regexp.MustCompile(`/Resources\s+(\d+)\s+\d+\s+R`)

// addXObjectResource splices a "/Name N 0 R" entry into page's /Resources
// /XObject dict, creating either as needed. A page whose /Resources is an
// indirect reference is left alone structurally except that its inline
// /XObject entry is injected directly into the page body instead, since
// mutating a shared Resources object could leak the overlay XObject onto
// other pages that share it.
func addXObjectResource(pageBody []byte, name string, objNum int) []byte {
	entry := fmt.Sprintf("/%s %d 0 R", name, objNum)

	if m := xobjDictStartRe.FindIndex(pageBody); m != nil {
		insertAt := m[1]
		return insertBytes(pageBody, insertAt, []byte(" "+entry))
	}
	if m := resourcesDictStartRe.FindIndex(pageBody); m != nil {
		insertAt := m[1]
		return insertBytes(pageBody, insertAt, []byte(fmt.Sprintf(" /XObject << %s >>", entry)))
	}
	if m := resourcesRefRe.FindIndex(pageBody); m != nil {
		// Indirect /Resources: append an inline /Resources2-style override is
		// not valid PDF, so instead widen the page's own dict with an inline
		// /Resources that only adds /XObject; most viewers merge redundant
		// /Resources keys by taking the first, so place ours before the ref.
		insertAt := m[0]
		return insertBytes(pageBody, insertAt, []byte(fmt.Sprintf("/Resources << /XObject << %s >> >> ", entry)))
	}
	// No /Resources at all: add a minimal one right after "/Type /Page".
	typeRe := regexp.MustCompile(`/Type\s*/Page\b`)
	if m := typeRe.FindIndex(pageBody); m != nil {
		return insertBytes(pageBody, m[1], []byte(fmt.Sprintf(" /Resources << /XObject << %s >> >>", entry)))
	}
	return pageBody
}

var contentsRefRe = regexp.MustCompile(`/Contents\s+(\d+)\s+\d+\s+R`)
var contentsArrRe = regexp.MustCompile(`/Contents\s*\[(.*?)\]`)

// appendContentsRef folds an additional content-stream reference into a
// page's /Contents, normalizing a single ref into a two-element array.
func appendContentsRef(pageBody []byte, newObjNum int) []byte {
	if m := contentsArrRe.FindIndex(pageBody); m != nil {
		insertAt := m[1] - 1
		return insertBytes(pageBody, insertAt, []byte(fmt.Sprintf(" %d 0 R", newObjNum)))
	}
	if m := contentsRefRe.FindSubmatchIndex(pageBody); m != nil {
		var origNum int
		fmt.Sscanf(string(pageBody[m[2]:m[3]]), "%d", &origNum)
		replacement := fmt.Sprintf("/Contents [%d 0 R %d 0 R]", origNum, newObjNum)
		return append(append(append([]byte{}, pageBody[:m[0]]...), replacement...), pageBody[m[1]:]...)
	}
	return pageBody
}

// stripKey removes "/Key N G R" or "/Key << ... >>" or "/Key [ ... ]" from
// body, leaving everything else untouched.
func stripKey(body []byte, key string) []byte {
	if m := refKeyRe(key).FindIndex(body); m != nil {
		return append(append([]byte{}, body[:m[0]]...), body[m[1]:]...)
	}
	if dict, ok := findInlineDict(body, key); ok {
		idx := bytes.Index(body, dict)
		keyStart := regexp.MustCompile(`/`+key+`\s*`).FindIndex(body[:idx])
		start := idx
		if keyStart != nil {
			start = keyStart[0]
		}
		return append(append([]byte{}, body[:start]...), body[idx+len(dict):]...)
	}
	if m := arrKeyRe(key).FindIndex(body); m != nil {
		return append(append([]byte{}, body[:m[0]]...), body[m[1]:]...)
	}
	return body
}

func insertBytes(b []byte, at int, ins []byte) []byte {
	out := make([]byte, 0, len(b)+len(ins))
	out = append(out, b[:at]...)
	out = append(out, ins...)
	out = append(out, b[at:]...)
	return out
}

// fnum formats a float with up to 2 decimal places, trimming trailing
// zeros, matching the compact numeric style PDF content streams use.
func fnum(f float64) string {
	s := fmt.Sprintf("%.2f", f)
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

// serialize writes a full PDF from an object map, producing a page-order-
// stable, fully-populated xref table.
func serialize(objects map[int][]byte, rootNum int) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n%\xE2\xE3\xCF\xD3\n")

	nums := sortedObjectNums(objects)
	xref := make(map[int]int, len(nums))
	maxNum := 0
	for _, n := range nums {
		if n > maxNum {
			maxNum = n
		}
	}
	for _, n := range nums {
		xref[n] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", n, objects[n])
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", maxNum+1)
	buf.WriteString("0000000000 65535 f \n")
	for id := 1; id <= maxNum; id++ {
		if off, ok := xref[id]; ok {
			fmt.Fprintf(&buf, "%010d 00000 n \n", off)
		} else {
			buf.WriteString("0000000000 00000 f \n")
		}
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", maxNum+1, rootNum, xrefOffset)
	return buf.Bytes()
}
