package compose

import (
	"bytes"
	"testing"
)

// minimalTemplate is a one-page PDF with an AcroForm and a single widget
// annotation, used to exercise parsing, composition, and flatten.
var minimalTemplate = []byte(`%PDF-1.7
1 0 obj
<< /Type /Catalog /Pages 2 0 R /AcroForm 5 0 R >>
endobj
2 0 obj
<< /Type /Pages /Kids [3 0 R] /Count 1 >>
endobj
3 0 obj
<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 6 0 R >> >> /Contents 4 0 R /Annots [7 0 R] >>
endobj
4 0 obj
<< /Length 44 >>
stream
BT /F1 12 Tf 100 700 Td (Hello World) Tj ET
endstream
endobj
5 0 obj
<< /Fields [7 0 R] >>
endobj
6 0 obj
<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>
endobj
7 0 obj
<< /Type /Annot /Subtype /Widget /Rect [100 100 200 120] /T (name) >>
endobj
xref
0 8
trailer
<< /Size 8 /Root 1 0 R >>
startxref
0
%%EOF
`)

func buildMinimalOverlay(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	stream := "q\nBT\n/F1 12 Tf\n50 50 Td\n(Jane Doe) Tj\nET\nQ\n"
	buf.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>\nendobj\n")
	buf.WriteString("4 0 obj\n<< /Length " + itoa(len(stream)) + " >>\nstream\n" + stream + "\nendstream\nendobj\n")
	buf.WriteString("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")
	buf.WriteString("trailer\n<< /Size 6 /Root 1 0 R >>\n%%EOF\n")
	return buf.Bytes()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func TestTemplatePageDimsReadsMediaBox(t *testing.T) {
	dims, err := TemplatePageDims(minimalTemplate)
	if err != nil {
		t.Fatalf("TemplatePageDims: %v", err)
	}
	if len(dims) != 1 {
		t.Fatalf("expected 1 page, got %d", len(dims))
	}
	if dims[0].Width != 612 || dims[0].Height != 792 {
		t.Errorf("dims = %+v, want 612x792", dims[0])
	}
}

func TestComposeEmbedsOverlayContent(t *testing.T) {
	overlay := buildMinimalOverlay(t)
	out, err := Compose(minimalTemplate, overlay, false)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !bytes.Contains(out, []byte("Jane Doe")) {
		t.Error("composed output should contain the overlay's rendered text")
	}
	if !bytes.Contains(out, []byte("Hello World")) {
		t.Error("composed output should still contain the template's original content")
	}
}

func TestComposePreservesPageCountAndMediaBox(t *testing.T) {
	overlay := buildMinimalOverlay(t)
	out, err := Compose(minimalTemplate, overlay, false)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	d := parseObjects(out)
	found := false
	for _, body := range d.Bodies {
		if bytes.Contains(body, []byte("/Type /Page ")) {
			found = true
			if !bytes.Contains(body, []byte("/MediaBox [0 0 612 792]")) {
				t.Error("page MediaBox should be preserved exactly")
			}
		}
	}
	if !found {
		t.Error("composed output should still contain a page object")
	}
}

func TestComposeWithoutFlattenKeepsAcroFormAndAnnots(t *testing.T) {
	out, err := Compose(minimalTemplate, buildMinimalOverlay(t), false)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !bytes.Contains(out, []byte("/AcroForm")) {
		t.Error("unflattened output should keep /AcroForm")
	}
	if !bytes.Contains(out, []byte("/Annots")) {
		t.Error("unflattened output should keep /Annots")
	}
}

func TestComposeWithFlattenStripsAcroFormAndAnnots(t *testing.T) {
	out, err := Compose(minimalTemplate, buildMinimalOverlay(t), true)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if bytes.Contains(out, []byte("/AcroForm")) {
		t.Error("flattened output must not carry /AcroForm")
	}
	if bytes.Contains(out, []byte("/Annots")) {
		t.Error("flattened output must not carry /Annots")
	}
}

func TestComposeEmptyOverlayIsIdempotent(t *testing.T) {
	var emptyOverlayBuf bytes.Buffer
	emptyOverlayBuf.WriteString("%PDF-1.7\n")
	emptyOverlayBuf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	emptyOverlayBuf.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	emptyOverlayBuf.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> /Contents 4 0 R >>\nendobj\n")
	emptyOverlayBuf.WriteString("4 0 obj\n<< /Length 0 >>\nstream\n\nendstream\nendobj\n")
	emptyOverlayBuf.WriteString("trailer\n<< /Size 5 /Root 1 0 R >>\n%%EOF\n")

	out, err := Compose(minimalTemplate, emptyOverlayBuf.Bytes(), false)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if bytes.Contains(out, []byte("/Subtype /Form")) {
		t.Error("an empty overlay content stream should not produce a Form XObject")
	}
	if !bytes.Contains(out, []byte("Hello World")) {
		t.Error("template content should still be present")
	}
}

func TestComposeRejectsEncryptedTemplate(t *testing.T) {
	encrypted := append(append([]byte{}, minimalTemplate...), []byte("\n/Encrypt 9 0 R\n")...)
	if _, err := Compose(encrypted, buildMinimalOverlay(t), false); err == nil {
		t.Error("expected an error composing against an encrypted template")
	}
}

func TestFindMatchingDictEndBalancesNestedDicts(t *testing.T) {
	b := []byte("<< /A << /B 1 >> /C 2 >> trailing")
	end := findMatchingDictEnd(b)
	if end <= 0 {
		t.Fatal("expected a positive match end")
	}
	if string(b[:end]) != "<< /A << /B 1 >> /C 2 >>" {
		t.Errorf("matched span = %q", b[:end])
	}
}
