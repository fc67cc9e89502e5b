package formfill

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solidJPEG encodes a w x h solid-color JPEG fixture, standing in for a
// "real" embedded photo/signature image.
func solidJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

// minimalTemplate is a single-page, 612x792 PDF with no form fields — Fill
// must render directly onto it via the overlay/compose pipeline.
var minimalTemplate = []byte(`%PDF-1.7
1 0 obj
<< /Type /Catalog /Pages 2 0 R >>
endobj
2 0 obj
<< /Type /Pages /Kids [3 0 R] /Count 1 >>
endobj
3 0 obj
<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> /Contents 4 0 R >>
endobj
4 0 obj
<< /Length 0 >>
stream

endstream
endobj
trailer
<< /Size 5 /Root 1 0 R >>
%%EOF
`)

func TestFillTextField(t *testing.T) {
	fields := []Field{{
		FieldID: "full_name", Page: 0, X: 50, Y: 50, Width: 200, Height: 20,
		FieldType: FieldText, Value: "Jane Doe",
	}}
	pdf, meta, err := Fill(minimalTemplate, fields, Options{Flatten: true})
	require.NoError(t, err)
	assert.Contains(t, string(pdf), "Jane Doe")
	assert.Equal(t, 1, meta.FieldsProcessed)
	assert.Equal(t, 0, meta.FieldsSkipped)
	require.Len(t, meta.Pages, 1)
	assert.Equal(t, float64(612), meta.Pages[0].Width)
}

func TestFillCheckboxField(t *testing.T) {
	fields := []Field{{
		FieldID: "agree", Page: 0, X: 50, Y: 50, Width: 14, Height: 14,
		FieldType: FieldCheckbox, Value: true,
	}}
	_, meta, err := Fill(minimalTemplate, fields, Options{Flatten: true})
	require.NoError(t, err)
	assert.Equal(t, 1, meta.FieldsProcessed)
}

func TestFillUnknownPageIsRecordedAsSkipped(t *testing.T) {
	fields := []Field{{FieldID: "f1", Page: 9, FieldType: FieldText, Value: "x"}}
	_, meta, err := Fill(minimalTemplate, fields, Options{Flatten: true})
	require.NoError(t, err)
	assert.Equal(t, 1, meta.FieldsSkipped)
	assert.Len(t, meta.Warnings, 1)
}

func TestFillFlattenOmitsInteractiveFormLayer(t *testing.T) {
	fields := []Field{{FieldID: "f1", Page: 0, FieldType: FieldText, Value: "x", Width: 100, Height: 20}}
	pdf, _, err := Fill(minimalTemplate, fields, Options{Flatten: true})
	require.NoError(t, err)
	assert.NotContains(t, string(pdf), "/AcroForm")
}

func TestFillEmptyFieldListProducesUnchangedPageStructure(t *testing.T) {
	pdf, meta, err := Fill(minimalTemplate, nil, Options{Flatten: true})
	require.NoError(t, err)
	assert.Equal(t, 0, meta.FieldsProcessed)
	assert.Equal(t, 0, meta.FieldsSkipped)
	assert.Contains(t, string(pdf), "/Type /Page")
}

func TestFillIsDeterministic(t *testing.T) {
	fields := []Field{{FieldID: "f1", Page: 0, FieldType: FieldText, Value: "x", Width: 100, Height: 20}}
	pdf1, _, err := Fill(minimalTemplate, fields, Options{Flatten: true})
	require.NoError(t, err)
	pdf2, _, err := Fill(minimalTemplate, fields, Options{Flatten: true})
	require.NoError(t, err)
	assert.True(t, bytes.Equal(pdf1, pdf2), "identical template+fields+options should produce byte-equal output")
}

// TestFillImageFieldWithContain is spec scenario 3: a 100x50 JPEG placed in
// a 200x200 box under fit_mode "contain" should render at 200x100, centered
// vertically (offset_y = 50), using DCTDecode passthrough.
func TestFillImageFieldWithContain(t *testing.T) {
	fields := []Field{{
		FieldID: "photo", Page: 0, X: 0, Y: 0, Width: 200, Height: 200,
		FieldType: FieldImage, Value: solidJPEG(t, 100, 50), FitMode: FitContain,
	}}
	pdf, meta, err := Fill(minimalTemplate, fields, Options{Flatten: true})
	require.NoError(t, err)
	assert.Equal(t, 1, meta.FieldsProcessed)
	assert.Equal(t, 0, meta.FieldsSkipped)
	assert.Contains(t, string(pdf), "/DCTDecode")
	assert.Contains(t, string(pdf), "/Subtype /Image")
}

// TestFillImageFieldWithCoverAndDuplicateID is spec scenario 4: the same
// field_id used twice with different boxes must register a single image
// XObject, referenced by two independent Do placements.
func TestFillImageFieldWithCoverAndDuplicateID(t *testing.T) {
	data := solidJPEG(t, 80, 40)
	fields := []Field{
		{FieldID: "stamp", Page: 0, X: 0, Y: 0, Width: 100, Height: 100, FieldType: FieldImage, Value: data, FitMode: FitCover},
		{FieldID: "stamp", Page: 0, X: 150, Y: 150, Width: 50, Height: 50, FieldType: FieldImage, Value: data, FitMode: FitCover},
	}
	pdf, meta, err := Fill(minimalTemplate, fields, Options{Flatten: true})
	require.NoError(t, err)
	assert.Equal(t, 2, meta.FieldsProcessed)
	assert.Equal(t, 0, meta.FieldsSkipped)
	assert.Equal(t, 1, bytes.Count(pdf, []byte("/Subtype /Image")), "duplicate field_id should register only one Image XObject")
	assert.Equal(t, 2, bytes.Count(pdf, []byte(" Do\n")), "each placement should still emit its own Do operator")
}

func TestFillRejectsUnparseableTemplate(t *testing.T) {
	_, _, err := Fill([]byte("not a pdf"), nil, Options{Flatten: true})
	assert.Error(t, err)
}
