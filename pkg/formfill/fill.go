package formfill

import (
	"fmt"

	"github.com/omofolarin/fill-pdf/internal/compose"
	"github.com/omofolarin/fill-pdf/internal/overlay"
)

// Fill renders fields onto templateBytes and returns the composed PDF plus
// processing metadata. The result is flattened (AcroForm and page Annots
// stripped) only when opts.Flatten is set.
func Fill(templateBytes []byte, fields []Field, opts Options) ([]byte, Metadata, error) {
	dims, err := compose.TemplatePageDims(templateBytes)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("formfill: %w", err)
	}

	pages := make([]overlay.PageDim, len(dims))
	for i, d := range dims {
		pages[i] = overlay.PageDim{Width: d.Width, Height: d.Height}
	}

	meta := overlay.NewMetadata(pages)
	ov := overlay.NewOverlay(pages)
	overlay.RenderFields(ov, pages, toInternalFields(fields), meta)

	overlayBytes := ov.Build()
	pdfBytes, err := compose.Compose(templateBytes, overlayBytes, opts.Flatten)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("formfill: %w", err)
	}

	return pdfBytes, toPublicMetadata(meta), nil
}

func toInternalFields(fields []Field) []overlay.Field {
	out := make([]overlay.Field, len(fields))
	for i, f := range fields {
		out[i] = overlay.Field{
			FieldID:           f.FieldID,
			Page:              f.Page,
			X:                 f.X,
			Y:                 f.Y,
			Width:             f.Width,
			Height:            f.Height,
			FieldType:         string(f.FieldType),
			Value:             f.Value,
			FontSize:          f.FontSize,
			Alignment:         string(f.Alignment),
			VerticalAlignment: string(f.VerticalAlignment),
			FitMode:           string(f.FitMode),
			Options:           f.Options,
		}
	}
	return out
}

func toPublicMetadata(m *overlay.Metadata) Metadata {
	pages := make([]PageInfo, len(m.Pages()))
	for i, p := range m.Pages() {
		pages[i] = PageInfo{
			PageNumber:  p.PageNumber,
			Width:       p.Width,
			Height:      p.Height,
			FieldsCount: p.FieldsCount,
		}
	}
	warnings := m.Warnings()
	if warnings == nil {
		warnings = []string{}
	}
	errs := m.Errors()
	if errs == nil {
		errs = []string{}
	}
	return Metadata{
		Pages:           pages,
		FieldsProcessed: m.FieldsProcessed(),
		FieldsSkipped:   m.FieldsSkipped(),
		Warnings:        warnings,
		Errors:          errs,
	}
}
