package overlay

// PageInfo is one entry of the per-page metadata the collector emits.
type PageInfo struct {
	PageNumber  int
	Width       float64
	Height      float64
	FieldsCount int
}

// Metadata accumulates processing results across a fill invocation.
// Exposes only append-style mutations, per the spec's C7 contract.
type Metadata struct {
	pages    []PageInfo
	pageIdx  map[int]int // page number -> index into pages, for incremental counts
	warnings []string
	errors   []string

	fieldsProcessed int
	fieldsSkipped   int
}

// NewMetadata creates an empty collector seeded with one entry per
// template page, in order.
func NewMetadata(pageDims []PageDim) *Metadata {
	m := &Metadata{
		pageIdx: make(map[int]int, len(pageDims)),
	}
	for i, p := range pageDims {
		m.pages = append(m.pages, PageInfo{PageNumber: i, Width: p.Width, Height: p.Height})
		m.pageIdx[i] = i
	}
	return m
}

// RecordProcessed increments the per-page field count for page and the
// overall processed counter.
func (m *Metadata) RecordProcessed(page int) {
	if idx, ok := m.pageIdx[page]; ok {
		m.pages[idx].FieldsCount++
	}
	m.fieldsProcessed++
}

// RecordSkipped increments the overall skipped counter.
func (m *Metadata) RecordSkipped() {
	m.fieldsSkipped++
}

// Warn appends a warning message, preserving call order.
func (m *Metadata) Warn(msg string) {
	m.warnings = append(m.warnings, msg)
}

// Error appends an error message, preserving call order.
func (m *Metadata) Error(msg string) {
	m.errors = append(m.errors, msg)
}

// Pages returns the accumulated per-page info, in page order.
func (m *Metadata) Pages() []PageInfo { return m.pages }

// FieldsProcessed returns the total processed-field count.
func (m *Metadata) FieldsProcessed() int { return m.fieldsProcessed }

// FieldsSkipped returns the total skipped-field count.
func (m *Metadata) FieldsSkipped() int { return m.fieldsSkipped }

// Warnings returns the accumulated warnings, in order.
func (m *Metadata) Warnings() []string { return m.warnings }

// Errors returns the accumulated errors, in order.
func (m *Metadata) Errors() []string { return m.errors }
