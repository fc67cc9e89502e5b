package overlay

import "testing"

func TestNewMetadataSeedsOnePageInfoPerPage(t *testing.T) {
	m := NewMetadata([]PageDim{{Width: 612, Height: 792}, {Width: 300, Height: 400}})
	pages := m.Pages()
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if pages[0].Width != 612 || pages[1].Width != 300 {
		t.Errorf("page dims not preserved: %+v", pages)
	}
}

func TestRecordProcessedIncrementsPageAndTotal(t *testing.T) {
	m := NewMetadata([]PageDim{{Width: 612, Height: 792}})
	m.RecordProcessed(0)
	m.RecordProcessed(0)
	if m.FieldsProcessed() != 2 {
		t.Errorf("FieldsProcessed = %d, want 2", m.FieldsProcessed())
	}
	if m.Pages()[0].FieldsCount != 2 {
		t.Errorf("page FieldsCount = %d, want 2", m.Pages()[0].FieldsCount)
	}
}

func TestRecordSkippedDoesNotTouchPageCounts(t *testing.T) {
	m := NewMetadata([]PageDim{{Width: 612, Height: 792}})
	m.RecordSkipped()
	if m.FieldsSkipped() != 1 {
		t.Errorf("FieldsSkipped = %d, want 1", m.FieldsSkipped())
	}
	if m.Pages()[0].FieldsCount != 0 {
		t.Errorf("skipped field should not increment page FieldsCount")
	}
}

func TestWarnAndErrorPreserveOrder(t *testing.T) {
	m := NewMetadata(nil)
	m.Warn("first")
	m.Warn("second")
	m.Error("oops")
	if len(m.Warnings()) != 2 || m.Warnings()[0] != "first" || m.Warnings()[1] != "second" {
		t.Errorf("warnings out of order: %v", m.Warnings())
	}
	if len(m.Errors()) != 1 || m.Errors()[0] != "oops" {
		t.Errorf("errors = %v, want [oops]", m.Errors())
	}
}
