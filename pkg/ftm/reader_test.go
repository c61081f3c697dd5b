package ftm

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func collectRecords(t *testing.T, input string) []map[string]any {
	t.Helper()

	var records []map[string]any
	err := ScanRecords(strings.NewReader(input), func(rec map[string]any) bool {
		records = append(records, rec)
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return records
}

func TestScanRecordsArray(t *testing.T) {
	t.Parallel()

	records := collectRecords(t, `[{"id":"a"},{"id":"b"},{"id":"c"}]`)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1]["id"] != "b" {
		t.Errorf("unexpected record order: %v", records)
	}
}

func TestScanRecordsArrayWithLeadingWhitespace(t *testing.T) {
	t.Parallel()

	records := collectRecords(t, "\n\t  [{\"id\":\"a\"}]")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestScanRecordsConcatenated(t *testing.T) {
	t.Parallel()

	input := `{"id":"a"}
{"id":"b"}
{"id":"c"}`
	records := collectRecords(t, input)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}

func TestScanRecordsSkipsNonObjects(t *testing.T) {
	t.Parallel()

	records := collectRecords(t, `[{"id":"a"}, 42, "text", null, {"id":"b"}]`)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestScanRecordsEmptyInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   \n\t", "[]"} {
		records := collectRecords(t, input)
		if len(records) != 0 {
			t.Errorf("expected no records for %q, got %d", input, len(records))
		}
	}
}

func TestScanRecordsStopsEarly(t *testing.T) {
	t.Parallel()

	count := 0
	err := ScanRecords(strings.NewReader(`[{"id":"a"},{"id":"b"},{"id":"c"}]`), func(rec map[string]any) bool {
		count++
		return count < 2
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected callback to run twice, ran %d times", count)
	}
}

func TestScanRecordsToleratesTruncatedTail(t *testing.T) {
	t.Parallel()

	// A stream cut off mid-record keeps every complete record before the cut.
	records := collectRecords(t, `[{"id":"a"},{"id":"b"},{"id":`)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

type failingReader struct {
	data string
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, r.data), nil
	}
	return 0, errors.New("connection reset")
}

func TestScanRecordsReportsIOErrors(t *testing.T) {
	t.Parallel()

	err := ScanRecords(&failingReader{data: `[{"id":"a"},`}, func(rec map[string]any) bool {
		return true
	})
	if err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("expected underlying read error, got %v", err)
	}
}
