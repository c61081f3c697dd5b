package ftm

import (
	"reflect"
	"testing"
)

func TestClassifyCompany(t *testing.T) {
	t.Parallel()

	rec := map[string]any{
		"id":     "c1",
		"schema": "Company",
		"properties": map[string]any{
			"name": []any{"Acme GmbH", "ACME"},
		},
		"datasets":   []any{"de_companies"},
		"modifiedAt": "2024-01-01",
	}

	row, ok := Classify(rec)
	if !ok {
		t.Fatal("expected a row")
	}

	want := NodeRow{
		Kind:       NodeCompany,
		ID:         "c1",
		Name:       "Acme GmbH",
		Datasets:   []string{"de_companies"},
		ModifiedAt: "2024-01-01",
	}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("expected %+v, got %+v", want, row)
	}
}

func TestClassifyPersonWithoutName(t *testing.T) {
	t.Parallel()

	rec := map[string]any{
		"id":     "p1",
		"schema": "Person",
	}

	row, ok := Classify(rec)
	if !ok {
		t.Fatal("expected a row")
	}
	node := row.(NodeRow)
	if node.Kind != NodePerson || node.ID != "p1" || node.Name != "" {
		t.Errorf("unexpected row %+v", node)
	}
}

func TestClassifyDirectorship(t *testing.T) {
	t.Parallel()

	rec := map[string]any{
		"id":     "d1",
		"schema": "Directorship",
		"properties": map[string]any{
			"director":     []any{"p1"},
			"organization": []any{"c1"},
		},
		"modified_at": "2024-02-02",
	}

	row, ok := Classify(rec)
	if !ok {
		t.Fatal("expected a row")
	}
	edge := row.(EdgeRow)
	if edge.Type != EdgeDirectorship || edge.SourceID != "p1" || edge.TargetID != "c1" {
		t.Errorf("unexpected row %+v", edge)
	}
	if edge.ModifiedAt != "2024-02-02" {
		t.Errorf("expected snake_case timestamp to be read, got %q", edge.ModifiedAt)
	}
}

func TestClassifyOwnership(t *testing.T) {
	t.Parallel()

	rec := map[string]any{
		"id":     "o1",
		"schema": "Ownership",
		"properties": map[string]any{
			"owner": []any{"c1"},
			"asset": []any{"c2"},
		},
	}

	row, ok := Classify(rec)
	if !ok {
		t.Fatal("expected a row")
	}
	edge := row.(EdgeRow)
	if edge.Type != EdgeOwnership || edge.SourceID != "c1" || edge.TargetID != "c2" {
		t.Errorf("unexpected row %+v", edge)
	}
}

func TestClassifyDrops(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  map[string]any
	}{
		{name: "unknown schema", rec: map[string]any{"id": "x1", "schema": "Address"}},
		{name: "missing schema", rec: map[string]any{"id": "x1"}},
		{name: "node without id", rec: map[string]any{"schema": "Company"}},
		{
			name: "edge without source",
			rec: map[string]any{
				"id": "d1", "schema": "Directorship",
				"properties": map[string]any{"organization": []any{"c1"}},
			},
		},
		{
			name: "edge without target",
			rec: map[string]any{
				"id": "d1", "schema": "Directorship",
				"properties": map[string]any{"director": []any{"p1"}},
			},
		},
		{
			name: "edge without id",
			rec: map[string]any{
				"schema": "Ownership",
				"properties": map[string]any{
					"owner": []any{"c1"}, "asset": []any{"c2"},
				},
			},
		},
		{
			name: "scalar property value",
			rec: map[string]any{
				"id": "d1", "schema": "Directorship",
				"properties": map[string]any{
					"director": "p1", "organization": []any{"c1"},
				},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if row, ok := Classify(tt.rec); ok {
				t.Errorf("expected record to be dropped, got %+v", row)
			}
		})
	}
}
