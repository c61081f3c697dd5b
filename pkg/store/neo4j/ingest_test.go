package neo4j

import (
	"testing"

	"github.com/corporate-radar/backend/pkg/ftm"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

func TestNodeLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    ftm.NodeKind
		want    string
		wantErr bool
	}{
		{name: "company", kind: ftm.NodeCompany, want: "Company"},
		{name: "person", kind: ftm.NodePerson, want: "Person"},
		{name: "unknown kind rejected", kind: ftm.NodeKind("Asset; DETACH DELETE n"), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := nodeLabel(tt.kind)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got label %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected label %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEdgeRelType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		typ     ftm.EdgeType
		want    string
		wantErr bool
	}{
		{name: "directorship", typ: ftm.EdgeDirectorship, want: "DIRECTORSHIP"},
		{name: "ownership", typ: ftm.EdgeOwnership, want: "OWNERSHIP"},
		{name: "unknown type rejected", typ: ftm.EdgeType("MEMBERSHIP"), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := edgeRelType(tt.typ)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got type %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected type %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNodeBatchParams(t *testing.T) {
	t.Parallel()

	rows := []ftm.NodeRow{
		{Kind: ftm.NodeCompany, ID: "c1", Name: "Acme GmbH", Datasets: []string{"de_companies"}, ModifiedAt: "2024-01-01"},
		{Kind: ftm.NodeCompany, ID: "c2"},
	}

	batch := nodeBatchParams(rows)
	if len(batch) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(batch))
	}

	first := batch[0]
	if first["id"] != "c1" || first["schema"] != "Company" || first["name"] != "Acme GmbH" {
		t.Errorf("unexpected first row: %v", first)
	}

	second := batch[1]
	if second["name"] != nil {
		t.Errorf("expected empty name to map to nil, got %v", second["name"])
	}
	if second["modified_at"] != nil {
		t.Errorf("expected empty modified_at to map to nil, got %v", second["modified_at"])
	}
}

func TestEdgeBatchParams(t *testing.T) {
	t.Parallel()

	rows := []ftm.EdgeRow{
		{Type: ftm.EdgeOwnership, ID: "o1", SourceID: "p1", TargetID: "c1", ModifiedAt: "2024-02-02"},
	}

	batch := edgeBatchParams(rows)
	if len(batch) != 1 {
		t.Fatalf("expected 1 row, got %d", len(batch))
	}

	row := batch[0]
	if row["schema"] != "Ownership" {
		t.Errorf("expected schema Ownership, got %v", row["schema"])
	}
	if row["source_id"] != "p1" || row["target_id"] != "c1" {
		t.Errorf("unexpected endpoints: %v", row)
	}
}

func TestRecordHelpers(t *testing.T) {
	t.Parallel()

	record := &neo4j.Record{
		Keys:   []string{"name", "missing_value", "score", "count"},
		Values: []any{"Acme GmbH", nil, 1.5, int64(3)},
	}

	if got := recordString(record, "name"); got != "Acme GmbH" {
		t.Errorf("expected name, got %q", got)
	}
	if got := recordString(record, "missing_value"); got != "" {
		t.Errorf("expected empty string for null value, got %q", got)
	}
	if got := recordString(record, "absent_key"); got != "" {
		t.Errorf("expected empty string for absent key, got %q", got)
	}
	if got := recordFloat(record, "score"); got != 1.5 {
		t.Errorf("expected 1.5, got %v", got)
	}
	if got := recordFloat(record, "count"); got != 3 {
		t.Errorf("expected integer coerced to 3, got %v", got)
	}
}
