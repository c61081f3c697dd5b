package ftm

import (
	"context"
	"io"
)

// NodeKind labels the two node categories in the graph.
type NodeKind string

const (
	NodeCompany NodeKind = "Company"
	NodePerson  NodeKind = "Person"
)

// EdgeType labels the two relationship categories in the graph.
type EdgeType string

const (
	EdgeDirectorship EdgeType = "DIRECTORSHIP"
	EdgeOwnership    EdgeType = "OWNERSHIP"
)

// Row is the canonical form of one classified source record. It is a closed
// variant: the only implementations are NodeRow and EdgeRow.
type Row interface {
	row()
}

// NodeRow is a normalized Company or Person record ready for upsert.
type NodeRow struct {
	Kind       NodeKind
	ID         string
	Name       string
	Datasets   []string
	ModifiedAt string
}

// EdgeRow is a normalized Directorship or Ownership record ready for upsert.
// SourceID and TargetID reference nodes by their stable identifier; either
// endpoint may turn out to be a Person or a Company.
type EdgeRow struct {
	Type       EdgeType
	ID         string
	SourceID   string
	TargetID   string
	Datasets   []string
	ModifiedAt string
}

func (NodeRow) row() {}
func (EdgeRow) row() {}

// Source provides repeatable access to a raw entity export. Open must return
// a fresh reader positioned at the start of the data; the two-pass importer
// opens the same source once per pass.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Name() string
}

// Store is the write side of the graph store the pipeline depends on.
// Upserts are keyed by the stable identifier within a kind or type; a batch
// is committed as a single transaction or not at all. UpsertEdges reports
// how many rows it wrote; rows whose endpoints cannot be resolved are
// skipped by the store rather than failing the batch.
type Store interface {
	EnsureIndexes(ctx context.Context) error
	UpsertNodes(ctx context.Context, kind NodeKind, rows []NodeRow) error
	UpsertEdges(ctx context.Context, typ EdgeType, rows []EdgeRow) (int, error)
}
