package ftm

import (
	"context"
	"fmt"
	"time"

	"github.com/corporate-radar/backend/pkg/logger"
)

// DefaultBatchSize matches the row count the export pipeline was tuned for.
const DefaultBatchSize = 5000

// Summary reports what one ingestion run committed and skipped. Dropped
// covers unknown schemas, rows missing identifiers, and edges whose
// endpoints never resolved to an ingested node.
type Summary struct {
	Companies     int   `json:"companies"`
	Persons       int   `json:"persons"`
	Directorships int   `json:"directorships"`
	Ownerships    int   `json:"ownerships"`
	Dropped       int   `json:"dropped"`
	ElapsedMs     int64 `json:"elapsed_ms"`
}

// Importer drives the two-pass ingestion of an entity export into the graph
// store: indexes first, then all node records, then all relationship records.
// The second pass can resolve every endpoint written by the first, so the
// relative order of records in the source does not matter.
type Importer struct {
	store      Store
	batchSize  int
	maxRetries int
}

// NewImporterParams contains configuration for creating an Importer.
type NewImporterParams struct {
	Store Store
	// BatchSize is the number of rows per bulk upsert; DefaultBatchSize if <= 0.
	BatchSize int
	// MaxRetries bounds flush attempts per batch; a value <= 1 disables retry.
	MaxRetries int
}

func NewImporter(params NewImporterParams) *Importer {
	size := params.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &Importer{
		store:      params.Store,
		batchSize:  size,
		maxRetries: params.MaxRetries,
	}
}

// Ingest streams the source twice and returns per-kind and per-type upsert
// counts. A store transaction failure aborts the run; batches flushed before
// the failure stay committed.
func (imp *Importer) Ingest(ctx context.Context, src Source) (*Summary, error) {
	start := time.Now()
	summary := &Summary{}

	logger.Info("[Ingest] Ensuring indexes", "source", src.Name())
	if err := imp.store.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	logger.Info("[Ingest] Importing nodes", "source", src.Name())
	t0 := time.Now()
	if err := imp.runPass(ctx, src, passNodes, summary); err != nil {
		return nil, err
	}
	logger.Info(
		"[Ingest] Nodes imported",
		"companies", summary.Companies,
		"persons", summary.Persons,
		"elapsed", time.Since(t0),
	)

	logger.Info("[Ingest] Importing relationships", "source", src.Name())
	t0 = time.Now()
	if err := imp.runPass(ctx, src, passEdges, summary); err != nil {
		return nil, err
	}
	logger.Info(
		"[Ingest] Relationships imported",
		"directorships", summary.Directorships,
		"ownerships", summary.Ownerships,
		"elapsed", time.Since(t0),
	)

	summary.ElapsedMs = time.Since(start).Milliseconds()
	return summary, nil
}

type pass int

const (
	passNodes pass = iota
	passEdges
)

func (imp *Importer) runPass(ctx context.Context, src Source, p pass, summary *Summary) error {
	reader, err := src.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open source %s: %w", src.Name(), err)
	}
	defer reader.Close()

	b := newBatcher(imp.store, imp.batchSize, imp.maxRetries)

	var routeErr error
	scanErr := ScanRecords(reader, func(rec map[string]any) bool {
		if ctx.Err() != nil {
			routeErr = ctx.Err()
			return false
		}

		row, ok := Classify(rec)
		if !ok {
			// Unknown schemas and rows missing identifiers are expected in
			// these exports. Count them once, on the node pass.
			if p == passNodes {
				summary.Dropped++
			}
			return true
		}

		switch r := row.(type) {
		case NodeRow:
			if p != passNodes {
				return true
			}
			if routeErr = b.addNode(ctx, r); routeErr != nil {
				return false
			}
			switch r.Kind {
			case NodeCompany:
				summary.Companies++
			case NodePerson:
				summary.Persons++
			}
		case EdgeRow:
			if p != passEdges {
				return true
			}
			if routeErr = b.addEdge(ctx, r); routeErr != nil {
				return false
			}
			switch r.Type {
			case EdgeDirectorship:
				summary.Directorships++
			case EdgeOwnership:
				summary.Ownerships++
			}
		}
		return true
	})

	if scanErr != nil {
		return fmt.Errorf("failed to read source %s: %w", src.Name(), scanErr)
	}
	if routeErr != nil {
		return routeErr
	}

	if err := b.drain(ctx); err != nil {
		return err
	}

	// Dangling edges are only detected at write time, so move them from the
	// per-type upsert counts into the dropped count after the last flush.
	for typ, n := range b.dangling {
		summary.Dropped += n
		switch typ {
		case EdgeDirectorship:
			summary.Directorships -= n
		case EdgeOwnership:
			summary.Ownerships -= n
		}
	}
	return nil
}
