package neo4j

import (
	"context"
	"fmt"

	"github.com/corporate-radar/backend/pkg/ftm"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// indexStatements are idempotent; upserts rely on the ftm_id lookups and the
// search endpoint on the fulltext index. The await call blocks until the
// store reports every index online, so batched writes never race a build.
var indexStatements = []string{
	"CREATE INDEX company_ftm_id IF NOT EXISTS FOR (c:Company) ON (c.ftm_id)",
	"CREATE INDEX person_ftm_id IF NOT EXISTS FOR (p:Person) ON (p.ftm_id)",
	"CREATE FULLTEXT INDEX companyNameIndex IF NOT EXISTS FOR (n:Company) ON EACH [n.name]",
}

// EnsureIndexes creates the identifier and fulltext indexes if missing and
// waits for them to come online.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, stmt := range indexStatements {
			if _, err := tx.Run(ctx, stmt, nil); err != nil {
				return nil, err
			}
		}
		if _, err := tx.Run(ctx, "CALL db.awaitIndexes()", nil); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}
	return nil
}

const upsertNodesQuery = `
UNWIND $batch AS row
MERGE (n:%s {ftm_id: row.id})
SET n.schema = row.schema,
    n.name = row.name,
    n.datasets = row.datasets,
    n.modified_at = row.modified_at
`

// An edge endpoint may be either a Person or a Company, so both labels are
// probed and coalesced. Rows whose endpoints resolve to nothing fall out of
// the UNWIND via the WHERE and are dropped without failing the batch; the
// returned count lets the caller account for them.
const upsertEdgesQuery = `
UNWIND $batch AS row
OPTIONAL MATCH (srcP:Person {ftm_id: row.source_id})
OPTIONAL MATCH (srcC:Company {ftm_id: row.source_id})
WITH row, coalesce(srcP, srcC) AS src
OPTIONAL MATCH (tgtP:Person {ftm_id: row.target_id})
OPTIONAL MATCH (tgtC:Company {ftm_id: row.target_id})
WITH row, src, coalesce(tgtP, tgtC) AS tgt
WHERE src IS NOT NULL AND tgt IS NOT NULL
MERGE (src)-[r:%s {ftm_id: row.id}]->(tgt)
SET r.schema = row.schema,
    r.datasets = row.datasets,
    r.modified_at = row.modified_at
RETURN count(r) AS written
`

// UpsertNodes writes one node batch in a single transaction. Within a batch
// the last row for an identifier wins, matching UNWIND order.
func (s *Store) UpsertNodes(ctx context.Context, kind ftm.NodeKind, rows []ftm.NodeRow) error {
	if len(rows) == 0 {
		return nil
	}

	label, err := nodeLabel(kind)
	if err != nil {
		return err
	}

	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	query := fmt.Sprintf(upsertNodesQuery, label)
	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{"batch": nodeBatchParams(rows)})
		if err != nil {
			return nil, err
		}
		_, err = result.Consume(ctx)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert %s nodes: %w", kind, err)
	}
	return nil
}

// UpsertEdges writes one edge batch in a single transaction, resolving both
// endpoints across node kinds by identifier. It returns the number of rows
// whose endpoints resolved and were written.
func (s *Store) UpsertEdges(ctx context.Context, typ ftm.EdgeType, rows []ftm.EdgeRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	relType, err := edgeRelType(typ)
	if err != nil {
		return 0, err
	}

	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	query := fmt.Sprintf(upsertEdgesQuery, relType)
	written, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{"batch": edgeBatchParams(rows)})
		if err != nil {
			return 0, err
		}
		record, err := result.Single(ctx)
		if err != nil {
			return 0, err
		}
		return recordInt(record, "written"), nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert %s edges: %w", typ, err)
	}
	return int(written.(int64)), nil
}

// nodeLabel gates the label interpolated into Cypher to the closed kind set.
func nodeLabel(kind ftm.NodeKind) (string, error) {
	switch kind {
	case ftm.NodeCompany, ftm.NodePerson:
		return string(kind), nil
	default:
		return "", fmt.Errorf("unknown node kind %q", kind)
	}
}

// edgeRelType gates the relationship type interpolated into Cypher.
func edgeRelType(typ ftm.EdgeType) (string, error) {
	switch typ {
	case ftm.EdgeDirectorship, ftm.EdgeOwnership:
		return string(typ), nil
	default:
		return "", fmt.Errorf("unknown edge type %q", typ)
	}
}

func nodeBatchParams(rows []ftm.NodeRow) []map[string]any {
	batch := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		batch = append(batch, map[string]any{
			"id":          row.ID,
			"schema":      string(row.Kind),
			"name":        nullable(row.Name),
			"datasets":    row.Datasets,
			"modified_at": nullable(row.ModifiedAt),
		})
	}
	return batch
}

func edgeBatchParams(rows []ftm.EdgeRow) []map[string]any {
	batch := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		batch = append(batch, map[string]any{
			"id":          row.ID,
			"schema":      edgeSchema(row.Type),
			"source_id":   row.SourceID,
			"target_id":   row.TargetID,
			"datasets":    row.Datasets,
			"modified_at": nullable(row.ModifiedAt),
		})
	}
	return batch
}

// edgeSchema maps the relationship type back to the source schema spelling.
func edgeSchema(typ ftm.EdgeType) string {
	switch typ {
	case ftm.EdgeDirectorship:
		return "Directorship"
	case ftm.EdgeOwnership:
		return "Ownership"
	default:
		return string(typ)
	}
}

// nullable keeps absent attributes as nulls in the graph instead of
// overwriting them with empty strings.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
