package neo4j

import (
	"context"
	"fmt"

	"github.com/corporate-radar/backend/pkg/logger"
	"github.com/corporate-radar/backend/pkg/store/base"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const searchFulltextQuery = `
CALL db.index.fulltext.queryNodes("companyNameIndex", $q) YIELD node, score
RETURN node.ftm_id AS id, node.name AS name, score
ORDER BY score DESC
LIMIT $limit
`

const searchSubstringQuery = `
MATCH (c:Company)
WHERE toLower(c.name) CONTAINS toLower($q)
RETURN c.ftm_id AS id, c.name AS name, 0.0 AS score
LIMIT $limit
`

// SearchCompanies matches company names against the fulltext index, treating
// the query as a prefix. Any store-level failure of the fulltext path, such
// as a missing index, degrades to a case-insensitive substring scan with a
// zero score. Empty fulltext results are returned as-is, without fallback.
func (s *Store) SearchCompanies(ctx context.Context, query string, limit int) ([]base.SearchHit, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	return searchWithFallback(query,
		func() ([]base.SearchHit, error) {
			return s.runSearch(ctx, session, searchFulltextQuery, query+"*", limit)
		},
		func() ([]base.SearchHit, error) {
			return s.runSearch(ctx, session, searchSubstringQuery, query, limit)
		},
	)
}

// searchWithFallback runs the primary search and falls back only when it
// errors. Empty primary results are final; a failing fallback surfaces its
// own error.
func searchWithFallback(query string, primary, fallback func() ([]base.SearchHit, error)) ([]base.SearchHit, error) {
	hits, err := primary()
	if err == nil {
		return hits, nil
	}
	logger.Warn("Fulltext search failed, falling back to substring scan", "query", query, "err", err)

	hits, err = fallback()
	if err != nil {
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}
	return hits, nil
}

func (s *Store) runSearch(ctx context.Context, session neo4j.SessionWithContext, cypher, q string, limit int) ([]base.SearchHit, error) {
	hits, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, cypher, map[string]any{"q": q, "limit": limit})
		if err != nil {
			return nil, err
		}
		hits := []base.SearchHit{}
		for result.Next(ctx) {
			record := result.Record()
			hits = append(hits, base.SearchHit{
				ID:    recordString(record, "id"),
				Name:  recordString(record, "name"),
				Score: recordFloat(record, "score"),
			})
		}
		return hits, result.Err()
	})
	if err != nil {
		return nil, err
	}
	return hits.([]base.SearchHit), nil
}
