package neo4j

import (
	"context"
	"fmt"

	"github.com/corporate-radar/backend/pkg/store/base"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const companyDetailsQuery = `
MATCH (c:Company {ftm_id: $id})
RETURN c.ftm_id AS id,
       c.name AS name,
       coalesce(c.address, head(coalesce(c.addresses, []))) AS address
LIMIT 1
`

// CompanyDetails looks up a single company by identifier. It returns
// (nil, nil) when the company does not exist.
func (s *Store) CompanyDetails(ctx context.Context, companyID string) (*base.CompanyDetails, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	details, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, companyDetailsQuery, map[string]any{"id": companyID})
		if err != nil {
			return nil, err
		}
		if !result.Next(ctx) {
			return nil, result.Err()
		}
		record := result.Record()
		return &base.CompanyDetails{
			ID:      recordString(record, "id"),
			Name:    recordString(record, "name"),
			Address: recordString(record, "address"),
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load company %s: %w", companyID, err)
	}
	if details == nil {
		return nil, nil
	}
	return details.(*base.CompanyDetails), nil
}

const companyNetworkQuery = `
MATCH (p:Person)-[r:DIRECTORSHIP]->(c:Company {ftm_id: $id})
RETURN p.name AS name, r.role AS role, r.start_date AS start_date
`

// CompanyNetwork lists the persons holding a directorship into the company.
// An unknown company yields an empty slice, same as a company without
// officers.
func (s *Store) CompanyNetwork(ctx context.Context, companyID string) ([]base.Officer, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	officers, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, companyNetworkQuery, map[string]any{"id": companyID})
		if err != nil {
			return nil, err
		}
		officers := []base.Officer{}
		for result.Next(ctx) {
			record := result.Record()
			officers = append(officers, base.Officer{
				Name:      recordString(record, "name"),
				Role:      recordString(record, "role"),
				StartDate: recordString(record, "start_date"),
			})
		}
		return officers, result.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load network of company %s: %w", companyID, err)
	}
	return officers.([]base.Officer), nil
}

// Persons in shared datasets may miss a stable identifier, so the query
// falls back to the store-internal element id. The second hop excludes the
// root so self-loops never reach the caller. The row limit bounds response
// size for very highly connected directors.
const companyEgoQuery = `
MATCH (root:Company {ftm_id: $id})
OPTIONAL MATCH (p:Person)-[r1:DIRECTORSHIP]->(root)
OPTIONAL MATCH (p)-[r2:DIRECTORSHIP]->(c2:Company)
WHERE c2 IS NULL OR c2.ftm_id <> root.ftm_id
RETURN root.ftm_id AS root_id,
       root.name AS root_name,
       coalesce(p.ftm_id, elementId(p)) AS person_id,
       p.name AS person_name,
       coalesce(c2.ftm_id, elementId(c2)) AS other_id,
       c2.name AS other_name,
       r1.role AS role_to_root,
       r2.role AS role_to_other
LIMIT 500
`

// CompanyEgoRows runs the bounded 2-hop ego-network query rooted at the
// company and returns its raw rows. An unknown root yields no rows.
func (s *Store) CompanyEgoRows(ctx context.Context, companyID string) ([]base.EgoRow, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	rows, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, companyEgoQuery, map[string]any{"id": companyID})
		if err != nil {
			return nil, err
		}
		rows := []base.EgoRow{}
		for result.Next(ctx) {
			record := result.Record()
			rows = append(rows, base.EgoRow{
				RootID:      recordString(record, "root_id"),
				RootName:    recordString(record, "root_name"),
				PersonID:    recordString(record, "person_id"),
				PersonName:  recordString(record, "person_name"),
				OtherID:     recordString(record, "other_id"),
				OtherName:   recordString(record, "other_name"),
				RoleToRoot:  recordString(record, "role_to_root"),
				RoleToOther: recordString(record, "role_to_other"),
			})
		}
		return rows, result.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load ego network of company %s: %w", companyID, err)
	}
	return rows.([]base.EgoRow), nil
}
