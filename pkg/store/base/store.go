package base

import (
	"context"

	"github.com/corporate-radar/backend/pkg/ftm"
)

// GraphStore defines the full store surface the backend depends on: the
// bulk-upsert write path used by the ingestion pipeline and the read queries
// behind the company endpoints. Implementations wrap one store product; the
// rest of the code depends only on this capability.
type GraphStore interface {
	ftm.Store

	// CompanyDetails returns nil without error when the company is unknown.
	CompanyDetails(ctx context.Context, companyID string) (*CompanyDetails, error)

	// CompanyNetwork lists persons with a directorship into the company.
	CompanyNetwork(ctx context.Context, companyID string) ([]Officer, error)

	// CompanyEgoRows returns the raw rows of the bounded 2-hop ego-network
	// query rooted at the company. Folding into a deduplicated view is the
	// caller's concern.
	CompanyEgoRows(ctx context.Context, companyID string) ([]EgoRow, error)

	// SearchCompanies matches company names, preferring the fulltext index
	// and transparently falling back to a substring scan when the fulltext
	// query fails at the store level.
	SearchCompanies(ctx context.Context, query string, limit int) ([]SearchHit, error)
}
