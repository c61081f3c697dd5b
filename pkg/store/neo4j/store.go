// Package neo4j implements the graph store on top of a Neo4j database
// reached through the Bolt driver. All write paths are idempotent MERGE
// upserts keyed on the stable ftm_id property.
package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Store wraps one Bolt driver. It is safe for concurrent use; every call
// opens its own short-lived session.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewStoreParams contains configuration for connecting to the database.
type NewStoreParams struct {
	URI      string
	User     string
	Password string
	// Database selects a named database; empty means the server default.
	Database string
}

// NewStore connects to the database and verifies connectivity before
// returning. The caller owns the store and must Close it on shutdown.
func NewStore(ctx context.Context, params NewStoreParams) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(params.URI, neo4j.BasicAuth(params.User, params.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach %s: %w", params.URI, err)
	}

	return &Store{
		driver:   driver,
		database: params.Database,
	}, nil
}

// Close releases the underlying driver and all pooled connections.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func (s *Store) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: s.database,
	})
}
