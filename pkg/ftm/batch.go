package ftm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/corporate-radar/backend/internal/util"
	"github.com/corporate-radar/backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// batcher accumulates canonical rows into per-kind and per-type groups and
// flushes each group as one bulk upsert transaction once it reaches the
// configured size. Drain flushes whatever is left at end of stream.
type batcher struct {
	store      Store
	size       int
	maxRetries int

	nodes map[NodeKind][]NodeRow
	edges map[EdgeType][]EdgeRow

	// dangling counts edge rows the store skipped because an endpoint did
	// not resolve. Guarded by mu since drain writes concurrently.
	mu       sync.Mutex
	dangling map[EdgeType]int
}

func newBatcher(store Store, size, maxRetries int) *batcher {
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &batcher{
		store:      store,
		size:       size,
		maxRetries: maxRetries,
		nodes:      make(map[NodeKind][]NodeRow),
		edges:      make(map[EdgeType][]EdgeRow),
		dangling:   make(map[EdgeType]int),
	}
}

func (b *batcher) addNode(ctx context.Context, row NodeRow) error {
	b.nodes[row.Kind] = append(b.nodes[row.Kind], row)
	if len(b.nodes[row.Kind]) >= b.size {
		return b.flushNodes(ctx, row.Kind)
	}
	return nil
}

func (b *batcher) addEdge(ctx context.Context, row EdgeRow) error {
	b.edges[row.Type] = append(b.edges[row.Type], row)
	if len(b.edges[row.Type]) >= b.size {
		return b.flushEdges(ctx, row.Type)
	}
	return nil
}

func (b *batcher) flushNodes(ctx context.Context, kind NodeKind) error {
	if err := b.writeNodes(ctx, kind, b.nodes[kind]); err != nil {
		return err
	}
	b.nodes[kind] = b.nodes[kind][:0]
	return nil
}

func (b *batcher) flushEdges(ctx context.Context, typ EdgeType) error {
	if err := b.writeEdges(ctx, typ, b.edges[typ]); err != nil {
		return err
	}
	b.edges[typ] = b.edges[typ][:0]
	return nil
}

func (b *batcher) writeNodes(ctx context.Context, kind NodeKind, batch []NodeRow) error {
	if len(batch) == 0 {
		return nil
	}

	start := time.Now()
	err := util.RetryErrWithContext(ctx, b.maxRetries, func(ctx context.Context) error {
		return b.store.UpsertNodes(ctx, kind, batch)
	})
	if err != nil {
		return fmt.Errorf("failed to flush %s batch: %w", kind, err)
	}

	logger.Debug("[Ingest] Flushed node batch", "kind", kind, "rows", len(batch), "elapsed", time.Since(start))
	return nil
}

func (b *batcher) writeEdges(ctx context.Context, typ EdgeType, batch []EdgeRow) error {
	if len(batch) == 0 {
		return nil
	}

	start := time.Now()
	var written int
	err := util.RetryErrWithContext(ctx, b.maxRetries, func(ctx context.Context) error {
		n, err := b.store.UpsertEdges(ctx, typ, batch)
		written = n
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to flush %s batch: %w", typ, err)
	}

	if skipped := len(batch) - written; skipped > 0 {
		b.mu.Lock()
		b.dangling[typ] += skipped
		b.mu.Unlock()
	}

	logger.Debug("[Ingest] Flushed edge batch", "type", typ, "rows", len(batch), "written", written, "elapsed", time.Since(start))
	return nil
}

// drain flushes all non-empty groups. Groups are independent after routing,
// so they are written concurrently; the store opens one session per call.
// The group maps are only cleared once every write has committed.
func (b *batcher) drain(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	for kind, batch := range b.nodes {
		k, rows := kind, batch
		g.Go(func() error {
			return b.writeNodes(gCtx, k, rows)
		})
	}
	for typ, batch := range b.edges {
		t, rows := typ, batch
		g.Go(func() error {
			return b.writeEdges(gCtx, t, rows)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for kind := range b.nodes {
		b.nodes[kind] = b.nodes[kind][:0]
	}
	for typ := range b.edges {
		b.edges[typ] = b.edges[typ][:0]
	}
	return nil
}
