package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/corporate-radar/backend/internal/jobs"
	"github.com/corporate-radar/backend/internal/storage"
	"github.com/corporate-radar/backend/internal/util"
	"github.com/corporate-radar/backend/pkg/ftm"
	"github.com/corporate-radar/backend/pkg/logger"
	"github.com/corporate-radar/backend/pkg/store/base"

	"github.com/jackc/pgx/v5/pgxpool"
)

// IngestJobMsg is the payload published to the ingest queue.
type IngestJobMsg struct {
	JobID  int64  `json:"job_id"`
	Source string `json:"source"`
}

// ProcessIngestMessage runs one queued ingestion job end to end: it resolves
// the source reference, streams it into the graph store and records the
// outcome on the job row. The returned error drives the caller's retry
// handling; job bookkeeping failures are logged but never fail the run.
func ProcessIngestMessage(
	ctx context.Context,
	graphStore base.GraphStore,
	conn *pgxpool.Pool,
	msg string,
) (err error) {
	data := new(IngestJobMsg)
	if err = json.Unmarshal([]byte(msg), &data); err != nil {
		return err
	}

	jobStore := jobs.NewStore(conn)
	defer func() {
		if err == nil {
			return
		}
		updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if updateErr := jobStore.MarkFailed(updateCtx, data.JobID, err); updateErr != nil {
			logger.Warn("[Queue] Failed to mark ingest job as failed", "job_id", data.JobID, "err", updateErr)
		}
	}()

	if err = jobStore.MarkRunning(ctx, data.JobID); err != nil {
		return err
	}

	source, err := storage.NewSource(ctx, data.Source)
	if err != nil {
		return err
	}

	importer := ftm.NewImporter(ftm.NewImporterParams{
		Store:      graphStore,
		BatchSize:  int(util.GetEnvNumeric("INGEST_BATCH_SIZE", ftm.DefaultBatchSize)),
		MaxRetries: int(util.GetEnvNumeric("INGEST_MAX_RETRIES", 3)),
	})

	summary, err := importer.Ingest(ctx, source)
	if err != nil {
		return err
	}

	if markErr := jobStore.MarkCompleted(ctx, data.JobID, summary); markErr != nil {
		logger.Warn("[Queue] Failed to mark ingest job as completed", "job_id", data.JobID, "err", markErr)
	}

	logger.Info(
		"[Queue] Ingest job finished",
		"job_id", data.JobID,
		"source", source.Name(),
		"companies", summary.Companies,
		"persons", summary.Persons,
		"directorships", summary.Directorships,
		"ownerships", summary.Ownerships,
		"dropped", summary.Dropped,
	)
	return nil
}
