package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/corporate-radar/backend/internal/storage"
	"github.com/corporate-radar/backend/internal/util"
	"github.com/corporate-radar/backend/pkg/ftm"
	"github.com/corporate-radar/backend/pkg/logger"
	"github.com/corporate-radar/backend/pkg/logger/console"
	"github.com/corporate-radar/backend/pkg/store/neo4j"
)

// One-shot import of an entity export without going through the job queue.
func main() {
	util.LoadEnv()

	source := flag.String("source", "entities.ftm.json", "export file path or s3://bucket/key")
	uri := flag.String("uri", util.GetEnvString("NEO4J_URI", "bolt://localhost:7687"), "bolt URI")
	user := flag.String("user", util.GetEnvString("NEO4J_USER", "neo4j"), "database user")
	password := flag.String("password", util.GetEnv("NEO4J_PASSWORD"), "database password")
	database := flag.String("database", util.GetEnv("NEO4J_DATABASE"), "database name (empty for server default)")
	batchSize := flag.Int("batch-size", ftm.DefaultBatchSize, "rows per bulk upsert")
	maxRetries := flag.Int("max-retries", 3, "flush attempts per batch")
	debug := flag.Bool("debug", util.GetEnvBool("DEBUG", false), "enable debug logging")
	flag.Parse()

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: *debug,
	})
	logger.Init(consoleLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := neo4j.NewStore(ctx, neo4j.NewStoreParams{
		URI:      *uri,
		User:     *user,
		Password: *password,
		Database: *database,
	})
	if err != nil {
		logger.Fatal("Unable to connect to graph store", "err", err)
	}
	defer store.Close(ctx)

	src, err := storage.NewSource(ctx, *source)
	if err != nil {
		logger.Fatal("Invalid source", "source", *source, "err", err)
	}

	importer := ftm.NewImporter(ftm.NewImporterParams{
		Store:      store,
		BatchSize:  *batchSize,
		MaxRetries: *maxRetries,
	})

	summary, err := importer.Ingest(ctx, src)
	if err != nil {
		logger.Fatal("Import failed", "source", src.Name(), "err", err)
	}

	logger.Info(
		"Import finished",
		"source", src.Name(),
		"companies", summary.Companies,
		"persons", summary.Persons,
		"directorships", summary.Directorships,
		"ownerships", summary.Ownerships,
		"dropped", summary.Dropped,
		"elapsed_ms", summary.ElapsedMs,
	)
}
