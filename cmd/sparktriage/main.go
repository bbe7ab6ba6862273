package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crimson-sun/sparktriage/internal/config"
	"github.com/crimson-sun/sparktriage/internal/connector/databricks"
	"github.com/crimson-sun/sparktriage/internal/connector/s3logs"
	"github.com/crimson-sun/sparktriage/internal/engine"
	"github.com/crimson-sun/sparktriage/internal/engine/catalog"
	"github.com/crimson-sun/sparktriage/internal/logging"
	"github.com/crimson-sun/sparktriage/internal/report"
	reportfile "github.com/crimson-sun/sparktriage/internal/report/file"
	"github.com/crimson-sun/sparktriage/internal/report/stdout"
	"github.com/crimson-sun/sparktriage/internal/triage"
)

func main() {
	var (
		failedRuns    = flag.Bool("failed-runs", false, "list failed job runs and exit")
		jobPattern    = flag.String("job", "", "job name pattern (regex, case-insensitive)")
		hoursBack     = flag.Int("hours", 24, "look-back window in hours for -failed-runs")
		clusterID     = flag.String("cluster", "", "cluster ID to analyze")
		searchTerm    = flag.String("search", "", "literal term to boost in log scoring")
		iterative     = flag.Bool("iterative", false, "use the iterative budgeted search")
		maxIterations = flag.Int("max-iterations", engine.DefaultMaxIterations, "maximum iterative rounds")
		configCheck   = flag.Bool("config-check", false, "validate configuration and exit")
	)
	flag.Parse()

	cfg := config.Load()
	logging.Init(cfg.Output.Destination == "stdout", logging.ParseLevel(cfg.LogLevel))

	if *configCheck {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "sparktriage: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("configuration ok")
		return
	}

	if !*failedRuns && *clusterID == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runs := databricks.New(cfg.Databricks.Host, cfg.Databricks.Token)

	if *failedRuns {
		if err := listFailedRuns(ctx, runs, *jobPattern, *hoursBack); err != nil {
			fatal(err)
		}
		return
	}

	cat, err := loadCatalog(cfg.Engine.CatalogPath)
	if err != nil {
		fatal(err)
	}
	analyzer := engine.New(cat, cfg.Engine.ChunkSize, cfg.Engine.MaxTokenLimit)

	store, err := s3logs.NewFromConfig(ctx, cfg.Storage.Region, cfg.Storage.Bucket,
		cfg.Storage.Prefix, cfg.Storage.MaxFileMB)
	if err != nil {
		fatal(err)
	}

	tr := triage.New(runs, store, analyzer, cfg.Storage.MaxFiles)

	writer, err := newWriter(cfg.Output)
	if err != nil {
		fatal(err)
	}
	defer writer.Close()

	opts := engine.Options{
		SearchTerm:    *searchTerm,
		Iterative:     *iterative,
		MaxIterations: *maxIterations,
	}

	slog.Info("analyzing cluster logs", "cluster_id", *clusterID, "iterative", *iterative)
	rep, err := tr.AnalyzeCluster(ctx, *clusterID, opts)
	if err != nil {
		fatal(err)
	}
	if err := writer.Write(ctx, rep); err != nil {
		fatal(err)
	}
}

func listFailedRuns(ctx context.Context, runs *databricks.Source, pattern string, hours int) error {
	failed, err := runs.FailedRuns(ctx, pattern, time.Duration(hours)*time.Hour)
	if err != nil {
		return err
	}
	if len(failed) == 0 {
		fmt.Println("no failed job runs found")
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(failed)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

func newWriter(cfg config.OutputConfig) (report.Writer, error) {
	switch cfg.Destination {
	case "file":
		return reportfile.New(cfg.Path, cfg.Format, cfg.Pretty)
	case "stdout", "":
		return stdout.New(cfg.Format, cfg.Pretty), nil
	default:
		return nil, fmt.Errorf("unknown output destination %q", cfg.Destination)
	}
}

func fatal(err error) {
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "sparktriage: interrupted")
		os.Exit(130)
	}
	fmt.Fprintf(os.Stderr, "sparktriage: %v\n", err)
	os.Exit(1)
}
