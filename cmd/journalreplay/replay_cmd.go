package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/dispatch"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/merge"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/observability"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/persist"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/ledger"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/session"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/sidefile"
)

type replaySummary struct {
	Records        int    `json:"records"`
	Events         int    `json:"events"`
	Residuals      int    `json:"residuals"`
	DecodeErrors   int    `json:"decode_errors"`
	SideFileErrors int    `json:"side_file_errors"`
	OutOfOrder     int    `json:"out_of_order"`
	Balance        int64  `json:"balance"`
	SnapshotID     string `json:"snapshot_id"`
	Hash           string `json:"hash"`
	Persisted      bool   `json:"persisted"`
}

func runReplayCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("replay", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var (
		dir        string
		configPath string
		pattern    string
		jsonOutput bool
		noSide     bool
	)
	cmd.StringVar(&dir, "dir", "", "Journal directory (REQUIRED)")
	cmd.StringVar(&configPath, "config", "", "YAML config file (default: environment only)")
	cmd.StringVar(&pattern, "pattern", "Journal.*.log", "Journal file glob within -dir")
	cmd.BoolVar(&jsonOutput, "json", false, "Output summary as JSON")
	cmd.BoolVar(&noSide, "no-side-files", false, "Skip side-file reconciliation")

	if err := cmd.Parse(args); err != nil {
		return 2
	}
	if dir == "" {
		_, _ = fmt.Fprintln(stderr, "Error: --dir is required")
		return 2
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	logger := newLogger(stderr, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otelCfg := observability.DefaultConfig()
	otelCfg.Enabled = cfg.Telemetry.Enabled
	if cfg.Telemetry.Endpoint != "" {
		otelCfg.OTLPEndpoint = cfg.Telemetry.Endpoint
	}
	if cfg.Telemetry.SampleRate > 0 {
		otelCfg.SampleRate = cfg.Telemetry.SampleRate
	}
	provider, err := observability.New(ctx, otelCfg)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: telemetry: %v\n", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = provider.Shutdown(shutdownCtx)
	}()
	metrics := observability.DefaultMetrics()

	store, err := persist.New(ctx, cfg.Storage)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: storage: %v\n", err)
		return 2
	}
	defer func() { _ = store.Close() }()

	mergeOpts, err := cfg.MergeOptions()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: merge rules: %v\n", err)
		return 2
	}
	dispatchOpts := []dispatch.Option{
		dispatch.WithLogger(logger),
		dispatch.WithTracer(observability.Tracer()),
		dispatch.WithMetrics(metrics),
		dispatch.WithMaxEvents(cfg.MaxEvents),
	}
	if store.Len() > 0 {
		dispatchOpts = append(dispatchOpts, dispatch.WithPersister(store))
	}
	d, err := dispatch.New(dispatchOpts...)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	sessionOpts := []session.Option{
		session.WithLogger(logger),
		session.WithWorkers(cfg.DecodeWorkers),
		session.WithMerger(merge.New(append(mergeOpts, merge.WithLogger(logger))...)),
		session.WithDispatcher(d),
		session.WithMetrics(metrics),
	}
	if !noSide {
		sessionOpts = append(sessionOpts, session.WithSideFiles(sidefile.DirSource{Dir: dir}))
	}
	p, err := session.New(sessionOpts...)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	records, err := readJournals(dir, pattern)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	res, err := p.Run(ctx, records)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Replay failed: %v\n", err)
		var fault *dispatch.ReplayFault
		if errors.As(err, &fault) {
			_, _ = fmt.Fprintf(stderr, "  %s\n", fault.Recommendation())
		}
		return 1
	}

	summary := replaySummary{
		Records:        res.Records,
		Events:         len(res.Events),
		Residuals:      res.Residuals,
		DecodeErrors:   len(res.DecodeErrors),
		SideFileErrors: len(res.SideFileErrors),
		OutOfOrder:     len(res.OutOfOrder),
		SnapshotID:     res.Snapshot.ID.String(),
		Hash:           res.Snapshot.Hash,
		Persisted:      store.Len() > 0 && d.PersistErr() == nil,
	}
	if led, ok := dispatch.ViewAs[ledger.Snapshot](res.Snapshot, ledger.Name); ok {
		summary.Balance = led.Balance
	}

	if jsonOutput {
		data, _ := json.MarshalIndent(summary, "", "  ")
		_, _ = fmt.Fprintln(stdout, string(data))
		return 0
	}
	_, _ = fmt.Fprintf(stdout, "Replayed %d records into %d events (%d residual)\n", summary.Records, summary.Events, summary.Residuals)
	_, _ = fmt.Fprintf(stdout, "  Balance:   %d cr\n", summary.Balance)
	_, _ = fmt.Fprintf(stdout, "  Snapshot:  %s\n", summary.SnapshotID)
	_, _ = fmt.Fprintf(stdout, "  Hash:      %s\n", summary.Hash)
	if summary.SideFileErrors > 0 || summary.OutOfOrder > 0 {
		_, _ = fmt.Fprintf(stdout, "  Warnings:  %d side file, %d out of order\n", summary.SideFileErrors, summary.OutOfOrder)
	}
	return 0
}

// readJournals reads every journal file in dir in name order. Journal
// names embed their start time, so name order is chronological.
func readJournals(dir, pattern string) ([][]byte, error) {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no journal files matching %s in %s", pattern, dir)
	}
	slices.Sort(files)

	var records [][]byte
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		recs, err := session.ReadRecords(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(name), err)
		}
		records = append(records, recs...)
	}
	return records, nil
}
