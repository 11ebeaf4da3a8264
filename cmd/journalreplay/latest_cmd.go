package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/persist"
)

func runLatestCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("latest", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var (
		configPath string
		withBody   bool
	)
	cmd.StringVar(&configPath, "config", "", "YAML config file (default: environment only)")
	cmd.BoolVar(&withBody, "body", false, "Include the canonical snapshot body")

	if err := cmd.Parse(args); err != nil {
		return 2
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	ctx := context.Background()
	store, err := persist.New(ctx, cfg.Storage)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: storage: %v\n", err)
		return 2
	}
	defer func() { _ = store.Close() }()

	rec, err := store.Latest(ctx)
	if errors.Is(err, persist.ErrNotFound) {
		_, _ = fmt.Fprintln(stderr, "No snapshot stored")
		return 1
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if !withBody {
		rec.Body = nil
	}
	data, _ := json.MarshalIndent(rec, "", "  ")
	_, _ = fmt.Fprintln(stdout, string(data))
	return 0
}
