package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/loopcontext/posync"
)

// syncConfig holds flags for the sync command.
type syncConfig struct {
	projectFlags
	noMO   bool
	onlyMO bool
	lang   string
}

func parseSyncFlags(args []string) (*syncConfig, error) {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	var cfg syncConfig
	cfg.register(fs)
	fs.BoolVar(&cfg.noMO, "no-mo", false, "Skip the compile stage (extract and merge only).")
	fs.BoolVar(&cfg.onlyMO, "only-mo", false, "Compile stage only; skip extraction and merge.")
	fs.StringVar(&cfg.lang, "lang", "", "Restrict the run to a single language code.")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: posync sync [options]

Sync regenerates the template from source with xgettext, merges every catalog
against it with msgmerge, and compiles each catalog with msgfmt into
<locale-dir>/<lang>/LC_MESSAGES/<domain>.mo. Catalogs are processed one at a
time in sorted language order; the run stops at the first tool failure.

Flags:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runSync(cfg *syncConfig) error {
	// Validate the mode switches before any file I/O.
	rc, err := posync.ParseRunFlags(cfg.noMO, cfg.onlyMO, cfg.lang)
	if err != nil {
		return err
	}
	projectCfg, err := cfg.config()
	if err != nil {
		return err
	}
	orchestrator, err := posync.NewOrchestrator(projectCfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return orchestrator.Run(ctx, rc)
}
