package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/loopcontext/posync"
	"github.com/loopcontext/posync/internal/po"
)

// statsConfig holds flags for the stats command.
type statsConfig struct {
	projectFlags
	lang string
}

func parseStatsFlags(args []string) (*statsConfig, error) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	var cfg statsConfig
	cfg.register(fs)
	fs.StringVar(&cfg.lang, "lang", "", "Restrict the report to a single language code.")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: posync stats [options]

Stats reports translation completeness per language: how many of the
template's keys each catalog translates.

Flags:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runStats(cfg *statsConfig, out io.Writer) error {
	projectCfg, err := cfg.config()
	if err != nil {
		return err
	}
	orchestrator, err := posync.NewOrchestrator(projectCfg)
	if err != nil {
		return err
	}
	resolved := orchestrator.Config()

	template, err := po.ParseFile(resolved.TemplateFile)
	if err != nil {
		return fmt.Errorf("template: %w", err)
	}
	templateKeys := template.Keys()
	if len(templateKeys) == 0 {
		return fmt.Errorf("template %s has no entries; run 'posync sync' first", resolved.TemplateFile)
	}

	catalogs, err := orchestrator.Catalogs(posync.RunConfig{Lang: cfg.lang})
	if err != nil {
		return err
	}

	for _, catalog := range catalogs {
		parsed, err := po.ParseFile(catalog.Path)
		if err != nil {
			return err
		}
		translated := parsed.Translated()
		count := 0
		for _, key := range templateKeys {
			if _, ok := translated[key]; ok {
				count++
			}
		}
		fmt.Fprintf(out, "%-8s %4d/%d (%3.0f%%)\n",
			catalog.Lang, count, len(templateKeys), 100*float64(count)/float64(len(templateKeys)))
	}
	return nil
}
