package posync

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Orchestrator runs the catalog synchronization pipeline: regenerate the
// template from source, merge every catalog against it, and compile each
// catalog to its binary form. Stages run strictly in sequence and any external
// tool failure stops the run before later stages execute.
type Orchestrator struct {
	cfg Config
}

// NewOrchestrator validates cfg and fills in defaults. The returned
// Orchestrator holds the configuration immutably; stage methods never read
// ambient state.
func NewOrchestrator(cfg Config) (*Orchestrator, error) {
	cfg = applyDefaults(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &Orchestrator{cfg: cfg}, nil
}

// Config returns a copy of the resolved configuration.
func (o *Orchestrator) Config() Config {
	return o.cfg
}

// Run executes the stages selected by rc. The full pipeline is extraction,
// then merge for every catalog, then compilation for every catalog, each
// catalog touched exactly once per stage in sorted language order.
func (o *Orchestrator) Run(ctx context.Context, rc RunConfig) error {
	catalogs, err := o.Catalogs(rc)
	if err != nil {
		return err
	}

	if rc.Mode != ModeCompileOnly {
		if _, err := o.Extract(ctx); err != nil {
			return err
		}
		for _, catalog := range catalogs {
			if err := o.Merge(ctx, catalog); err != nil {
				return err
			}
		}
	}

	if rc.Mode != ModeExtractMerge {
		for _, catalog := range catalogs {
			if _, err := o.Compile(ctx, catalog); err != nil {
				return err
			}
		}
	}

	return nil
}

// Catalogs discovers the catalog set and applies the optional language
// filter. A filter that matches nothing fails with LanguageNotFoundError
// listing every discovered code.
func (o *Orchestrator) Catalogs(rc RunConfig) ([]Catalog, error) {
	catalogs, err := DiscoverCatalogs(o.cfg.CatalogDir)
	if err != nil {
		return nil, err
	}
	if rc.Lang == "" {
		return catalogs, nil
	}

	want := normalizeLangTag(rc.Lang)
	for _, catalog := range catalogs {
		if catalog.Lang == want {
			return []Catalog{catalog}, nil
		}
	}

	available := make([]string, 0, len(catalogs))
	for _, catalog := range catalogs {
		available = append(available, catalog.Lang)
	}
	return nil, &LanguageNotFoundError{
		Requested:    want,
		Available:    available,
		CatalogDir:   o.cfg.CatalogDir,
		TemplateFile: o.cfg.TemplateFile,
	}
}

// Extract runs xgettext over the configured source roots and overwrites the
// template. A nonzero exit is fatal; extraction is never retried because
// partial output could corrupt the template.
func (o *Orchestrator) Extract(ctx context.Context) (string, error) {
	files, err := o.sourceFiles()
	if err != nil {
		return "", fmt.Errorf("failed to collect source files: %w", err)
	}
	if len(files) == 0 {
		return "", &ConfigError{Reason: fmt.Sprintf("no source files with extensions %s under %s",
			strings.Join(o.cfg.SourceExts, ","), strings.Join(o.cfg.SourceDirs, ","))}
	}

	args := []string{
		"--from-code=UTF-8",
		"--no-wrap",
		"--sort-by-file",
		"--package-name=" + o.cfg.Domain,
		"--output=" + o.cfg.TemplateFile,
	}
	for _, keyword := range o.cfg.Keywords {
		args = append(args, "--keyword="+keyword)
	}
	args = append(args, files...)

	out, err := o.cfg.Runner.Run(ctx, o.cfg.XGettext, args...)
	if err != nil {
		return "", &ExtractionError{toolError{tool: o.cfg.XGettext, output: string(out), err: err}}
	}
	fmt.Fprintf(o.cfg.Progress, "posync: wrote %s\n", o.cfg.TemplateFile)
	return o.cfg.TemplateFile, nil
}

// Merge reconciles one catalog against the current template with msgmerge,
// mutating the catalog in place. Fuzzy matching and line wrapping are off and
// no backup is written; version control is the safety net, not local backups.
func (o *Orchestrator) Merge(ctx context.Context, catalog Catalog) error {
	args := []string{
		"--update",
		"--no-fuzzy-matching",
		"--no-wrap",
		"--backup=none",
		catalog.Path,
		o.cfg.TemplateFile,
	}
	out, err := o.cfg.Runner.Run(ctx, o.cfg.MsgMerge, args...)
	if err != nil {
		return &MergeError{toolError{tool: o.cfg.MsgMerge, lang: catalog.Lang, output: string(out), err: err}}
	}
	fmt.Fprintf(o.cfg.Progress, "posync: merged %s\n", catalog.Path)
	return nil
}

// Compile produces the binary catalog for one language under the deterministic
// LC_MESSAGES path, creating parent directories as needed. msgfmt runs in
// strict format-checking mode; a malformed catalog is a fatal CompileError.
func (o *Orchestrator) Compile(ctx context.Context, catalog Catalog) (CompiledCatalog, error) {
	moPath := catalog.CompiledPath(o.cfg.LocaleDir, o.cfg.Domain)
	if err := os.MkdirAll(filepath.Dir(moPath), 0o755); err != nil {
		return CompiledCatalog{}, &CompileError{toolError{tool: o.cfg.MsgFmt, lang: catalog.Lang, err: err}}
	}

	out, err := o.cfg.Runner.Run(ctx, o.cfg.MsgFmt, "--check", "--output-file="+moPath, catalog.Path)
	if err != nil {
		return CompiledCatalog{}, &CompileError{toolError{tool: o.cfg.MsgFmt, lang: catalog.Lang, output: string(out), err: err}}
	}
	fmt.Fprintf(o.cfg.Progress, "posync: wrote %s\n", moPath)
	return CompiledCatalog{Lang: catalog.Lang, Path: moPath}, nil
}

// sourceFiles walks the source roots collecting files whose extension matches
// SourceExts, skipping ExcludeDirs. The list is sorted so the template's
// location comments come out in a stable order.
func (o *Orchestrator) sourceFiles() ([]string, error) {
	extSet := make(map[string]struct{}, len(o.cfg.SourceExts))
	for _, ext := range o.cfg.SourceExts {
		extSet[ext] = struct{}{}
	}
	excludeSet := make(map[string]struct{}, len(o.cfg.ExcludeDirs))
	for _, dir := range o.cfg.ExcludeDirs {
		excludeSet[dir] = struct{}{}
	}

	var files []string
	for _, root := range o.cfg.SourceDirs {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if _, skip := excludeSet[d.Name()]; skip && path != root {
					return filepath.SkipDir
				}
				return nil
			}
			if _, ok := extSet[filepath.Ext(path)]; ok {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}
