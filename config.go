package posync

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// LoadConfig reads a project configuration from a YAML file. Missing fields
// keep their zero values and are defaulted by NewOrchestrator.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseRunFlags builds the immutable RunConfig from the mode switches. noMO
// skips compilation, onlyMO skips extraction and merge; both at once is a
// ConfigError. It performs no file I/O.
func ParseRunFlags(noMO bool, onlyMO bool, lang string) (RunConfig, error) {
	if noMO && onlyMO {
		return RunConfig{}, &ConfigError{Reason: "no-mo and only-mo are mutually exclusive"}
	}
	rc := RunConfig{Mode: ModeFull, Lang: normalizeLangTag(lang)}
	switch {
	case noMO:
		rc.Mode = ModeExtractMerge
	case onlyMO:
		rc.Mode = ModeCompileOnly
	}
	return rc, nil
}

// applyDefaults fills zero-valued Config fields with the project conventions.
func applyDefaults(cfg Config) Config {
	if cfg.Domain == "" {
		cfg.Domain = "messages"
	}
	if cfg.CatalogDir == "" {
		cfg.CatalogDir = "po"
	}
	if cfg.TemplateFile == "" {
		cfg.TemplateFile = filepath.Join(cfg.CatalogDir, cfg.Domain+templateExt)
	}
	if cfg.LocaleDir == "" {
		cfg.LocaleDir = filepath.Join("share", "locale")
	}
	if len(cfg.SourceDirs) == 0 {
		cfg.SourceDirs = []string{"."}
	}
	if len(cfg.SourceExts) == 0 {
		cfg.SourceExts = []string{".go"}
	}
	if len(cfg.ExcludeDirs) == 0 {
		cfg.ExcludeDirs = []string{"vendor", ".git"}
	}
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = []string{"_", "N_"}
	}
	if cfg.XGettext == "" {
		cfg.XGettext = "xgettext"
	}
	if cfg.MsgMerge == "" {
		cfg.MsgMerge = "msgmerge"
	}
	if cfg.MsgFmt == "" {
		cfg.MsgFmt = "msgfmt"
	}
	if cfg.Runner == nil {
		cfg.Runner = NewExecToolRunner()
	}
	if cfg.Progress == nil {
		cfg.Progress = os.Stderr
	}
	return cfg
}

func validateConfig(cfg Config) error {
	if strings.ContainsAny(cfg.Domain, `/\`) {
		return &ConfigError{Reason: fmt.Sprintf("domain %q must not contain path separators", cfg.Domain)}
	}
	for _, lang := range cfg.RequiredLangs {
		if !isLangTag(normalizeLangTag(lang)) {
			return &ConfigError{Reason: fmt.Sprintf("required language %q is not a valid language tag", lang)}
		}
	}
	return nil
}
