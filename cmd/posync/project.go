package main

import (
	"flag"
	"os"

	"github.com/loopcontext/posync"
)

const defaultConfigFile = "posync.yaml"

// projectFlags are the layout flags shared by every subcommand. CLI values
// override the config file, which overrides the library defaults.
type projectFlags struct {
	configPath string
	domain     string
	poDir      string
	template   string
	localeDir  string
}

func (p *projectFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.configPath, "config", "", "Project config YAML (default: posync.yaml if present).")
	fs.StringVar(&p.domain, "domain", "", "Override the gettext text domain.")
	fs.StringVar(&p.poDir, "po-dir", "", "Override the catalog directory.")
	fs.StringVar(&p.template, "template", "", "Override the template (.pot) path.")
	fs.StringVar(&p.localeDir, "locale-dir", "", "Override the compiled-catalog root.")
}

func (p *projectFlags) config() (posync.Config, error) {
	var cfg posync.Config
	var err error
	switch {
	case p.configPath != "":
		cfg, err = posync.LoadConfig(p.configPath)
	default:
		if _, statErr := os.Stat(defaultConfigFile); statErr == nil {
			cfg, err = posync.LoadConfig(defaultConfigFile)
		}
	}
	if err != nil {
		return cfg, err
	}
	if p.domain != "" {
		cfg.Domain = p.domain
	}
	if p.poDir != "" {
		cfg.CatalogDir = p.poDir
	}
	if p.template != "" {
		cfg.TemplateFile = p.template
	}
	if p.localeDir != "" {
		cfg.LocaleDir = p.localeDir
	}
	return cfg, nil
}
