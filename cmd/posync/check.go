package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/loopcontext/posync"
	"github.com/loopcontext/posync/internal/plural"
	"github.com/loopcontext/posync/internal/po"
)

// checkConfig holds flags for the check command.
type checkConfig struct {
	projectFlags
	lang string
}

func parseCheckFlags(args []string) (*checkConfig, error) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var cfg checkConfig
	cfg.register(fs)
	fs.StringVar(&cfg.lang, "lang", "", "Restrict the check to a single language code.")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: posync check [options]

Check parses the template and every catalog and reports, per language:
  - catalog entries whose msgid no longer exists in the template
  - for required languages (config: required_langs), template keys that are
    missing or untranslated
  - a Plural-Forms header whose nplurals disagrees with the expected plural
    form count for that language

Exits nonzero if any issue is found.

Flags:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runCheck(cfg *checkConfig, out io.Writer) error {
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
	templateKeys := map[string]struct{}{}
	for _, key := range template.Keys() {
		templateKeys[key] = struct{}{}
	}

	catalogs, err := orchestrator.Catalogs(posync.RunConfig{Lang: cfg.lang})
	if err != nil {
		return err
	}

	// Catalog languages come back normalized, so required_langs entries must
	// be normalized the same way before lookup.
	required := map[string]struct{}{}
	for _, lang := range resolved.RequiredLangs {
		lang = strings.ReplaceAll(strings.ToLower(lang), "_", "-")
		required[lang] = struct{}{}
	}

	issuesByLang := map[string][]string{}
	addIssue := func(lang string, format string, args ...interface{}) {
		issuesByLang[lang] = append(issuesByLang[lang], fmt.Sprintf(format, args...))
	}

	for _, catalog := range catalogs {
		parsed, err := po.ParseFile(catalog.Path)
		if err != nil {
			addIssue(catalog.Lang, "parse error: %v", err)
			continue
		}

		for _, key := range parsed.Keys() {
			if _, known := templateKeys[key]; !known {
				addIssue(catalog.Lang, "entry %q does not exist in the template", key)
			}
		}

		if _, mustBeComplete := required[catalog.Lang]; mustBeComplete {
			translated := parsed.Translated()
			for _, key := range template.Keys() {
				if _, ok := translated[key]; !ok {
					addIssue(catalog.Lang, "required language is missing a translation for %q", key)
				}
			}
		}

		if declared, ok := parsed.NPlurals(); ok {
			if expected, known := plural.NPlurals(catalog.Lang); known && declared != expected {
				addIssue(catalog.Lang, "Plural-Forms declares nplurals=%d, expected %d", declared, expected)
			}
		}
	}

	if len(issuesByLang) == 0 {
		fmt.Fprintf(out, "posync: %d catalog(s) checked, no issues\n", len(catalogs))
		return nil
	}

	langs := make([]string, 0, len(issuesByLang))
	total := 0
	for lang, issues := range issuesByLang {
		langs = append(langs, lang)
		total += len(issues)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		fmt.Fprintf(out, "%s:\n", lang)
		for _, issue := range issuesByLang[lang] {
			fmt.Fprintf(out, "  %s\n", issue)
		}
	}
	return fmt.Errorf("check found %d issue(s) in %d language(s)", total, len(langs))
}
