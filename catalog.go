package posync

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

const (
	catalogExt  = ".po"
	templateExt = ".pot"
)

// normalizeLangTag lowercases a language code and converts underscores to
// hyphens, so pt_BR.po and pt-br.po name the same catalog.
func normalizeLangTag(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))
	lang = strings.ReplaceAll(lang, "_", "-")
	return lang
}

// isLangTag reports whether code parses as a BCP 47 language tag.
func isLangTag(code string) bool {
	_, err := language.Parse(code)
	return err == nil
}

// DiscoverCatalogs scans dir for <lang>.po files. Files whose stem is not a
// parseable language tag are not catalogs (e.g. messages.po) and are skipped,
// as are duplicates that normalize to an already-seen tag. Results are sorted
// by language code so runs are deterministic.
func DiscoverCatalogs(dir string) ([]Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	var catalogs []Catalog
	seen := map[string]struct{}{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, catalogExt) {
			continue
		}
		lang := normalizeLangTag(strings.TrimSuffix(name, catalogExt))
		if lang == "" || !isLangTag(lang) {
			continue
		}
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}
		catalogs = append(catalogs, Catalog{Lang: lang, Path: filepath.Join(dir, name)})
	}
	sort.Slice(catalogs, func(i, j int) bool { return catalogs[i].Lang < catalogs[j].Lang })

	return catalogs, nil
}

// CompiledPath returns the deterministic msgfmt output path for the catalog:
// <localeDir>/<lang>/LC_MESSAGES/<domain>.mo.
func (c Catalog) CompiledPath(localeDir string, domain string) string {
	return filepath.Join(localeDir, c.Lang, "LC_MESSAGES", domain+".mo")
}
