package posync

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ConfigError reports contradictory or invalid run configuration, such as
// mutually exclusive mode switches or a project layout that cannot work.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// LanguageNotFoundError is returned when a language filter matches no
// discovered catalog. Available carries every language code found in the
// catalog directory so the operator can see what exists.
type LanguageNotFoundError struct {
	Requested    string
	Available    []string
	CatalogDir   string
	TemplateFile string
}

func (e *LanguageNotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no catalog for language %q in %s", e.Requested, e.CatalogDir)
	if len(e.Available) > 0 {
		codes := append([]string(nil), e.Available...)
		sort.Strings(codes)
		fmt.Fprintf(&b, " (available: %s)", strings.Join(codes, ", "))
	} else {
		b.WriteString(" (no catalogs found)")
	}
	fmt.Fprintf(&b, ".\nTo start translating a new language, copy the template to a catalog named after its ISO 639-1 code:\n\tcp %s %s",
		e.TemplateFile, filepath.Join(e.CatalogDir, e.Requested+catalogExt))
	return b.String()
}

// toolError is the shared shape of a failed external tool invocation: the tool
// that ran, the language being processed (empty for extraction), the combined
// output, and the underlying exec error.
type toolError struct {
	tool   string
	lang   string
	output string
	err    error
}

func (e *toolError) Unwrap() error {
	return e.err
}

// Lang returns the language code being processed when the tool failed, or ""
// for the extraction stage.
func (e *toolError) Lang() string {
	return e.lang
}

// Output returns the failing tool's combined stdout and stderr, verbatim.
func (e *toolError) Output() string {
	return e.output
}

func (e *toolError) describe(stage string) string {
	var b strings.Builder
	b.WriteString(stage)
	if e.lang != "" {
		fmt.Fprintf(&b, " [%s]", e.lang)
	}
	fmt.Fprintf(&b, ": %s: %v", e.tool, e.err)
	if out := strings.TrimSpace(e.output); out != "" {
		b.WriteString("\n")
		b.WriteString(out)
	}
	return b.String()
}

// ExtractionError wraps a failed xgettext run. Extraction is not retried:
// partial output could corrupt the template, so the operator re-runs after
// fixing the cause.
type ExtractionError struct {
	toolError
}

func (e *ExtractionError) Error() string {
	return e.describe("extract")
}

// MergeError wraps a failed msgmerge run for one catalog.
type MergeError struct {
	toolError
}

func (e *MergeError) Error() string {
	return e.describe("merge")
}

// CompileError wraps a failed msgfmt run (or output-directory creation) for
// one catalog.
type CompileError struct {
	toolError
}

func (e *CompileError) Error() string {
	return e.describe("compile")
}
