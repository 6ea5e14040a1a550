package posync

import "io"

// Mode selects which pipeline stages run. Exactly one mode is active per run;
// ParseRunFlags is the only way to build a RunConfig from CLI switches, so a
// contradictory combination cannot exist past configuration.
type Mode int

const (
	// ModeFull runs extraction, merge, and compilation.
	ModeFull Mode = iota
	// ModeExtractMerge regenerates the template and merges every catalog, skipping compilation.
	ModeExtractMerge
	// ModeCompileOnly compiles existing catalogs without touching the template.
	ModeCompileOnly
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeExtractMerge:
		return "extract+merge"
	case ModeCompileOnly:
		return "compile-only"
	default:
		return "unknown"
	}
}

// RunConfig is resolved once from CLI flags and held immutable for the run.
type RunConfig struct {
	Mode Mode
	Lang string // optional single-language filter, normalized tag; empty means all catalogs
}

// Catalog is one per-language PO file. Lang is the normalized language tag
// derived from the file stem (e.g. "pt-br" for pt_BR.po).
type Catalog struct {
	Lang string
	Path string
}

// CompiledCatalog is the msgfmt output for one catalog. It is fully regenerable
// and safe to delete.
type CompiledCatalog struct {
	Lang string
	Path string
}

// Config describes the project layout and the external tools. Zero values are
// filled in by NewOrchestrator; the whole struct can be loaded from a YAML file
// with LoadConfig.
type Config struct {
	// Domain is the gettext text domain; it names the template and the .mo files.
	Domain string `yaml:"domain"`
	// TemplateFile is the .pot file regenerated by extraction.
	TemplateFile string `yaml:"template"`
	// CatalogDir holds the per-language <lang>.po files.
	CatalogDir string `yaml:"po_dir"`
	// LocaleDir is the root for compiled catalogs
	// (<locale_dir>/<lang>/LC_MESSAGES/<domain>.mo).
	LocaleDir string `yaml:"locale_dir"`
	// SourceDirs are the roots scanned for translatable source files.
	SourceDirs []string `yaml:"sources"`
	// SourceExts select which files under SourceDirs are handed to xgettext.
	SourceExts []string `yaml:"source_exts"`
	// ExcludeDirs are directory names skipped while scanning sources.
	ExcludeDirs []string `yaml:"exclude"`
	// Keywords are the xgettext --keyword values marking translatable strings.
	Keywords []string `yaml:"keywords"`
	// RequiredLangs must have a translation for every template key in `posync check`.
	RequiredLangs []string `yaml:"required_langs"`

	// Tool overrides; defaults are the binaries on PATH.
	XGettext string `yaml:"xgettext"`
	MsgMerge string `yaml:"msgmerge"`
	MsgFmt   string `yaml:"msgfmt"`

	// Runner invokes the external tools. Defaults to the os/exec runner.
	Runner ToolRunner `yaml:"-"`
	// Progress receives per-step progress lines. Defaults to os.Stderr.
	Progress io.Writer `yaml:"-"`
}
