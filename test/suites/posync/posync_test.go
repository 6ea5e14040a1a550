package posync_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/loopcontext/posync"
	"github.com/loopcontext/posync/test"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Catalog sync pipeline", func() {
	var (
		dir          string
		runner       *test.FakeToolRunner
		orchestrator *posync.Orchestrator
	)

	write := func(rel string, content string) {
		path := filepath.Join(dir, rel)
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	}

	run := func(noMO bool, onlyMO bool, lang string) error {
		rc, err := posync.ParseRunFlags(noMO, onlyMO, lang)
		Expect(err).NotTo(HaveOccurred())
		return orchestrator.Run(context.Background(), rc)
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "posync-suite-*")
		Expect(err).NotTo(HaveOccurred())

		runner = &test.FakeToolRunner{}

		write("po/de.po", "msgid \"Hello\"\nmsgstr \"Hallo\"\n")
		write("po/fr.po", "msgid \"Hello\"\nmsgstr \"Bonjour\"\n")
		write("po/demo.pot", "msgid \"Hello\"\nmsgstr \"\"\n")
		write("src/app.go", "package app\n")

		orchestrator, err = posync.NewOrchestrator(posync.Config{
			Domain:       "demo",
			CatalogDir:   filepath.Join(dir, "po"),
			TemplateFile: filepath.Join(dir, "po", "demo.pot"),
			LocaleDir:    filepath.Join(dir, "locale"),
			SourceDirs:   []string{filepath.Join(dir, "src")},
			Runner:       runner,
			Progress:     io.Discard,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("should run extract, then merge, then compile for every catalog", func() {
		Expect(run(false, false, "")).To(Succeed())
		Expect(runner.Tools()).To(Equal([]string{
			"xgettext", "msgmerge", "msgmerge", "msgfmt", "msgfmt",
		}))
	})

	It("should process catalogs in sorted language order", func() {
		Expect(run(false, false, "")).To(Succeed())
		calls := runner.Calls()
		Expect(calls[1]).To(ContainSubstring("de.po"))
		Expect(calls[2]).To(ContainSubstring("fr.po"))
	})

	It("should skip compilation when no-mo is set", func() {
		Expect(run(true, false, "")).To(Succeed())
		Expect(runner.Tools()).To(Equal([]string{"xgettext", "msgmerge", "msgmerge"}))
	})

	It("should only compile when only-mo is set", func() {
		Expect(run(false, true, "")).To(Succeed())
		Expect(runner.Tools()).To(Equal([]string{"msgfmt", "msgfmt"}))
	})

	It("should restrict the run to a single language", func() {
		Expect(run(false, false, "fr")).To(Succeed())
		Expect(runner.Tools()).To(Equal([]string{"xgettext", "msgmerge", "msgfmt"}))
		Expect(runner.Calls()[1]).To(ContainSubstring("fr.po"))
	})

	It("should reject contradictory mode switches without touching files", func() {
		_, err := posync.ParseRunFlags(true, true, "")
		var cfgErr *posync.ConfigError
		Expect(errors.As(err, &cfgErr)).To(BeTrue())
		Expect(runner.Calls()).To(BeEmpty())
	})

	It("should list every discovered code when the language is unknown", func() {
		err := run(false, false, "xx")
		var notFound *posync.LanguageNotFoundError
		Expect(errors.As(err, &notFound)).To(BeTrue())
		Expect(notFound.Available).To(ConsistOf("de", "fr"))
		Expect(err.Error()).To(ContainSubstring("de"))
		Expect(err.Error()).To(ContainSubstring("fr"))
		Expect(runner.Calls()).To(BeEmpty())
	})

	It("should stop before later languages when a compile fails", func() {
		runner.Fail = map[string]error{"msgfmt": errors.New("exit status 1")}
		runner.Output = map[string][]byte{"msgfmt": []byte("de.po:1: format error")}

		err := run(false, true, "")
		var compileErr *posync.CompileError
		Expect(errors.As(err, &compileErr)).To(BeTrue())
		Expect(compileErr.Lang()).To(Equal("de"))
		Expect(compileErr.Output()).To(ContainSubstring("format error"))

		msgfmtCalls := 0
		for _, tool := range runner.Tools() {
			if tool == "msgfmt" {
				msgfmtCalls++
			}
		}
		Expect(msgfmtCalls).To(Equal(1))
	})

	It("should pass the merge safety flags to msgmerge", func() {
		Expect(run(true, false, "de")).To(Succeed())
		Expect(runner.Calls()[1]).To(ContainSubstring("--no-fuzzy-matching"))
		Expect(runner.Calls()[1]).To(ContainSubstring("--no-wrap"))
		Expect(runner.Calls()[1]).To(ContainSubstring("--backup=none"))
	})

	It("should compile to the deterministic LC_MESSAGES path", func() {
		Expect(run(false, true, "de")).To(Succeed())
		want := filepath.Join(dir, "locale", "de", "LC_MESSAGES", "demo.mo")
		Expect(runner.Calls()[0]).To(ContainSubstring("--output-file=" + want))
	})
})
