// Package po parses the subset of the gettext PO format used by this project's
// catalogs: msgid/msgstr pairs built from C-style string literals, with
// comment lines and the msgid "" header entry. msgctxt, msgid_plural, and
// indexed msgstr entries are rejected as unsupported syntax.
package po

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// File is a parsed catalog. Entries maps msgid to msgstr and includes
// untranslated entries (empty msgstr) as well as the header entry under the
// empty msgid.
type File struct {
	Entries map[string]string
}

// Parse reads a PO file. It fails on the first malformed line, reporting the
// line number, and on duplicate msgids.
func Parse(r io.Reader) (*File, error) {
	p := &parser{entries: map[string]string{}}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := p.addLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line: %w", err)
	}
	return p.finish()
}

// ParseFile opens and parses path.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	parsed, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return parsed, nil
}

// Keys returns every msgid except the header, sorted.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.Entries))
	for key := range f.Entries {
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Translated returns msgid to msgstr with untranslated entries and the header
// removed.
func (f *File) Translated() map[string]string {
	translated := make(map[string]string, len(f.Entries))
	for key, value := range f.Entries {
		if key == "" || value == "" {
			continue
		}
		translated[key] = value
	}
	return translated
}

// Header returns the fields of the msgid "" header entry, one "Name: value"
// pair per line.
func (f *File) Header() map[string]string {
	header := map[string]string{}
	for _, line := range strings.Split(f.Entries[""], "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		header[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return header
}

// NPlurals parses the nplurals count out of the Plural-Forms header
// (e.g. "nplurals=2; plural=(n != 1);"). ok is false when the header is
// absent or malformed.
func (f *File) NPlurals() (int, bool) {
	forms, found := f.Header()["Plural-Forms"]
	if !found {
		return 0, false
	}
	for _, part := range strings.Split(forms, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || strings.TrimSpace(name) != "nplurals" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

type entryState int

const (
	// stateWaiting is the clean state between entries.
	stateWaiting entryState = iota
	stateMsgid
	stateMsgstr
)

type parser struct {
	state   entryState
	msgid   string
	msgstr  string
	entries map[string]string
	line    int
}

type lineType int

const (
	lineIgnored lineType = iota
	lineMsgid
	lineMsgstr
	lineString
)

func (p *parser) addLine(line string) error {
	p.line++
	typ, text, err := classifyLine(line)
	if err != nil {
		return fmt.Errorf("line %d: %w", p.line, err)
	}

	switch typ {
	case lineIgnored:
		switch p.state {
		case stateMsgid:
			return fmt.Errorf("line %d, msgid %q: msgid must be directly followed by msgstr", p.line, p.msgid)
		case stateMsgstr:
			if err := p.addEntry(); err != nil {
				return fmt.Errorf("line %d: %w", p.line, err)
			}
			p.state = stateWaiting
		}
	case lineMsgid:
		switch p.state {
		case stateWaiting:
			p.msgid = text
			p.state = stateMsgid
		case stateMsgid:
			return fmt.Errorf("line %d: two consecutive msgids: %q and %q", p.line, p.msgid, text)
		case stateMsgstr:
			if err := p.addEntry(); err != nil {
				return fmt.Errorf("line %d: %w", p.line, err)
			}
			p.msgid = text
			p.state = stateMsgid
		}
	case lineMsgstr:
		switch p.state {
		case stateWaiting:
			return fmt.Errorf("line %d: msgstr %q without preceding msgid", p.line, text)
		case stateMsgid:
			p.msgstr = text
			p.state = stateMsgstr
		case stateMsgstr:
			return fmt.Errorf("line %d: two consecutive msgstrs for msgid %q: %q and %q", p.line, p.msgid, p.msgstr, text)
		}
	case lineString:
		switch p.state {
		case stateWaiting:
			return fmt.Errorf("line %d: string literal not part of a msgid or msgstr: %q", p.line, text)
		case stateMsgid:
			p.msgid += text
		case stateMsgstr:
			p.msgstr += text
		}
	}
	return nil
}

func (p *parser) addEntry() error {
	if previous, exists := p.entries[p.msgid]; exists {
		return fmt.Errorf("duplicate msgid %q: first translated as %q, then as %q", p.msgid, previous, p.msgstr)
	}
	p.entries[p.msgid] = p.msgstr
	p.msgid = ""
	p.msgstr = ""
	return nil
}

func (p *parser) finish() (*File, error) {
	switch p.state {
	case stateMsgid:
		return nil, fmt.Errorf("trailing msgid %q without corresponding msgstr", p.msgid)
	case stateMsgstr:
		if err := p.addEntry(); err != nil {
			return nil, err
		}
	}
	return &File{Entries: p.entries}, nil
}

func classifyLine(line string) (lineType, string, error) {
	if line == "" || line[0] == '#' {
		return lineIgnored, "", nil
	}
	if strings.HasPrefix(line, "msgctxt ") {
		return 0, "", fmt.Errorf("unsupported syntax: msgctxt is not supported")
	}
	if strings.HasPrefix(line, "msgid_plural ") {
		return 0, "", fmt.Errorf("unsupported syntax: msgid_plural is not supported")
	}
	if strings.HasPrefix(line, "msgstr[") {
		return 0, "", fmt.Errorf("unsupported syntax: indexed msgstr is not supported")
	}
	if rest, ok := strings.CutPrefix(line, "msgid "); ok {
		text, err := parseCStringLiteral(rest)
		if err != nil {
			return 0, "", fmt.Errorf("expected string literal after 'msgid ': %w", err)
		}
		return lineMsgid, text, nil
	}
	if rest, ok := strings.CutPrefix(line, "msgstr "); ok {
		text, err := parseCStringLiteral(rest)
		if err != nil {
			return 0, "", fmt.Errorf("expected string literal after 'msgstr ': %w", err)
		}
		return lineMsgstr, text, nil
	}
	if line[0] == '"' {
		text, err := parseCStringLiteral(line)
		if err != nil {
			return 0, "", fmt.Errorf("expected string literal: %w", err)
		}
		return lineString, text, nil
	}
	return 0, "", fmt.Errorf("line did not match the expected format")
}

// parseCStringLiteral parses one double-quote delimited literal. Only the
// escape subset \a \b \f \n \t \v \" \\ is accepted; octal, hex, and unicode
// escapes are rejected, matching GNU gettext.
func parseCStringLiteral(literal string) (string, error) {
	if len(literal) < 2 {
		return "", fmt.Errorf("expected double-quote delimited string literal, got %q", literal)
	}
	if literal[0] != '"' {
		return "", fmt.Errorf("expected double quote at start of string literal, got %q", literal[0])
	}
	if literal[len(literal)-1] != '"' {
		return "", fmt.Errorf("expected double quote at end of string literal, got %q", literal[len(literal)-1])
	}

	var b strings.Builder
	escaped := false
	for _, char := range literal[1 : len(literal)-1] {
		if escaped {
			switch char {
			case 'a':
				b.WriteByte(0x07)
			case 'b':
				b.WriteByte(0x08)
			case 'f':
				b.WriteByte(0x0c)
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'v':
				b.WriteByte(0x0b)
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				return "", fmt.Errorf("unsupported escaped character: %q", char)
			}
			escaped = false
			continue
		}
		switch char {
		case '"':
			return "", fmt.Errorf("unescaped double quote inside string literal")
		case '\\':
			escaped = true
		default:
			b.WriteRune(char)
		}
	}
	if escaped {
		return "", fmt.Errorf("unterminated escape at the end of the string")
	}
	return b.String(), nil
}
