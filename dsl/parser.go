package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[{}:;,]`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node for a label template file.
type Document struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Name     string         `parser:"Newline* 'template' @Ident"`
	Version  string         `parser:"@Ident"`
	Sections []*Section     `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Meta returns the document's meta section, or nil if absent.
func (d *Document) Meta() *MetaSection {
	for _, s := range d.Sections {
		if s.Meta != nil {
			return s.Meta
		}
	}
	return nil
}

// Sheet returns the document's sheet section, or nil if absent.
func (d *Document) Sheet() *SheetSection {
	for _, s := range d.Sections {
		if s.Sheet != nil {
			return s.Sheet
		}
	}
	return nil
}

// Section represents a top-level section (meta/sheet).
type Section struct {
	Meta  *MetaSection  `parser:"  @@"`
	Sheet *SheetSection `parser:"| @@"`
}

// Kind returns the human-readable section type.
func (s *Section) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Meta != nil:
		return "meta"
	case s.Sheet != nil:
		return "sheet"
	default:
		return "unknown"
	}
}

// MetaSection captures metadata assignments (name, vendor, description...).
type MetaSection struct {
	Entries []*Assignment `parser:"'meta' '{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Get returns the value of an entry by key, or "" when not present.
func (m *MetaSection) Get(key string) string {
	if m == nil {
		return ""
	}
	for _, e := range m.Entries {
		if e.Key == key {
			return string(e.Value)
		}
	}
	return ""
}

// Assignment uses colon syntax (key: "value").
type Assignment struct {
	Key   string        `parser:"@Ident ':' Newline*"`
	Value StringLiteral `parser:"@String"`
}

// SheetSection describes one sheet: page size header plus layout commands.
type SheetSection struct {
	Size     PageSize   `parser:"'sheet' @@"`
	Commands []*Command `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Command returns the first command with the given name, or nil.
func (s *SheetSection) Command(name string) *Command {
	if s == nil {
		return nil
	}
	for _, c := range s.Commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// PageSize is either a named size (A4, Letter...) or an explicit `W x H`.
type PageSize struct {
	Name   string `parser:"@Ident"`
	Width  string `parser:"| @Number 'x'"`
	Height string `parser:"@Number"`
}

// Command describes one sheet statement, eg: `label rect 70mm x 41mm`.
// Args keeps the raw tokens; the layout stage interprets them.
type Command struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Name string         `parser:"@Ident"`
	Args []string       `parser:"( @Number | @Ident | @String )*"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses template content from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses template content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
