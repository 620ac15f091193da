package deck

import "fmt"

// SlideKind identifies which variant a SlideSpec holds.
type SlideKind int

const (
	KindTitle SlideKind = iota
	KindContent
	KindTable
)

func (k SlideKind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindContent:
		return "content"
	case KindTable:
		return "table"
	default:
		return fmt.Sprintf("SlideKind(%d)", int(k))
	}
}

// ParseSlideKind maps the deck-file spelling of a kind back to its value.
func ParseSlideKind(s string) (SlideKind, error) {
	switch s {
	case "title":
		return KindTitle, nil
	case "content":
		return KindContent, nil
	case "table":
		return KindTable, nil
	}
	return 0, fmt.Errorf("%w: unknown slide kind %q", ErrInvalidDeck, s)
}

// SlideSpec describes one slide independently of how it is rendered.
// The zero value is an empty title slide. Values are immutable: constructors
// copy their inputs and accessors hand out copies.
type SlideSpec struct {
	kind       SlideKind
	heading    string
	subheading string
	bullets    []string
	rows       [][]string
	plain      bool
}

// Title describes a cover-style slide with a heading and a subheading.
func Title(heading, subheading string) SlideSpec {
	return SlideSpec{kind: KindTitle, heading: heading, subheading: subheading}
}

// Content describes a heading plus one body paragraph per bullet line.
// Empty lines are kept; they render as blank spacer paragraphs.
func Content(heading string, bullets []string) SlideSpec {
	return SlideSpec{kind: KindContent, heading: heading, bullets: copyStrings(bullets)}
}

// Table describes a heading plus a grid of pre-stringified cell values.
// Shape is checked when the slide is added, not here.
func Table(heading string, rows [][]string) SlideSpec {
	return SlideSpec{kind: KindTable, heading: heading, rows: copyRows(rows)}
}

// WithPlainHeading returns a copy whose heading is set without bold. Table
// headings are always plain.
func (s SlideSpec) WithPlainHeading() SlideSpec {
	s.bullets = copyStrings(s.bullets)
	s.rows = copyRows(s.rows)
	s.plain = true
	return s
}

func (s SlideSpec) Kind() SlideKind    { return s.kind }
func (s SlideSpec) Heading() string    { return s.heading }
func (s SlideSpec) Subheading() string { return s.subheading }
func (s SlideSpec) Bullets() []string  { return copyStrings(s.bullets) }
func (s SlideSpec) Rows() [][]string   { return copyRows(s.rows) }
func (s SlideSpec) BoldHeading() bool  { return !s.plain && s.kind != KindTable }

// Deck is the ordered set of slides destined for one output file.
type Deck struct {
	Title  string
	Output string
	Slides []SlideSpec
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyRows(in [][]string) [][]string {
	if in == nil {
		return nil
	}
	out := make([][]string, len(in))
	for i, row := range in {
		out[i] = copyStrings(row)
	}
	return out
}
