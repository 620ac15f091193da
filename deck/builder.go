package deck

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type builderState int

const (
	stateEmpty builderState = iota
	stateInProgress
	stateSaved
)

// Builder appends slides to a Document and serializes it once.
// A Builder is not safe for concurrent use.
type Builder struct {
	doc    Document
	state  builderState
	slides int
	logger func(string)
}

// NewBuilder wraps an empty document.
func NewBuilder(doc Document) *Builder {
	return &Builder{doc: doc, logger: func(string) {}}
}

// SetLogger installs a sink for progress messages.
func (b *Builder) SetLogger(logger func(string)) {
	if logger == nil {
		logger = func(string) {}
	}
	b.logger = logger
}

// Len returns the number of slides appended so far.
func (b *Builder) Len() int { return b.slides }

// AddTitleSlide appends a cover slide. Each line of subheading becomes its own
// paragraph; an empty subheading leaves the subtitle region blank.
func (b *Builder) AddTitleSlide(heading, subheading string, style StyleConfig) error {
	return b.addTitle(heading, subheading, true, style)
}

func (b *Builder) addTitle(heading, subheading string, bold bool, style StyleConfig) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	page, err := b.newPage(LayoutTitle, style)
	if err != nil {
		return err
	}
	if err := page.SetText(RoleTitle, []Paragraph{{Text: heading, Font: style.headingFont(bold)}}); err != nil {
		return asRender(err)
	}
	var sub []Paragraph
	if subheading != "" {
		for _, line := range strings.Split(subheading, "\n") {
			sub = append(sub, Paragraph{Text: line, Font: style.subtitleFont()})
		}
	}
	if err := page.SetText(RoleSubtitle, sub); err != nil {
		return asRender(err)
	}
	b.appended(KindTitle, heading)
	return nil
}

// AddContentSlide appends a heading plus exactly len(bullets) body paragraphs
// in order. Empty strings produce blank spacer paragraphs.
func (b *Builder) AddContentSlide(heading string, bullets []string, style StyleConfig) error {
	return b.addContent(heading, bullets, true, style)
}

func (b *Builder) addContent(heading string, bullets []string, bold bool, style StyleConfig) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	page, err := b.newPage(LayoutTitleBody, style)
	if err != nil {
		return err
	}
	if err := page.SetText(RoleTitle, []Paragraph{{Text: heading, Font: style.headingFont(bold)}}); err != nil {
		return asRender(err)
	}
	body := make([]Paragraph, 0, len(bullets))
	for _, line := range bullets {
		body = append(body, Paragraph{
			Text:       line,
			Font:       style.bodyFont(),
			SpaceAfter: style.ParagraphSpacing,
		})
	}
	if err := page.SetText(RoleBody, body); err != nil {
		return asRender(err)
	}
	b.appended(KindContent, heading)
	return nil
}

// AddTableSlide appends a heading plus a rows × cols table. rows must be
// non-empty and rectangular; otherwise ErrInvalidTableShape is returned and no
// slide is appended.
func (b *Builder) AddTableSlide(heading string, rows [][]string, style StyleConfig) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	cols, err := tableColumns(rows)
	if err != nil {
		return err
	}
	page, err := b.newPage(LayoutTitleOnly, style)
	if err != nil {
		return err
	}
	// 表格页标题不加粗
	if err := page.SetText(RoleTitle, []Paragraph{{Text: heading, Font: style.headingFont(false)}}); err != nil {
		return asRender(err)
	}
	table := TableShape{
		Frame:   TableFrame(len(rows)),
		Cells:   copyRows(rows),
		Font:    style.cellFont(),
		Fill:    style.CellFill,
		AltFill: style.CellAltFill,
	}
	if err := page.AddTable(table); err != nil {
		return asRender(err)
	}
	b.appended(KindTable, fmt.Sprintf("%s (%dx%d)", heading, len(rows), cols))
	return nil
}

// Add dispatches on spec.Kind.
func (b *Builder) Add(spec SlideSpec, style StyleConfig) error {
	switch spec.kind {
	case KindTitle:
		return b.addTitle(spec.heading, spec.subheading, spec.BoldHeading(), style)
	case KindContent:
		return b.addContent(spec.heading, spec.bullets, spec.BoldHeading(), style)
	case KindTable:
		return b.AddTableSlide(spec.heading, spec.rows, style)
	default:
		return renderErrorf("unsupported slide kind %v", spec.kind)
	}
}

// WriteTo serializes the document to w. The builder is closed afterwards.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	if err := b.checkOpen(); err != nil {
		return 0, err
	}
	b.state = stateSaved

	var buf bytes.Buffer
	if err := b.doc.Save(&buf); err != nil {
		return 0, fmt.Errorf("%w: failed to serialize document: %w", ErrIO, err)
	}
	n, err := buf.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return n, nil
}

// Save writes the document to path, creating its directory when needed.
// It is terminal: the builder rejects further calls.
func (b *Builder) Save(path string) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			b.state = stateSaved
			return fmt.Errorf("%w: failed to create output directory: %w", ErrIO, err)
		}
	}

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrIO, path, err)
	}
	b.logger(fmt.Sprintf("saved %d slides to %s (%d bytes)", b.slides, path, buf.Len()))
	return nil
}

func (b *Builder) checkOpen() error {
	if b.state == stateSaved {
		return ErrClosed
	}
	return nil
}

func (b *Builder) newPage(layout Layout, style StyleConfig) (Page, error) {
	page, err := b.doc.AddPage(layout)
	if err != nil {
		return nil, asRender(err)
	}
	if err := page.SetBackground(style.Background); err != nil {
		return nil, asRender(err)
	}
	return page, nil
}

func (b *Builder) appended(kind SlideKind, label string) {
	b.slides++
	b.state = stateInProgress
	b.logger(fmt.Sprintf("slide %d [%s] %s", b.slides, kind, label))
}

func tableColumns(rows [][]string) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: no rows", ErrInvalidTableShape)
	}
	cols := len(rows[0])
	if cols == 0 {
		return 0, fmt.Errorf("%w: row 1 has no cells", ErrInvalidTableShape)
	}
	for i, row := range rows[1:] {
		if len(row) != cols {
			return 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidTableShape, i+2, len(row), cols)
		}
	}
	return cols, nil
}

// BuildDeck appends every spec in order and returns the builder ready to
// save. The first failure stops the build and is returned as *SlideError.
func BuildDeck(doc Document, specs []SlideSpec, style StyleConfig) (*Builder, error) {
	b := NewBuilder(doc)
	if err := b.AddAll(specs, style); err != nil {
		return nil, err
	}
	return b, nil
}

// AddAll is BuildDeck for an existing builder.
func (b *Builder) AddAll(specs []SlideSpec, style StyleConfig) error {
	for i, spec := range specs {
		if err := b.Add(spec, style); err != nil {
			return WrapSlideError(i, spec.kind, err)
		}
	}
	return nil
}
