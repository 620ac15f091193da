package deck

import "io"

// Font is the per-paragraph text styling handed to a Document.
type Font struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
	Color  Color  `json:"color"`
	Bold   bool   `json:"bold,omitempty"`
}

// Paragraph is one line of text in a region.
type Paragraph struct {
	Text       string `json:"text"`
	Font       Font   `json:"font"`
	SpaceAfter int    `json:"spaceAfter,omitempty"` // pt
}

// TableShape is a rows × cols grid placed at Frame. Rows alternate between
// Fill and AltFill.
type TableShape struct {
	Frame   Frame      `json:"frame"`
	Cells   [][]string `json:"cells"`
	Font    Font       `json:"font"`
	Fill    Color      `json:"fill"`
	AltFill Color      `json:"altFill"`
}

// Document is the presentation library seen by the Builder. Implementations
// live in the export package; MemoryDocument records calls for tests.
type Document interface {
	// SetTitle sets the document-level title property.
	SetTitle(title string)
	// AddPage appends a slide using layout. It fails with ErrRender when the
	// layout is unavailable.
	AddPage(layout Layout) (Page, error)
	// Save serializes every page added so far.
	Save(w io.Writer) error
}

// Page is one slide inside a Document.
type Page interface {
	SetBackground(c Color) error
	// SetText replaces the content of a region. It fails with ErrRender when
	// the page layout has no such region.
	SetText(role Role, paragraphs []Paragraph) error
	AddTable(table TableShape) error
}
