package deck

import (
	"encoding/json"
	"fmt"
	"io"
)

// MemoryDocument records pages without producing a presentation file. Save
// writes a JSON snapshot whose bytes depend only on what was added.
type MemoryDocument struct {
	Title string        `json:"title"`
	Pages []*MemoryPage `json:"pages"`

	// Layouts, when non-nil, restricts which layouts AddPage accepts.
	Layouts map[Layout]bool `json:"-"`
}

// MemoryPage is one recorded slide.
type MemoryPage struct {
	Layout     Layout               `json:"layout"`
	Background *Color               `json:"background,omitempty"`
	Regions    map[Role][]Paragraph `json:"regions"`
	Tables     []TableShape         `json:"tables,omitempty"`
}

// NewMemoryDocument returns an empty document that accepts every layout.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{}
}

func (d *MemoryDocument) SetTitle(title string) { d.Title = title }

func (d *MemoryDocument) AddPage(layout Layout) (Page, error) {
	if len(layout.Regions()) == 0 {
		return nil, renderErrorf("unknown layout %v", layout)
	}
	if d.Layouts != nil && !d.Layouts[layout] {
		return nil, renderErrorf("layout %v not available", layout)
	}
	p := &MemoryPage{Layout: layout, Regions: make(map[Role][]Paragraph)}
	d.Pages = append(d.Pages, p)
	return p, nil
}

func (d *MemoryDocument) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func (p *MemoryPage) SetBackground(c Color) error {
	p.Background = &c
	return nil
}

func (p *MemoryPage) SetText(role Role, paragraphs []Paragraph) error {
	if _, ok := RegionFrame(p.Layout, role); !ok {
		return renderErrorf("layout %v has no %v region", p.Layout, role)
	}
	cp := make([]Paragraph, len(paragraphs))
	copy(cp, paragraphs)
	p.Regions[role] = cp
	return nil
}

func (p *MemoryPage) AddTable(table TableShape) error {
	table.Cells = copyRows(table.Cells)
	p.Tables = append(p.Tables, table)
	return nil
}

// Texts returns the text of every paragraph in region role.
func (p *MemoryPage) Texts(role Role) []string {
	paras := p.Regions[role]
	out := make([]string, len(paras))
	for i, para := range paras {
		out[i] = para.Text
	}
	return out
}

// Summary renders one line per page, used by dry runs.
func (d *MemoryDocument) Summary() []string {
	lines := make([]string, 0, len(d.Pages))
	for i, p := range d.Pages {
		title := ""
		if t := p.Texts(RoleTitle); len(t) > 0 {
			title = t[0]
		}
		switch {
		case len(p.Tables) > 0:
			t := p.Tables[0]
			cols := 0
			if len(t.Cells) > 0 {
				cols = len(t.Cells[0])
			}
			lines = append(lines, fmt.Sprintf("%2d. [%s] %s (%d×%d table)", i+1, p.Layout, title, len(t.Cells), cols))
		case p.Layout == LayoutTitleBody:
			lines = append(lines, fmt.Sprintf("%2d. [%s] %s (%d paragraphs)", i+1, p.Layout, title, len(p.Regions[RoleBody])))
		default:
			lines = append(lines, fmt.Sprintf("%2d. [%s] %s", i+1, p.Layout, title))
		}
	}
	return lines
}
