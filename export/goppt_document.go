package export

import (
	"fmt"
	"io"

	ppt "github.com/VantageDataChat/GoPPT"

	"lessondeck/deck"
)

// GoPPTDocument renders slides with GoPPT (pure Go, zero dependencies).
type GoPPTDocument struct {
	pres  *ppt.Presentation
	pages int
}

// NewGoPPTDocument creates an empty presentation.
func NewGoPPTDocument() *GoPPTDocument {
	p := ppt.New()
	p.GetDocumentProperties().Creator = "lessondeck"
	p.GetLayout().SetLayout(ppt.LayoutScreen4x3)
	return &GoPPTDocument{pres: p}
}

// helper: create a solid fill
func solidFill(c deck.Color) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(c.ARGB()))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

func place(shape *ppt.RichTextShape, f deck.Frame) {
	shape.SetOffsetX(f.X).SetOffsetY(f.Y)
	shape.SetWidth(f.W).SetHeight(f.H)
}

func applyFont(tr *ppt.TextRun, f deck.Font) {
	font := tr.GetFont()
	font.SetName(f.Family)
	font.SetSize(f.Size).SetBold(f.Bold).SetColor(ppt.NewColor(f.Color.ARGB()))
}

func (d *GoPPTDocument) SetTitle(title string) {
	d.pres.GetDocumentProperties().Title = title
}

// AddPage reuses the presentation's initial slide for the first page.
func (d *GoPPTDocument) AddPage(layout deck.Layout) (deck.Page, error) {
	if len(layout.Regions()) == 0 {
		return nil, fmt.Errorf("%w: GoPPT has no layout %v", deck.ErrRender, layout)
	}
	var slide *ppt.Slide
	if d.pages == 0 {
		slide = d.pres.GetActiveSlide()
	} else {
		slide = d.pres.CreateSlide()
	}
	d.pages++
	return &gopptPage{slide: slide, layout: layout}, nil
}

func (d *GoPPTDocument) Save(w io.Writer) error {
	if d.pages == 0 {
		return fmt.Errorf("presentation has no slides")
	}
	writer, err := ppt.NewWriter(d.pres, ppt.WriterPowerPoint2007)
	if err != nil {
		return fmt.Errorf("failed to create PPT writer: %w", err)
	}
	pw, ok := writer.(*ppt.PPTXWriter)
	if !ok {
		return fmt.Errorf("unexpected PPT writer %T", writer)
	}
	if err := pw.WriteTo(w); err != nil {
		return fmt.Errorf("failed to save PPT: %w", err)
	}
	return nil
}

type gopptPage struct {
	slide  *ppt.Slide
	layout deck.Layout
}

func (p *gopptPage) SetBackground(c deck.Color) error {
	p.slide.SetBackground(solidFill(c))
	return nil
}

func (p *gopptPage) SetText(role deck.Role, paragraphs []deck.Paragraph) error {
	frame, ok := deck.RegionFrame(p.layout, role)
	if !ok {
		return fmt.Errorf("%w: layout %v has no %v region", deck.ErrRender, p.layout, role)
	}
	shape := p.slide.CreateRichTextShape()
	place(shape, frame)

	// 封面页文字居中
	centered := p.layout == deck.LayoutTitle
	for i, para := range paragraphs {
		gp := shape.GetActiveParagraph()
		if i > 0 {
			gp = shape.CreateParagraph()
		}
		applyFont(gp.CreateTextRun(para.Text), para.Font)
		if para.SpaceAfter > 0 {
			// spcPts 单位为 1/100 磅
			gp.SetSpaceAfter(para.SpaceAfter * 100)
		}
		if centered {
			alignCenter(gp)
		}
	}
	return nil
}

// AddTable places a native rows × cols table at the table frame; rows
// alternate fills.
func (p *gopptPage) AddTable(table deck.TableShape) error {
	rows := len(table.Cells)
	if rows == 0 || len(table.Cells[0]) == 0 {
		return fmt.Errorf("%w: empty table", deck.ErrInvalidTableShape)
	}
	cols := len(table.Cells[0])
	for r, row := range table.Cells {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", deck.ErrInvalidTableShape, r+1, len(row), cols)
		}
	}

	tbl := p.slide.CreateTableShape(rows, cols)
	tbl.SetOffsetX(table.Frame.X)
	tbl.SetOffsetY(table.Frame.Y)
	tbl.SetWidth(table.Frame.W).SetHeight(table.Frame.H)

	for r, row := range table.Cells {
		fill := table.Fill
		if r%2 == 1 {
			fill = table.AltFill
		}
		for c, value := range row {
			cell := tbl.GetCell(r, c)
			cell.SetFill(solidFill(fill))
			applyFont(cell.GetParagraphs()[0].CreateTextRun(value), table.Font)
		}
	}
	return nil
}
