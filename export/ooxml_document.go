package export

import (
	"fmt"
	"io"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/drawingml"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/presentation"
	"baliance.com/gooxml/schema/soo/dml"

	"lessondeck/deck"
)

// OOXMLDocument renders slides with gooxml (open source).
type OOXMLDocument struct {
	pres  *presentation.Presentation
	pages int
}

// NewOOXMLDocument creates an empty presentation.
func NewOOXMLDocument() *OOXMLDocument {
	return &OOXMLDocument{pres: presentation.New()}
}

func emu(v int64) measurement.Distance {
	return measurement.Distance(float64(v)/deck.EMUPerInch) * measurement.Inch
}

func rgb(c deck.Color) color.Color {
	return color.RGB(c.R, c.G, c.B)
}

// setSpaceAfter writes <a:spcAft><a:spcPts/></a:spcAft>; spcPts is in 1/100 pt.
func setSpaceAfter(props drawingml.ParagraphProperties, pt int) {
	x := props.X()
	x.SpcAft = dml.NewCT_TextSpacing()
	x.SpcAft.SpcPts = dml.NewCT_TextSpacingPoint()
	x.SpcAft.SpcPts.ValAttr = int32(pt * 100)
}

// addBox places a rectangle text box at f.
func addBox(slide presentation.Slide, f deck.Frame) presentation.TextBox {
	box := slide.AddTextBox()
	box.Properties().SetGeometry(dml.ST_ShapeTypeRect)
	box.Properties().SetPosition(emu(f.X), emu(f.Y))
	box.Properties().SetSize(emu(f.W), emu(f.H))
	return box
}

func (d *OOXMLDocument) SetTitle(title string) {
	d.pres.CoreProperties.SetTitle(title)
}

func (d *OOXMLDocument) AddPage(layout deck.Layout) (deck.Page, error) {
	if len(layout.Regions()) == 0 {
		return nil, fmt.Errorf("%w: gooxml has no layout %v", deck.ErrRender, layout)
	}
	d.pages++
	return &ooxmlPage{slide: d.pres.AddSlide(), layout: layout}, nil
}

func (d *OOXMLDocument) Save(w io.Writer) error {
	if d.pages == 0 {
		return fmt.Errorf("presentation has no slides")
	}
	if err := d.pres.Save(w); err != nil {
		return fmt.Errorf("failed to save PPT: %w", err)
	}
	return nil
}

type ooxmlPage struct {
	slide  presentation.Slide
	layout deck.Layout
}

func (p *ooxmlPage) SetBackground(c deck.Color) error {
	bg := addBox(p.slide, deck.Frame{W: deck.SlideWidth, H: deck.SlideHeight})
	bg.Properties().SetSolidFill(rgb(c))
	return nil
}

func (p *ooxmlPage) SetText(role deck.Role, paragraphs []deck.Paragraph) error {
	frame, ok := deck.RegionFrame(p.layout, role)
	if !ok {
		return fmt.Errorf("%w: layout %v has no %v region", deck.ErrRender, p.layout, role)
	}
	box := addBox(p.slide, frame)
	for _, para := range paragraphs {
		gp := box.AddParagraph()
		if p.layout == deck.LayoutTitle {
			gp.Properties().SetAlign(dml.ST_TextAlignTypeCtr)
		}
		if para.SpaceAfter > 0 {
			setSpaceAfter(gp.Properties(), para.SpaceAfter)
		}
		run := gp.AddRun()
		run.SetText(para.Text)
		applyRunFont(run.Properties(), para.Font)
	}
	return nil
}

// AddTable draws the table as a grid of filled text boxes. gooxml's
// presentation package has no graphic-frame table.
func (p *ooxmlPage) AddTable(table deck.TableShape) error {
	rows := len(table.Cells)
	if rows == 0 || len(table.Cells[0]) == 0 {
		return fmt.Errorf("%w: empty table", deck.ErrInvalidTableShape)
	}
	cols := len(table.Cells[0])

	for r, row := range table.Cells {
		fill := table.Fill
		if r%2 == 1 {
			fill = table.AltFill
		}
		for c, value := range row {
			cell := addBox(p.slide, table.Frame.Cell(r, c, rows, cols))
			cell.Properties().SetSolidFill(rgb(fill))
			run := cell.AddParagraph().AddRun()
			run.SetText(value)
			applyRunFont(run.Properties(), table.Font)
		}
	}
	return nil
}

func applyRunFont(props drawingml.RunProperties, f deck.Font) {
	props.SetSize(measurement.Distance(f.Size) * measurement.Point)
	props.SetBold(f.Bold)
	props.SetSolidFill(rgb(f.Color))
	props.SetFont(f.Family)
}
