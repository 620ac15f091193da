package deck

import "fmt"

// EMU 换算
const (
	EMUPerInch  = 914400
	EMUPerPoint = 12700
)

// Page size of the default 4:3 template.
const (
	SlideWidth  = int64(10 * EMUPerInch)
	SlideHeight = int64(7.5 * EMUPerInch)
)

// Table geometry. Height grows with the row count.
const (
	tableLeft         = int64(1 * EMUPerInch)
	tableTop          = int64(2 * EMUPerInch)
	tableWidth        = int64(8 * EMUPerInch)
	tableHeightPerRow = int64(0.8 * EMUPerInch)
)

// Layout names a slide template.
type Layout int

const (
	LayoutTitle     Layout = iota // title + subtitle
	LayoutTitleBody               // title + body
	LayoutTitleOnly               // title
)

func (l Layout) String() string {
	switch l {
	case LayoutTitle:
		return "title"
	case LayoutTitleBody:
		return "title-body"
	case LayoutTitleOnly:
		return "title-only"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Role names a text region inside a layout.
type Role int

const (
	RoleTitle Role = iota
	RoleSubtitle
	RoleBody
)

func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleSubtitle:
		return "subtitle"
	case RoleBody:
		return "body"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Frame is a rectangle in EMU.
type Frame struct {
	X, Y, W, H int64
}

func inches(x, y, w, h float64) Frame {
	return Frame{
		X: int64(x * EMUPerInch),
		Y: int64(y * EMUPerInch),
		W: int64(w * EMUPerInch),
		H: int64(h * EMUPerInch),
	}
}

var regionFrames = map[Layout]map[Role]Frame{
	LayoutTitle: {
		RoleTitle:    inches(0.75, 2.33, 8.5, 1.61),
		RoleSubtitle: inches(1.5, 4.25, 7, 1.92),
	},
	LayoutTitleBody: {
		RoleTitle: inches(0.5, 0.3, 9, 1.25),
		RoleBody:  inches(0.5, 1.75, 9, 4.95),
	},
	LayoutTitleOnly: {
		RoleTitle: inches(0.5, 0.3, 9, 1.25),
	},
}

// Regions lists the text regions a layout provides, in drawing order.
func (l Layout) Regions() []Role {
	switch l {
	case LayoutTitle:
		return []Role{RoleTitle, RoleSubtitle}
	case LayoutTitleBody:
		return []Role{RoleTitle, RoleBody}
	case LayoutTitleOnly:
		return []Role{RoleTitle}
	}
	return nil
}

// RegionFrame returns where a region sits on a layout. ok is false when the
// layout has no such region.
func RegionFrame(l Layout, r Role) (f Frame, ok bool) {
	roles, found := regionFrames[l]
	if !found {
		return Frame{}, false
	}
	f, ok = roles[r]
	return f, ok
}

// TableFrame computes the table rectangle for a given row count.
func TableFrame(rows int) Frame {
	return Frame{
		X: tableLeft,
		Y: tableTop,
		W: tableWidth,
		H: tableHeightPerRow * int64(rows),
	}
}

// Cell returns the rectangle of cell (row, col) when f is split evenly into
// rows × cols.
func (f Frame) Cell(row, col, rows, cols int) Frame {
	cw := f.W / int64(cols)
	rh := f.H / int64(rows)
	return Frame{
		X: f.X + int64(col)*cw,
		Y: f.Y + int64(row)*rh,
		W: cw,
		H: rh,
	}
}
