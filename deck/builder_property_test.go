package deck

import (
	"errors"
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

func drawSpec(t *rapid.T, label string) SlideSpec {
	text := rapid.StringN(0, 12, -1)
	switch rapid.IntRange(0, 2).Draw(t, label+".kind") {
	case 0:
		return Title(text.Draw(t, label+".heading"), text.Draw(t, label+".sub"))
	case 1:
		return Content(text.Draw(t, label+".heading"), rapid.SliceOfN(text, 0, 8).Draw(t, label+".bullets"))
	default:
		rows := rapid.IntRange(1, 6).Draw(t, label+".rows")
		cols := rapid.IntRange(1, 5).Draw(t, label+".cols")
		grid := make([][]string, rows)
		for i := range grid {
			grid[i] = rapid.SliceOfN(text, cols, cols).Draw(t, label+".row")
		}
		return Table(text.Draw(t, label+".heading"), grid)
	}
}

// Property 2: 幻灯片顺序保持
//
// For any sequence of valid slide specs, BuildDeck produces one page per spec, in the
// same order, with the layout that matches each kind.

func TestProperty2_SlideOrderPreserved(t *testing.T) {
	layoutFor := map[SlideKind]Layout{
		KindTitle:   LayoutTitle,
		KindContent: LayoutTitleBody,
		KindTable:   LayoutTitleOnly,
	}
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "n")
		specs := make([]SlideSpec, n)
		for i := range specs {
			specs[i] = drawSpec(t, "spec")
		}

		doc := NewMemoryDocument()
		b, err := BuildDeck(doc, specs, DefaultStyle())
		if err != nil {
			t.Fatalf("BuildDeck failed: %v", err)
		}
		if b.Len() != n || len(doc.Pages) != n {
			t.Fatalf("Len()=%d pages=%d, want %d", b.Len(), len(doc.Pages), n)
		}
		for i, spec := range specs {
			page := doc.Pages[i]
			if page.Layout != layoutFor[spec.Kind()] {
				t.Fatalf("page %d layout %v, want %v", i, page.Layout, layoutFor[spec.Kind()])
			}
			if got := page.Texts(RoleTitle); len(got) != 1 || got[0] != spec.Heading() {
				t.Fatalf("page %d title %q, want %q", i, got, spec.Heading())
			}
		}
	})
}

// Property 3: 正文段落与输入一一对应
//
// For any bullet list (empty strings included), the body region holds exactly
// len(bullets) paragraphs with the same text in the same order.

func TestProperty3_ContentParagraphsMatchBullets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bullets := rapid.SliceOf(rapid.SampledFrom([]string{"", " ", "a", "纹样", "- x"})).Draw(t, "bullets")

		doc := NewMemoryDocument()
		if err := NewBuilder(doc).AddContentSlide("T", bullets, DefaultStyle()); err != nil {
			t.Fatalf("AddContentSlide failed: %v", err)
		}
		got := doc.Pages[0].Texts(RoleBody)
		if len(bullets) == 0 {
			if len(got) != 0 {
				t.Fatalf("body = %q, want empty", got)
			}
			return
		}
		if !reflect.DeepEqual(got, bullets) {
			t.Fatalf("body = %q, want %q", got, bullets)
		}
	})
}

// Property 4: 表格形状校验
//
// For any grid, AddTableSlide succeeds exactly when the grid is non-empty and
// rectangular; on success the table keeps the grid verbatim, on failure nothing
// is appended.

func TestProperty4_TableShapeValidation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(0, 5).Draw(t, "rows")
		grid := make([][]string, rows)
		for i := range grid {
			grid[i] = rapid.SliceOfN(rapid.StringN(0, 4, -1), 0, 4).Draw(t, "row")
		}

		rectangular := rows > 0 && len(grid[0]) > 0
		for _, row := range grid {
			if len(row) != len(grid[0]) {
				rectangular = false
			}
		}

		doc := NewMemoryDocument()
		err := NewBuilder(doc).AddTableSlide("U", grid, DefaultStyle())
		if rectangular {
			if err != nil {
				t.Fatalf("AddTableSlide(%q) failed: %v", grid, err)
			}
			if !reflect.DeepEqual(doc.Pages[0].Tables[0].Cells, grid) {
				t.Fatalf("cells = %q, want %q", doc.Pages[0].Tables[0].Cells, grid)
			}
			return
		}
		if !errors.Is(err, ErrInvalidTableShape) {
			t.Fatalf("AddTableSlide(%q) err = %v, want ErrInvalidTableShape", grid, err)
		}
		if len(doc.Pages) != 0 {
			t.Fatal("page appended for invalid table")
		}
	})
}
