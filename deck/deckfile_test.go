package deck

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleDeck = `
title: 示例
output: sample.pptx
slides:
  - kind: title
    heading: A
    subheading: B
  - kind: content
    heading: T
    bullets: ["x", "", "y"]
  - kind: table
    heading: U
    rows:
      - [1, 2]
      - ["3", "4"]
`

func TestLoadDeck(t *testing.T) {
	d, err := LoadDeck(strings.NewReader(sampleDeck))
	if err != nil {
		t.Fatalf("LoadDeck failed: %v", err)
	}
	if d.Title != "示例" || d.Output != "sample.pptx" {
		t.Errorf("header = %q %q", d.Title, d.Output)
	}
	if len(d.Slides) != 3 {
		t.Fatalf("slides = %d, want 3", len(d.Slides))
	}
	if d.Slides[0].Kind() != KindTitle || d.Slides[0].Subheading() != "B" {
		t.Errorf("slide 1 = %+v", d.Slides[0])
	}
	if got := d.Slides[1].Bullets(); !reflect.DeepEqual(got, []string{"x", "", "y"}) {
		t.Errorf("bullets = %q", got)
	}
	if got := d.Slides[2].Rows(); !reflect.DeepEqual(got, [][]string{{"1", "2"}, {"3", "4"}}) {
		t.Errorf("rows = %q", got)
	}
}

func TestLoadDeck_PlainHeading(t *testing.T) {
	in := "slides:\n  - kind: title\n    heading: 感谢聆听\n    plain: true\n  - kind: title\n    heading: A\n"
	d, err := LoadDeck(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadDeck failed: %v", err)
	}
	if d.Slides[0].BoldHeading() {
		t.Error("plain: true should give a plain heading")
	}
	if !d.Slides[1].BoldHeading() {
		t.Error("title headings are bold by default")
	}
}

func TestLoadDeck_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no slides", "title: x\nslides: []\n"},
		{"unknown kind", "slides:\n  - kind: chart\n    heading: x\n"},
		{"missing heading", "slides:\n  - kind: title\n"},
		{"unknown field", "slides:\n  - kind: title\n    heading: x\n    colour: red\n"},
		{"not yaml", "slides: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadDeck(strings.NewReader(tt.in)); !errors.Is(err, ErrInvalidDeck) {
				t.Errorf("err = %v, want ErrInvalidDeck", err)
			}
		})
	}
}

func TestMarshalDeckRoundTrip(t *testing.T) {
	in := Deck{
		Title:  "t",
		Output: "o.pptx",
		Slides: []SlideSpec{
			Title("A", "B\nC"),
			Content("T", []string{"x", ""}),
			Table("U", [][]string{{"1", "2"}}),
			Title("Z", "").WithPlainHeading(),
		},
	}
	data, err := MarshalDeck(in)
	if err != nil {
		t.Fatalf("MarshalDeck failed: %v", err)
	}
	out, err := LoadDeck(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("LoadDeck failed: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch:\n in=%+v\nout=%+v", in, out)
	}
}

func TestReadDeckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(sampleDeck), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := ReadDeckFile(path)
	if err != nil {
		t.Fatalf("ReadDeckFile failed: %v", err)
	}
	if len(d.Slides) != 3 {
		t.Errorf("slides = %d", len(d.Slides))
	}

	if _, err := ReadDeckFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
