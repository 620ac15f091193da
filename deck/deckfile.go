package deck

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type deckFile struct {
	Title  string      `yaml:"title"`
	Output string      `yaml:"output"`
	Slides []slideFile `yaml:"slides"`
}

type slideFile struct {
	Kind       string     `yaml:"kind"`
	Heading    string     `yaml:"heading"`
	Subheading string     `yaml:"subheading,omitempty"`
	Bullets    []string   `yaml:"bullets,omitempty"`
	Rows       [][]string `yaml:"rows,omitempty"`
	Plain      bool       `yaml:"plain,omitempty"` // heading without bold
}

// LoadDeck decodes a YAML deck description. Table shape is left to the
// builder; only structure is checked here.
func LoadDeck(r io.Reader) (Deck, error) {
	var f deckFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return Deck{}, fmt.Errorf("%w: empty document", ErrInvalidDeck)
		}
		return Deck{}, fmt.Errorf("%w: %w", ErrInvalidDeck, err)
	}
	if len(f.Slides) == 0 {
		return Deck{}, fmt.Errorf("%w: no slides", ErrInvalidDeck)
	}

	d := Deck{Title: f.Title, Output: f.Output, Slides: make([]SlideSpec, 0, len(f.Slides))}
	for i, s := range f.Slides {
		kind, err := ParseSlideKind(strings.TrimSpace(s.Kind))
		if err != nil {
			return Deck{}, fmt.Errorf("slide %d: %w", i+1, err)
		}
		if strings.TrimSpace(s.Heading) == "" {
			return Deck{}, fmt.Errorf("%w: slide %d has no heading", ErrInvalidDeck, i+1)
		}
		var spec SlideSpec
		switch kind {
		case KindTitle:
			spec = Title(s.Heading, s.Subheading)
		case KindContent:
			spec = Content(s.Heading, s.Bullets)
		case KindTable:
			spec = Table(s.Heading, s.Rows)
		}
		if s.Plain {
			spec = spec.WithPlainHeading()
		}
		d.Slides = append(d.Slides, spec)
	}
	return d, nil
}

// ReadDeckFile loads a deck from path.
func ReadDeckFile(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("failed to read deck file: %w", err)
	}
	return LoadDeck(bytes.NewReader(data))
}

// MarshalDeck is the inverse of LoadDeck.
func MarshalDeck(d Deck) ([]byte, error) {
	f := deckFile{Title: d.Title, Output: d.Output}
	for _, s := range d.Slides {
		f.Slides = append(f.Slides, slideFile{
			Kind:       s.kind.String(),
			Heading:    s.heading,
			Subheading: s.subheading,
			Bullets:    s.bullets,
			Rows:       s.rows,
			Plain:      s.plain,
		})
	}
	return yaml.Marshal(&f)
}
