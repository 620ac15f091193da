// Package content holds the decks that ship with the binary.
package content

import (
	"bytes"
	_ "embed"

	"lessondeck/deck"
)

//go:embed lesson.yaml
var lessonYAML []byte

// Lesson returns the bronze-pattern unit report: a cover, the unit table,
// ten content slides and a closing slide.
func Lesson() (deck.Deck, error) {
	return deck.LoadDeck(bytes.NewReader(lessonYAML))
}
