package export

import (
	"fmt"
	"sort"
	"strings"

	"lessondeck/deck"
)

const (
	BackendGoPPT  = "goppt"
	BackendGooxml = "gooxml"
	BackendMemory = "memory"
)

var backends = map[string]func() deck.Document{
	BackendGoPPT:  func() deck.Document { return NewGoPPTDocument() },
	BackendGooxml: func() deck.Document { return NewOOXMLDocument() },
	BackendMemory: func() deck.Document { return deck.NewMemoryDocument() },
}

// Backends lists the registered backend names, sorted.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeBackend trims and lowercases a backend name.
func NormalizeBackend(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsBackend reports whether name, once normalized, is registered.
func IsBackend(name string) bool {
	_, ok := backends[NormalizeBackend(name)]
	return ok
}

// NewDocument returns an empty document for the named backend.
func NewDocument(backend string) (deck.Document, error) {
	ctor, ok := backends[NormalizeBackend(backend)]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (want one of %s)", backend, strings.Join(Backends(), ", "))
	}
	return ctor(), nil
}
