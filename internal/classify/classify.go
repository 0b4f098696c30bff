package classify

// Package classify maps raw predicted labels to a coarse animal category and
// its display glyph.

import (
	"strings"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/model"
)

// FallbackGlyph is shown for labels that match no known category
const FallbackGlyph = "🐾"

// Entry pairs a base category with its glyph
type Entry struct {
	Category string
	Glyph    string
}

// categories is checked in declared order and the FIRST substring match wins.
// This is intentionally not a best-match lookup: a label containing both
// "Owl" and "Eagle" resolves to Owl because Owl is declared first. Reordering
// entries changes behavior.
var categories = []Entry{
	{"Dog", "🐶"},
	{"Cat", "🐱"},
	{"Bird", "🐦"},
	{"Bear", "🐻"},
	{"Lion", "🦁"},
	{"Tiger", "🐯"},
	{"Elephant", "🐘"},
	{"Giraffe", "🦒"},
	{"Horse", "🐎"},
	{"Cow", "🐮"},
	{"Deer", "🦌"},
	{"Dolphin", "🐬"},
	{"Kangaroo", "🦘"},
	{"Panda", "🐼"},
	{"Zebra", "🦓"},
	{"Penguin", "🐧"},
	{"Owl", "🦉"},
	{"Eagle", "🦅"},
	{"Parrot", "🦜"},
	{"Swan", "🦢"},
	{"Duck", "🦆"},
	{"Crow", "🐦"},
	{"Sparrow", "🐦"},
	{"Hummingbird", "🐦"},
	{"Woodpecker", "🐦"},
	{"Kingfisher", "🐦"},
	{"Falcon", "🦅"},
	{"Ostrich", "🦃"},
	{"Pigeon", "🕊️"},
	{"Swallow", "🐦"},
	{"Cuckoo", "🐦"},
}

// Resolve returns the base category and glyph for a raw predicted label.
// It is total: every input, including the empty string, yields a value.
// Unmatched labels fall back to the first whitespace-delimited token of the
// normalized label and the generic paw glyph.
func Resolve(label model.ClassName) (string, string) {
	clean := label.Display()

	for _, entry := range categories {
		if strings.Contains(clean, entry.Category) {
			return entry.Category, entry.Glyph
		}
	}

	token := clean
	if fields := strings.Fields(clean); len(fields) > 0 {
		token = fields[0]
	}
	return token, FallbackGlyph
}

// Categories returns the table in declared order
func Categories() []Entry {
	out := make([]Entry, len(categories))
	copy(out, categories)
	return out
}
