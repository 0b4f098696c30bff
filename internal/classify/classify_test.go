package classify

import (
	"testing"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/model"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		label    model.ClassName
		category string
		glyph    string
	}{
		{"Golden_Retriever Dog", "Dog", "🐶"},
		{"Dog", "Dog", "🐶"},
		{"Siamese_Cat", "Cat", "🐱"},
		{"Bald_Eagle", "Eagle", "🦅"},
		{"Giant_Panda", "Panda", "🐼"},
		{"Pigeon", "Pigeon", "🕊️"},
	}

	for _, test := range tests {
		category, glyph := Resolve(test.label)
		if category != test.category || glyph != test.glyph {
			t.Errorf("Resolve(%q) = (%q, %q), expected (%q, %q)",
				test.label, category, glyph, test.category, test.glyph)
		}
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	// Owl is declared before Eagle, so a label containing both resolves to
	// Owl regardless of position within the label.
	category, glyph := Resolve("Eagle_Owl")
	if category != "Owl" {
		t.Errorf("Resolve(\"Eagle_Owl\") category = %q, expected \"Owl\"", category)
	}
	if glyph != "🦉" {
		t.Errorf("Resolve(\"Eagle_Owl\") glyph = %q, expected 🦉", glyph)
	}

	// Dog precedes Cat in the table.
	category, _ = Resolve("Cat_and_Dog")
	if category != "Dog" {
		t.Errorf("Resolve(\"Cat_and_Dog\") category = %q, expected \"Dog\"", category)
	}
}

func TestResolve_Fallback(t *testing.T) {
	tests := []struct {
		label    model.ClassName
		category string
	}{
		{"Axolotl", "Axolotl"},
		{"Komodo_Dragon", "Komodo"},
		{"", ""},
	}

	for _, test := range tests {
		category, glyph := Resolve(test.label)
		if category != test.category {
			t.Errorf("Resolve(%q) category = %q, expected %q", test.label, category, test.category)
		}
		if glyph != FallbackGlyph {
			t.Errorf("Resolve(%q) glyph = %q, expected fallback %q", test.label, glyph, FallbackGlyph)
		}
	}
}

func TestCategories_Order(t *testing.T) {
	entries := Categories()
	if len(entries) != 31 {
		t.Fatalf("Expected 31 category entries, got %d", len(entries))
	}
	if entries[0].Category != "Dog" {
		t.Errorf("First entry should be Dog, got %s", entries[0].Category)
	}

	owl, eagle := -1, -1
	for i, e := range entries {
		switch e.Category {
		case "Owl":
			owl = i
		case "Eagle":
			eagle = i
		}
	}
	if owl == -1 || eagle == -1 || owl > eagle {
		t.Errorf("Owl (%d) must be declared before Eagle (%d)", owl, eagle)
	}
}
