package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/model"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/session"
)

// ResultCard renders the prediction display: the category glyph, the base
// category label, and the breed row that appears after the staged reveal.
type ResultCard struct {
	glyph      *canvas.Text
	category   *canvas.Text
	breed      *widget.Label
	confidence *widget.Label
	copyBtn    *widget.Button
	breedRow   *fyne.Container
	box        *fyne.Container

	onCopy func()
}

// NewResultCard creates a hidden result card
func NewResultCard() *ResultCard {
	rc := &ResultCard{}

	rc.glyph = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	rc.glyph.TextSize = GlyphTextSize
	rc.glyph.Alignment = fyne.TextAlignCenter

	rc.category = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	rc.category.TextSize = CategoryTextSize
	rc.category.TextStyle = fyne.TextStyle{Bold: true}
	rc.category.Alignment = fyne.TextAlignCenter

	rc.breed = widget.NewLabel("")
	rc.breed.Alignment = fyne.TextAlignCenter
	rc.breed.TextStyle = fyne.TextStyle{Bold: true}

	rc.confidence = widget.NewLabel("")
	rc.confidence.Alignment = fyne.TextAlignCenter

	rc.copyBtn = widget.NewButton(IconCopy+" "+TextCopyBreed, func() {
		if rc.onCopy != nil {
			rc.onCopy()
		}
	})
	rc.copyBtn.Importance = widget.LowImportance

	rc.breedRow = container.NewVBox(rc.breed, rc.confidence, container.NewCenter(rc.copyBtn))

	rc.box = container.NewVBox(
		widget.NewSeparator(),
		rc.glyph,
		rc.category,
		rc.breedRow,
	)
	rc.box.Hide()

	return rc
}

// SetCopyCallback sets the handler for the breed-copy action
func (rc *ResultCard) SetCopyCallback(cb func()) {
	rc.onCopy = cb
}

// Container returns the card's root container
func (rc *ResultCard) Container() *fyne.Container {
	return rc.box
}

// Update re-renders the card from a session snapshot
func (rc *ResultCard) Update(snap session.Snapshot) {
	if !snap.Phase.HasResult() && snap.Phase != model.PhaseError {
		rc.box.Hide()
		return
	}

	rc.glyph.Text = snap.Glyph
	rc.glyph.Refresh()
	rc.category.Text = snap.Category
	rc.category.Refresh()

	if snap.ShowBreed {
		rc.breed.SetText(snap.Breed)
		rc.confidence.SetText(snap.Confidence)
		rc.breedRow.Show()
	} else {
		rc.breedRow.Hide()
	}

	if snap.CanCopyBreed {
		rc.copyBtn.Show()
	} else {
		rc.copyBtn.Hide()
	}

	rc.box.Show()
	rc.box.Refresh()
}

// ShowCopyAck switches the copy button into its acknowledgment state
func (rc *ResultCard) ShowCopyAck() {
	rc.copyBtn.SetText(IconCheck + " " + TextCopied)
}

// RevertCopyAck restores the copy button after the acknowledgment period
func (rc *ResultCard) RevertCopyAck() {
	rc.copyBtn.SetText(IconCopy + " " + TextCopyBreed)
}
