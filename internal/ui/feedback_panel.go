package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/model"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/session"
)

// FeedbackPanel renders the correction surface: the toggle that appears once
// a prediction exists, and the collapsible panel with the class selector and
// submit action.
type FeedbackPanel struct {
	toggleBtn *widget.Button
	selector  *widget.Select
	submitBtn *widget.Button
	panel     *fyne.Container
	box       *fyne.Container

	onToggle func()
	onSubmit func(displayName string)
}

// NewFeedbackPanel creates a hidden feedback panel
func NewFeedbackPanel() *FeedbackPanel {
	fp := &FeedbackPanel{}

	fp.toggleBtn = widget.NewButton(TextFeedbackToggle, func() {
		if fp.onToggle != nil {
			fp.onToggle()
		}
	})
	fp.toggleBtn.Importance = widget.LowImportance

	fp.selector = widget.NewSelect(nil, nil)
	fp.selector.PlaceHolder = TextSelectClass

	fp.submitBtn = widget.NewButton(IconCheck+" "+TextSubmitCorrection, func() {
		if fp.onSubmit != nil {
			fp.onSubmit(fp.selector.Selected)
		}
	})

	fp.panel = container.NewVBox(
		widget.NewLabel("Not quite right? Pick the correct class:"),
		fp.selector,
		fp.submitBtn,
	)
	fp.panel.Hide()

	fp.box = container.NewVBox(container.NewCenter(fp.toggleBtn), fp.panel)
	fp.box.Hide()

	return fp
}

// SetCallbacks sets the toggle and submit handlers
func (fp *FeedbackPanel) SetCallbacks(onToggle func(), onSubmit func(displayName string)) {
	fp.onToggle = onToggle
	fp.onSubmit = onSubmit
}

// Container returns the panel's root container
func (fp *FeedbackPanel) Container() *fyne.Container {
	return fp.box
}

// SetOptions replaces the selector options with catalog display names
func (fp *FeedbackPanel) SetOptions(displayNames []string) {
	fp.selector.Options = displayNames
	fp.selector.Refresh()
}

// Update re-renders the panel from a session snapshot
func (fp *FeedbackPanel) Update(snap session.Snapshot) {
	if snap.Feedback == model.FeedbackHidden {
		fp.box.Hide()
		return
	}
	fp.box.Show()

	if snap.Feedback.PanelVisible() {
		fp.panel.Show()
	} else {
		fp.panel.Hide()
	}

	switch snap.Feedback {
	case model.FeedbackSending:
		fp.submitBtn.SetText(TextSubmitBusy)
		fp.submitBtn.Disable()
	case model.FeedbackSubmitted:
		fp.submitBtn.SetText(IconCheck + " " + TextSubmitted)
		fp.submitBtn.Disable()
	default:
		fp.submitBtn.SetText(IconCheck + " " + TextSubmitCorrection)
		fp.submitBtn.Enable()
	}

	fp.box.Refresh()
}
