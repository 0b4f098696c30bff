package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/notify"
)

// ToastArea renders the transient notification queue. The queue owns all
// timing (TTL and exit grace); this component only draws snapshots.
type ToastArea struct {
	box *fyne.Container
}

// NewToastArea creates an empty toast area
func NewToastArea() *ToastArea {
	return &ToastArea{box: container.NewVBox()}
}

// Container returns the area's root container
func (ta *ToastArea) Container() *fyne.Container {
	return ta.box
}

// Render replaces the visible toasts with the given queue snapshot, in FIFO
// insertion order. Exiting toasts are rendered dimmed until the queue
// detaches them.
func (ta *ToastArea) Render(active []notify.Notification) {
	ta.box.RemoveAll()

	for _, n := range active {
		label := widget.NewLabel(severityIcon(n.Severity) + " " + n.Text)
		label.Wrapping = fyne.TextWrapWord
		if n.Exiting {
			label.Importance = widget.LowImportance
		} else {
			label.Importance = severityImportance(n.Severity)
		}
		ta.box.Add(label)
	}

	if len(active) == 0 {
		ta.box.Hide()
	} else {
		ta.box.Show()
	}
	ta.box.Refresh()
}

func severityIcon(severity notify.Severity) string {
	switch severity {
	case notify.SeveritySuccess:
		return IconSuccess
	case notify.SeverityError:
		return IconError
	default:
		return IconInfo
	}
}

func severityImportance(severity notify.Severity) widget.Importance {
	switch severity {
	case notify.SeveritySuccess:
		return widget.SuccessImportance
	case notify.SeverityError:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}
