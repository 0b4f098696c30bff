package ui

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/backend"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/catalog"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/config"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/model"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/notify"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/session"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/timing"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/upload"
)

// RootUI represents the main UI structure. It owns no sequencing state of its
// own: it forwards user events to the components and renders their snapshots.
type RootUI struct {
	window fyne.Window
	app    fyne.App

	settings *config.Settings
	api      backend.API
	sched    timing.Scheduler
	queue    *notify.Queue
	uploads  *upload.Controller
	session  *session.Session
	catalog  *catalog.Catalog

	// Upload surface
	uploadArea   *fyne.Container
	previewImage *canvas.Image
	previewBox   *fyne.Container
	predictBtn   *widget.Button

	// Result and feedback surfaces
	resultCard    *ResultCard
	feedbackPanel *FeedbackPanel
	toastArea     *ToastArea
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, api backend.API, settings *config.Settings) *RootUI {
	sched := timing.Real()
	queue := notify.NewQueue(sched)
	uploads := upload.NewController(queue)

	ui := &RootUI{
		window:   window,
		app:      app,
		settings: settings,
		api:      api,
		sched:    sched,
		queue:    queue,
		uploads:  uploads,
		session:  session.New(api, uploads, queue, sched),
		catalog:  catalog.New(api),
	}

	ui.setupUI()

	queue.SetChangeCallback(ui.onNotificationsChanged)
	uploads.SetChangeCallback(ui.onImageChanged)
	ui.session.SetUpdateCallback(ui.onSessionUpdate)

	window.SetOnDropped(ui.onDropped)

	// Populate the catalog and probe the backend without blocking startup.
	go ui.loadCatalog()
	go ui.checkHealth()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Upload area: picker button shown while no image is staged
	chooseBtn := widget.NewButton(IconFolder+" "+TextChooseImage, ui.onChooseImage)
	chooseBtn.Importance = widget.HighImportance
	dropHint := widget.NewLabel(TextDropHint)
	dropHint.Alignment = fyne.TextAlignCenter
	ui.uploadArea = container.NewVBox(container.NewCenter(chooseBtn), dropHint)

	// Preview surface, hidden until an image is staged
	ui.previewImage = canvas.NewImageFromResource(nil)
	ui.previewImage.FillMode = canvas.ImageFillContain
	ui.previewImage.SetMinSize(fyne.NewSize(PreviewMaxWidth, PreviewMaxHeight))

	removeBtn := widget.NewButton(IconClose+" "+TextRemoveImage, ui.onRemoveImage)
	removeBtn.Importance = widget.LowImportance

	ui.previewBox = container.NewVBox(ui.previewImage, container.NewCenter(removeBtn))
	ui.previewBox.Hide()

	ui.predictBtn = widget.NewButton(TextPredict, ui.onPredictClick)
	ui.predictBtn.Importance = widget.HighImportance
	ui.predictBtn.Disable()

	ui.resultCard = NewResultCard()
	ui.resultCard.SetCopyCallback(ui.onCopyBreed)

	ui.feedbackPanel = NewFeedbackPanel()
	ui.feedbackPanel.SetCallbacks(ui.onFeedbackToggle, ui.onSubmitCorrection)

	ui.toastArea = NewToastArea()

	title := widget.NewLabel("Animal Classifier")
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}

	content := container.NewVBox(
		title,
		ui.toastArea.Container(),
		ui.uploadArea,
		ui.previewBox,
		ui.predictBtn,
		ui.resultCard.Container(),
		ui.feedbackPanel.Container(),
	)

	ui.window.SetContent(container.NewVScroll(content))
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// loadCatalog fetches the class list and fills the correction dropdown
func (ui *RootUI) loadCatalog() {
	if err := ui.catalog.Load(context.Background()); err != nil {
		log.Printf("Error loading class options: %v", err)
		ui.queue.Error("Failed to load animal classes")
		return
	}

	names := ui.catalog.DisplayNames()
	fyne.Do(func() {
		ui.feedbackPanel.SetOptions(names)
	})
}

// checkHealth probes the backend once at startup
func (ui *RootUI) checkHealth() {
	status, err := ui.api.Health(context.Background())
	if err != nil {
		log.Printf("Backend health check failed: %v", err)
		ui.queue.Error("Classification backend is unreachable")
		return
	}
	if !status.ModelLoaded {
		ui.queue.Info("Backend is reachable but the model is still loading")
	}
}

// onChooseImage opens the file picker restricted to images
func (ui *RootUI) onChooseImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.queue.Error("Error opening file: " + err.Error())
			return
		}
		if reader == nil {
			return // cancelled
		}
		go ui.stageFromReader(reader)
	}, ui.window)
	fd.SetFilter(storage.NewMimeTypeFileFilter([]string{"image/*"}))
	fd.Show()
}

// onDropped handles files dropped anywhere on the window. Both entry points
// funnel into the same staging path, so validation is identical.
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}

	uri := uris[0]
	if !strings.HasPrefix(uri.MimeType(), "image/") {
		ui.queue.Error("Please drop a valid image file")
		return
	}

	go func() {
		reader, err := storage.Reader(uri)
		if err != nil {
			ui.queue.Error("Error opening file: " + err.Error())
			return
		}
		ui.stageFromReader(reader)
	}()
}

// stageFromReader reads the file and hands it to the upload controller
func (ui *RootUI) stageFromReader(reader fyne.URIReadCloser) {
	defer reader.Close()

	// Read one byte past the limit so oversized files are rejected by the
	// controller rather than silently truncated.
	data, err := io.ReadAll(io.LimitReader(reader, upload.MaxImageBytes+1))
	if err != nil {
		ui.queue.Error("Error reading file: " + err.Error())
		return
	}

	mimeType := reader.URI().MimeType()
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	// Validation outcomes surface as notifications inside the controller.
	ui.uploads.Select(reader.URI().Name(), mimeType, data)
}

// onImageChanged reacts to the staged image being set or cleared
func (ui *RootUI) onImageChanged(img *model.StagedImage) {
	ui.session.Reset()

	fyne.Do(func() {
		if img == nil {
			ui.previewBox.Hide()
			ui.uploadArea.Show()
			ui.predictBtn.Disable()
			return
		}

		ui.previewImage.Resource = fyne.NewStaticResource(img.Name, img.Preview)
		ui.previewImage.Refresh()
		ui.previewBox.Show()
		ui.uploadArea.Hide()
		ui.predictBtn.Enable()
	})
}

// onRemoveImage clears the staged image and all dependent state
func (ui *RootUI) onRemoveImage() {
	ui.uploads.Remove()
}

// onPredictClick starts a classification attempt
func (ui *RootUI) onPredictClick() {
	go ui.session.Predict(context.Background())
}

// onFeedbackToggle expands or collapses the correction panel
func (ui *RootUI) onFeedbackToggle() {
	ui.session.ToggleFeedback()
}

// onSubmitCorrection maps the selected display name back to its class and
// submits the correction
func (ui *RootUI) onSubmitCorrection(displayName string) {
	corrected, ok := ui.catalog.ByDisplayName(displayName)
	if !ok {
		ui.queue.Error("Please select a correct class")
		return
	}
	go ui.session.SubmitFeedback(context.Background(), corrected)
}

// onCopyBreed copies the displayed breed name to the system clipboard
func (ui *RootUI) onCopyBreed() {
	breed := ui.session.CurrentBreed()
	if breed == "" {
		return
	}

	clipboard := ui.app.Clipboard()
	if clipboard == nil {
		log.Printf("Failed to copy: no clipboard available")
		ui.queue.Error("Failed to copy breed name")
		return
	}

	clipboard.SetContent(breed)
	ui.resultCard.ShowCopyAck()
	ui.queue.PushFor("Breed name copied to clipboard", notify.SeveritySuccess, timing.CopyAckNotificationTTL)

	ui.sched.AfterFunc(timing.CopyAckRevert, func() {
		fyne.Do(ui.resultCard.RevertCopyAck)
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, func() {
		ui.queue.Info("Settings saved. Restart the app to apply the new backend URL.")
	}).Show()
}

// onSessionUpdate renders a session snapshot
func (ui *RootUI) onSessionUpdate(snap session.Snapshot) {
	fyne.Do(func() {
		if snap.Phase.IsBusy() {
			ui.predictBtn.SetText(TextPredictBusy)
			ui.predictBtn.Disable()
		} else {
			ui.predictBtn.SetText(TextPredict)
			if snap.CanPredict {
				ui.predictBtn.Enable()
			} else {
				ui.predictBtn.Disable()
			}
		}

		ui.resultCard.Update(snap)
		ui.feedbackPanel.Update(snap)
	})
}

// onNotificationsChanged renders the toast queue
func (ui *RootUI) onNotificationsChanged(active []notify.Notification) {
	fyne.Do(func() {
		ui.toastArea.Render(active)
	})
}
