package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/backend"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/config"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.saif123-tech.animal-classifier"
	AppName = "Animal Classifier"

	// EnvBaseURL overrides the saved backend URL for the current run
	// without persisting it.
	EnvBaseURL = "ANIMAL_CLASSIFIER_API"

	WindowWidth  = 480
	WindowHeight = 640
)

func main() {
	// Load .env if present; absence is not an error
	_ = godotenv.Load()

	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	baseURL := settings.GetServerBaseURL()
	if env := os.Getenv(EnvBaseURL); env != "" {
		baseURL = env
	}

	api := backend.NewClient(baseURL, settings.GetRequestTimeout())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, api, settings)

	// Show and run
	myWindow.ShowAndRun()
}
