package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the upload controller, the
// prediction session, and the class catalog, and renders session snapshots,
// toasts, and settings.
