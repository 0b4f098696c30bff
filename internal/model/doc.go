package model

// Package model defines domain data structures used across the app: class
// names, the staged image, prediction results, feedback submissions, and the
// session phase enums. Structures are designed for direct rendering in the UI
// and explicit state transitions.
