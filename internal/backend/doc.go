package backend

// Package backend implements the HTTP client for the classification API. It
// covers the class catalog, prediction, feedback, and health endpoints, and
// translates transport failures and payload-reported errors into typed
// errors the session can act on.
