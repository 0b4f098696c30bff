package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconCopy     = "📋"
	IconCheck    = "✓"
	IconClose    = "×"
	IconInfo     = "ℹ"
	IconError    = "❌"
	IconSuccess  = "✅"
)

// Button and control texts
const (
	TextChooseImage      = "Tap to choose an image"
	TextDropHint         = "or drop a photo anywhere in the window"
	TextRemoveImage      = "Remove"
	TextPredict          = "Analyze Image"
	TextPredictBusy      = "Analyzing..."
	TextFeedbackToggle   = "Suggest a correction"
	TextSubmitCorrection = "Submit Correction"
	TextSubmitBusy       = "Submitting..."
	TextSubmitted        = "Submitted!"
	TextCopyBreed        = "Copy Breed"
	TextCopied           = "Copied!"
	TextSelectClass      = "Select correct class..."
)

// Layout sizing
const (
	PreviewMaxWidth  float32 = 360
	PreviewMaxHeight float32 = 260

	GlyphTextSize    float32 = 56
	CategoryTextSize float32 = 22

	WindowMinWidth  float32 = 480
	WindowMinHeight float32 = 640
)
