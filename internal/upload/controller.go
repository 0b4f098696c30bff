package upload

// Package upload implements image staging: validation of a user-selected
// file, preview derivation, and the single-slot ownership of the current
// image. Drag-and-drop and the file picker both funnel into Select, so both
// paths share identical validation.

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"log"
	"strings"
	"sync"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/model"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/notify"
)

// MaxImageBytes is the upload size limit (10 MiB)
const MaxImageBytes = 10 << 20

// previewMaxEdge bounds the longest edge of the derived preview
const previewMaxEdge = 480

// previewJPEGQuality is used when re-encoding downscaled previews
const previewJPEGQuality = 85

// Validation errors surfaced by Select
var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("image exceeds the size limit")
)

// Controller owns the staged image. At most one image is staged at a time;
// every new selection replaces it wholesale.
type Controller struct {
	notes *notify.Queue

	mu       sync.Mutex
	current  *model.StagedImage
	onChange func(*model.StagedImage)
}

// NewController creates a controller that reports validation failures to the
// given notification queue
func NewController(notes *notify.Queue) *Controller {
	return &Controller{notes: notes}
}

// SetChangeCallback sets the callback invoked with the staged image after
// every selection or removal (nil on removal)
func (c *Controller) SetChangeCallback(cb func(*model.StagedImage)) {
	c.mu.Lock()
	c.onChange = cb
	c.mu.Unlock()
}

// Select validates and stages an image. On rejection it emits exactly one
// error notification and leaves the current staged image untouched.
func (c *Controller) Select(name, mimeType string, data []byte) (*model.StagedImage, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		c.notes.Error("Please select a valid image file")
		return nil, ErrNotImage
	}
	if int64(len(data)) > MaxImageBytes {
		c.notes.Error("Image size must be less than 10MB")
		return nil, ErrTooLarge
	}

	preview, previewMIME := derivePreview(data, mimeType)

	img := &model.StagedImage{
		ID:          uuid.NewString(),
		Name:        name,
		MIMEType:    mimeType,
		Size:        int64(len(data)),
		Data:        data,
		Preview:     preview,
		PreviewMIME: previewMIME,
		SelectedAt:  time.Now(),
	}

	c.mu.Lock()
	c.current = img
	cb := c.onChange
	c.mu.Unlock()

	log.Printf("Staged image %s (%s, %d bytes)", img.Name, img.MIMEType, img.Size)

	if cb != nil {
		cb(img)
	}
	return img, nil
}

// Remove clears the staged image and notifies the change callback. Reachable
// from any state; a no-op reset when nothing is staged.
func (c *Controller) Remove() {
	c.mu.Lock()
	c.current = nil
	cb := c.onChange
	c.mu.Unlock()

	if cb != nil {
		cb(nil)
	}
}

// Current returns the staged image, or nil when none is staged
func (c *Controller) Current() *model.StagedImage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// derivePreview produces displayable preview bytes. Large images are
// downscaled and re-encoded; anything that fails to decode falls back to the
// raw bytes, since the media type alone admitted the file.
func derivePreview(data []byte, mimeType string) ([]byte, string) {
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, mimeType
	}

	bounds := decoded.Bounds()
	if bounds.Dx() <= previewMaxEdge && bounds.Dy() <= previewMaxEdge {
		return data, mimeType
	}

	thumb := resize.Thumbnail(previewMaxEdge, previewMaxEdge, decoded, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: previewJPEGQuality}); err != nil {
		return data, mimeType
	}
	return buf.Bytes(), "image/jpeg"
}
