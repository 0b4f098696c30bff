package model

import (
	"encoding/base64"
	"time"
)

// StagedImage is the currently selected image plus its preview representation.
// The session holds at most one; selecting a new image replaces it wholesale.
type StagedImage struct {
	ID          string // unique per selection, used for staleness checks
	Name        string // original filename
	MIMEType    string // e.g. "image/jpeg"
	Size        int64  // size of Data in bytes
	Data        []byte // original file bytes, sent to the backend
	Preview     []byte // displayable preview bytes (possibly downscaled)
	PreviewMIME string // media type of Preview
	SelectedAt  time.Time
}

// PreviewURI returns the preview as a displayable data URI
func (si *StagedImage) PreviewURI() string {
	if len(si.Preview) == 0 {
		return ""
	}
	return "data:" + si.PreviewMIME + ";base64," + base64.StdEncoding.EncodeToString(si.Preview)
}
