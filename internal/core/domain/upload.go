package domain

import (
	"path/filepath"
	"strings"
)

// SupportedExtension is the only document format the remote service
// accepts for upload.
const SupportedExtension = ".pdf"

// IsSupportedFile reports whether a candidate file name carries the
// accepted document format. The check is on the extension only and is
// case-insensitive; content inspection is left to the service.
func IsSupportedFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), SupportedExtension)
}

// UploadReceipt is the remote service's acknowledgement of one upload.
type UploadReceipt struct {
	// Message is the service's confirmation text.
	Message string

	// FileName is the name the service stored the file under.
	FileName string

	// Size is the stored size in bytes.
	Size int64

	// AutoDeleteIn is the retention window in minutes. The service
	// deletes uploads automatically once the window elapses.
	AutoDeleteIn int
}

// BatchResult summarises one sequential upload pass over a pending batch.
type BatchResult struct {
	// Uploaded is the number of files the service accepted.
	Uploaded int

	// Failed is the number of files that could not be uploaded,
	// whether the failure was local (unreadable file) or remote.
	Failed int
}

// Total returns the number of files attempted.
func (r BatchResult) Total() int {
	return r.Uploaded + r.Failed
}
