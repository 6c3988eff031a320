package client

import "github.com/OnitiFR/yd/common"

// StatusKind classifies a status message
type StatusKind string

// Status kinds
const (
	StatusLoading StatusKind = "loading"
	StatusSuccess StatusKind = "success"
	StatusFailed  StatusKind = "error"
)

// View is what the FileListClient renders to. Implementations must
// display every text literally.
type View interface {
	// ShowStatus replaces the current status message
	ShowStatus(kind StatusKind, message string)
	// SetBusy enables (false) or disables (true) conversion submission
	SetBusy(busy bool)
	// RenderFiles replaces the whole file list
	RenderFiles(files common.APIFileListEntries)
	// Notify shows a one-off notice (failed deletion, ...)
	Notify(message string)
	// MarkFormat marks options as selected or not
	MarkFormat(options []FormatOption)
}

// Confirmer asks the user an explicit yes/no question
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to a Confirmer
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}
