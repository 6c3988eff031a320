package topics

import (
	"os"

	"github.com/OnitiFR/yd/cmd/yd/client"
)

// shownError is an error the view already displayed to the user
type shownError struct {
	err error
}

func (e *shownError) Error() string {
	return e.err.Error()
}

func (e *shownError) Unwrap() error {
	return e.err
}

func shown(err error) error {
	if err == nil {
		return nil
	}
	return &shownError{err: err}
}

func newTermView() *client.TermView {
	return client.NewTermView(os.Stdout, os.Stderr)
}

// newFileListClient creates a client using global settings, the
// configured format is selected silently
func newFileListClient(view client.View, confirm client.Confirmer) *client.FileListClient {
	c := client.NewFileListClient(
		client.GlobalAPI,
		view,
		confirm,
		client.GlobalConfig.Refresh,
	)
	c.State().Select(client.GlobalConfig.Format)
	return c
}
