package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/OnitiFR/yd/common"
	"github.com/sirupsen/logrus"
)

// DefaultRefreshInterval between two automatic file list refreshes
const DefaultRefreshInterval = 30 * time.Minute

// user-facing messages
const (
	msgConvertStart  = "🔄 변환을 시작합니다..."
	msgDeleteConfirm = "정말 삭제하시겠습니까?"
	msgDeleteFailed  = "삭제 실패"
	msgDeleteError   = "삭제 중 오류 발생"
)

// TickerFunc returns a channel firing every d and a stop function
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func timeTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// FileListClient keeps a View in sync with the files retained by the
// backend and dispatches conversion, deletion and download actions.
type FileListClient struct {
	api      *API
	state    *State
	view     View
	confirm  Confirmer
	interval time.Duration
	ticker   TickerFunc

	// refresh ordering: issued is bumped when a fetch starts, rendered
	// holds the sequence of the snapshot currently displayed
	seqMutex    sync.Mutex
	issued      uint64
	renderMutex sync.Mutex
	rendered    uint64
}

// Option configures a FileListClient
type Option func(*FileListClient)

// WithTicker replaces the time source of Run
func WithTicker(ticker TickerFunc) Option {
	return func(c *FileListClient) {
		c.ticker = ticker
	}
}

// WithState shares an existing State
func WithState(state *State) Option {
	return func(c *FileListClient) {
		c.state = state
	}
}

// NewFileListClient creates a client rendering to view. A zero or
// negative interval means DefaultRefreshInterval.
func NewFileListClient(api *API, view View, confirm Confirmer, interval time.Duration, options ...Option) *FileListClient {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	c := &FileListClient{
		api:      api,
		state:    NewState(),
		view:     view,
		confirm:  confirm,
		interval: interval,
		ticker:   timeTicker,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// State returns the client state
func (c *FileListClient) State() *State {
	return c.state
}

// SelectFormat changes the format used by the next conversions
func (c *FileListClient) SelectFormat(f common.Format) {
	c.state.Select(f)
	c.view.MarkFormat(c.state.Options())
}

// SubmitConversion validates rawURL and asks the backend to convert it
// using the selected format. On success the file list is refreshed.
func (c *FileListClient) SubmitConversion(ctx context.Context, rawURL string) (*common.APIConversionResult, error) {
	videoURL := strings.TrimSpace(rawURL)
	if err := common.ValidateURL(videoURL); err != nil {
		c.view.ShowStatus(StatusFailed, "❌ "+err.Error())
		return nil, err
	}

	if !c.state.tryBegin() {
		return nil, ErrBusy
	}
	c.view.SetBusy(true)
	defer func() {
		c.state.end()
		c.view.SetBusy(false)
	}()

	format := c.state.Format()
	c.view.ShowStatus(StatusLoading, msgConvertStart)

	var result common.APIConversionResult
	call := c.api.NewCall(http.MethodPost, "/download")
	call.JSONBody = &common.APIConversionRequest{
		URL:    videoURL,
		Format: format,
	}
	call.JSONCallback = DecodeJSON(&result)

	err := call.Do(ctx)

	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		// the backend explains itself in the body (FastAPI style {"detail": ...})
		var failed common.APIConversionResult
		if jsonErr := decodeBody(statusErr.Body, &failed); jsonErr != nil {
			Log.Debugf("conversion error body: %s", jsonErr)
		}
		msg := failed.ErrorMessage()
		c.view.ShowStatus(StatusFailed, "❌ 오류: "+msg)
		return &failed, &ConversionError{Code: statusErr.Code, Message: msg}
	case err != nil:
		c.view.ShowStatus(StatusFailed, "❌ 네트워크 오류: "+networkCause(err))
		return nil, err
	case !result.Success:
		msg := result.ErrorMessage()
		c.view.ShowStatus(StatusFailed, "❌ 오류: "+msg)
		return &result, &ConversionError{Message: msg}
	}

	Log.WithFields(logrus.Fields{
		"title":    result.Title,
		"filename": result.Filename,
		"format":   format,
	}).Debug("conversion done")

	c.view.ShowStatus(StatusSuccess, fmt.Sprintf("✅ \"%s\" 변환 완료!", result.Title))
	_ = c.RefreshFileList(ctx)
	return &result, nil
}

// RefreshFileList fetches the file list and replaces the view's list.
// Failures are only logged: the previous list stays displayed. A fetch
// finishing after a more recently issued one already rendered is dropped.
// A failed fetch renders nothing, so an older fetch completing after it
// is still rendered: the latest issued success wins.
func (c *FileListClient) RefreshFileList(ctx context.Context) error {
	c.seqMutex.Lock()
	c.issued++
	seq := c.issued
	c.seqMutex.Unlock()

	var data common.APIFileList
	call := c.api.NewCall(http.MethodGet, "/files")
	call.JSONCallback = DecodeJSON(&data)

	if err := call.Do(ctx); err != nil {
		Log.WithField("seq", seq).Debugf("file list refresh failed: %s", err)
		return err
	}

	files := data.Files
	if files == nil {
		files = common.APIFileListEntries{}
	}

	c.renderMutex.Lock()
	defer c.renderMutex.Unlock()
	if seq < c.rendered {
		Log.WithField("seq", seq).Debug("stale file list dropped")
		return nil
	}
	c.rendered = seq
	c.view.RenderFiles(files)
	return nil
}

// DeleteFile asks for confirmation then deletes filename on the backend.
// ErrCanceled is returned if the user declines.
func (c *FileListClient) DeleteFile(ctx context.Context, filename string) error {
	if c.confirm == nil || !c.confirm.Confirm(msgDeleteConfirm) {
		return ErrCanceled
	}

	call := c.api.NewCall(http.MethodDelete, "/files/"+url.PathEscape(filename))
	err := call.Do(ctx)

	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		c.view.Notify(msgDeleteFailed)
		return err
	case err != nil:
		c.view.Notify(msgDeleteError)
		return err
	}

	_ = c.RefreshFileList(ctx)
	return nil
}

// DownloadPath returns the backend path serving filename
func DownloadPath(filename string) string {
	return "/downloads/" + url.PathEscape(filename)
}

// DownloadURL returns the absolute URL serving filename
func (c *FileListClient) DownloadURL(filename string) string {
	return c.api.ServerURL + DownloadPath(filename)
}

// DownloadFile stores filename in destDir, an existing local file is
// never overwritten. It returns the local path.
func (c *FileListClient) DownloadFile(ctx context.Context, filename string, destDir string) (string, error) {
	base := filepath.Base(filepath.Clean("/" + filename))
	if base == "/" || base == "." {
		return "", fmt.Errorf("invalid filename '%s'", filename)
	}
	dest := filepath.Join(destDir, base)
	if common.PathExist(dest) {
		return "", fmt.Errorf("file '%s' already exists", dest)
	}

	call := c.api.NewCall(http.MethodGet, DownloadPath(filename))
	call.DestFilePath = dest
	if err := call.Do(ctx); err != nil {
		return "", err
	}
	return dest, nil
}

// Run refreshes the file list now, then every interval, until ctx is done.
// Refresh errors never stop the loop.
func (c *FileListClient) Run(ctx context.Context) {
	_ = c.RefreshFileList(ctx)

	tick, stop := c.ticker(c.interval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			_ = c.RefreshFileList(ctx)
		}
	}
}

func networkCause(err error) string {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		var urlErr *url.Error
		if errors.As(transportErr.Err, &urlErr) {
			return urlErr.Err.Error()
		}
		return transportErr.Err.Error()
	}
	return err.Error()
}
