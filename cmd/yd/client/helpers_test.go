package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/OnitiFR/yd/common"
)

// fakeBackend records requests and answers with per-route handlers
type fakeBackend struct {
	t      *testing.T
	server *httptest.Server

	mutex    sync.Mutex
	hits     map[string]int
	requests []*http.Request
	bodies   []common.APIConversionRequest
	handlers map[string]http.HandlerFunc
}

func newFakeBackend(t *testing.T) *fakeBackend {
	b := &fakeBackend{
		t:        t,
		hits:     make(map[string]int),
		handlers: make(map[string]http.HandlerFunc),
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.server.Close)
	return b
}

// route key is "METHOD /path" using the escaped path
func (b *fakeBackend) handle(route string, h http.HandlerFunc) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.handlers[route] = h
}

func (b *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + r.URL.EscapedPath()

	b.mutex.Lock()
	b.hits[route]++
	b.requests = append(b.requests, r)
	if r.Method == http.MethodPost && r.URL.Path == "/download" {
		var req common.APIConversionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.bodies = append(b.bodies, req)
	}
	h, ok := b.handlers[route]
	b.mutex.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func (b *fakeBackend) count(route string) int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.hits[route]
}

func (b *fakeBackend) total() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return len(b.requests)
}

func (b *fakeBackend) requestURIs() []string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	uris := make([]string, 0, len(b.requests))
	for _, r := range b.requests {
		uris = append(uris, r.Method+" "+r.RequestURI)
	}
	return uris
}

func (b *fakeBackend) lastConversion() common.APIConversionRequest {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if len(b.bodies) == 0 {
		b.t.Fatalf("no conversion request received")
	}
	return b.bodies[len(b.bodies)-1]
}

func (b *fakeBackend) api() *API {
	return NewAPI(b.server.URL)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func filesHandler(files ...common.APIFileListEntry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, common.APIFileList{Files: files})
	}
}

type statusCall struct {
	Kind    StatusKind
	Message string
}

// recordingView keeps every call made by the client
type recordingView struct {
	mutex    sync.Mutex
	statuses []statusCall
	busy     []bool
	renders  []common.APIFileListEntries
	notices  []string
	options  [][]FormatOption
}

func (v *recordingView) ShowStatus(kind StatusKind, message string) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.statuses = append(v.statuses, statusCall{kind, message})
}

func (v *recordingView) SetBusy(busy bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.busy = append(v.busy, busy)
}

func (v *recordingView) RenderFiles(files common.APIFileListEntries) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.renders = append(v.renders, files)
}

func (v *recordingView) Notify(message string) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.notices = append(v.notices, message)
}

func (v *recordingView) MarkFormat(options []FormatOption) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.options = append(v.options, options)
}

func (v *recordingView) lastStatus() statusCall {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	if len(v.statuses) == 0 {
		return statusCall{}
	}
	return v.statuses[len(v.statuses)-1]
}

func (v *recordingView) renderCount() int {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return len(v.renders)
}

func (v *recordingView) lastRender() common.APIFileListEntries {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	if len(v.renders) == 0 {
		return nil
	}
	return v.renders[len(v.renders)-1]
}

// lastBusy returns the final busy state (false when never set)
func (v *recordingView) lastBusy() bool {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	if len(v.busy) == 0 {
		return false
	}
	return v.busy[len(v.busy)-1]
}

func answer(yes bool) (Confirmer, *int) {
	asked := 0
	return ConfirmFunc(func(string) bool {
		asked++
		return yes
	}), &asked
}

func escapedForTest(name string) string {
	return url.PathEscape(name)
}
