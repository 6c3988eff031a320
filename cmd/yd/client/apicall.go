package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"strings"

	"github.com/OnitiFR/yd/common"
	"github.com/blang/semver/v4"
	"github.com/c2h5oh/datasize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// API describes the basic elements to call the API
type API struct {
	ServerURL string
	HTTP      *http.Client
}

// APICall describes a call to the API
type APICall struct {
	api          *API
	Method       string
	Path         string
	JSONBody     interface{}
	JSONCallback func(io.Reader, http.Header) error
	DestFilePath string
	DestStream   io.Writer
}

// NewAPI create a new API instance
func NewAPI(server string) *API {
	return &API{
		ServerURL: strings.TrimRight(server, "/"),
		HTTP:      http.DefaultClient,
	}
}

// NewCall create a new APICall
func (api *API) NewCall(method string, path string) *APICall {
	return &APICall{
		api:    api,
		Method: method,
		Path:   path,
	}
}

// Do the actual API call. A response outside the 2xx range gives a
// *StatusError, everything preventing a usable response gives a
// *TransportError.
func (call *APICall) Do(ctx context.Context) error {
	method := strings.ToUpper(call.Method)

	// the path is already escaped by the caller and must not be cleaned,
	// a "/" or a dot segment in a filename would change the target
	serverURL, err := common.CleanURL(call.api.ServerURL)
	if err != nil {
		return err
	}
	apiURL := strings.TrimRight(serverURL, "/") + "/" + strings.TrimLeft(call.Path, "/")

	var body io.Reader
	switch method {
	case http.MethodGet, http.MethodDelete:
		if call.JSONBody != nil {
			return fmt.Errorf("no request body allowed with method %s", method)
		}
	case http.MethodPost, http.MethodPut:
		if call.JSONBody != nil {
			data, errM := json.Marshal(call.JSONBody)
			if errM != nil {
				return errM
			}
			body = bytes.NewReader(data)
		}
	default:
		return fmt.Errorf("apicall does not support '%s' yet", method)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, body)
	if err != nil {
		return err
	}

	requestID := uuid.New().String()
	req.Header.Set("User-Agent", common.UserAgent)
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	Log.WithField("request_id", requestID).Debugf("%s %s", method, apiURL)

	resp, err := call.api.HTTP.Do(req)
	if err != nil {
		return &TransportError{Op: method + " " + call.Path, Err: err}
	}
	defer resp.Body.Close()

	checkClientVersion(resp.Header)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return &TransportError{Op: method + " " + call.Path, Err: err}
		}
		return &StatusError{
			Code:   resp.StatusCode,
			Status: resp.Status,
			Body:   data,
		}
	}

	switch {
	case call.DestFilePath != "":
		if err := downloadFile(call.DestFilePath, resp); err != nil {
			return fmt.Errorf("download to %s: %w", call.DestFilePath, err)
		}
	case call.DestStream != nil:
		if _, err := io.Copy(call.DestStream, resp.Body); err != nil {
			return &TransportError{Op: method + " " + call.Path, Err: err}
		}
	case call.JSONCallback != nil:
		mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
		if mediaType != "application/json" {
			return &TransportError{
				Op:  method + " " + call.Path,
				Err: fmt.Errorf("unsupported content type '%s'", resp.Header.Get("Content-Type")),
			}
		}
		if err := call.JSONCallback(resp.Body, resp.Header); err != nil {
			return &TransportError{Op: method + " " + call.Path, Err: err}
		}
	default:
		// 2xx with no expected content (DELETE)
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	return nil
}

// DecodeJSON returns a JSONCallback decoding the response into dest
func DecodeJSON(dest interface{}) func(io.Reader, http.Header) error {
	return func(reader io.Reader, _ http.Header) error {
		return json.NewDecoder(reader).Decode(dest)
	}
}

func checkClientVersion(headers http.Header) {
	latestClientVersionKnownByServer := headers.Get("Latest-Known-Client-Version")
	if latestClientVersionKnownByServer == "" {
		return
	}
	verFromServer, err1 := semver.Make(latestClientVersionKnownByServer)
	verSelf, err2 := semver.Make(common.ClientVersion)
	if err1 == nil && err2 == nil && verFromServer.GT(verSelf) {
		green := color.New(color.FgHiGreen).SprintFunc()
		yellow := color.New(color.FgHiYellow).SprintFunc()
		msg := fmt.Sprintf("According to the server, a client update is available: %s → %s\n", yellow(common.ClientVersion), green(latestClientVersionKnownByServer))
		msg = msg + "Update:\n    go install github.com/OnitiFR/yd/cmd/yd@latest\n"
		GetExitMessage().SetMessage(msg)
	}
}

func downloadFile(filename string, resp *http.Response) error {
	file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("file '%s' already exists", filename)
	}
	if err != nil {
		return err
	}
	defer file.Close()

	tty := isatty.IsTerminal(os.Stdout.Fd())
	if tty {
		fmt.Printf("downloading %s…\n", common.PrintableText(filename))
	}

	var bar io.Writer
	if tty {
		bar = progressbar.DefaultBytes(
			resp.ContentLength,
			"",
		)
	} else {
		bar = io.Discard
	}

	bytesWritten, err := io.Copy(io.MultiWriter(file, bar), resp.Body)
	if err != nil {
		file.Close()
		os.Remove(filename)
		return err
	}

	if tty {
		fmt.Printf("finished, downloaded %s\n", (datasize.ByteSize(bytesWritten) * datasize.B).HR())
	}
	return nil
}

func decodeBody(body []byte, dest interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("empty body")
	}
	return json.Unmarshal(body, dest)
}
