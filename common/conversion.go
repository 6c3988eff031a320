package common

// UnknownErrorMessage is displayed when the backend gives no reason
const UnknownErrorMessage = "알 수 없는 오류"

// APIConversionRequest is the payload of POST /download
type APIConversionRequest struct {
	URL    string `json:"url"`
	Format Format `json:"format"`
}

// APIConversionResult is the response of POST /download, successful or not
type APIConversionResult struct {
	Success     bool   `json:"success"`
	Title       string `json:"title,omitempty"`
	Format      string `json:"format,omitempty"`
	Filename    string `json:"filename,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

// ErrorMessage returns the best failure reason supplied by the backend:
// detail, then error, then a generic message.
func (r *APIConversionResult) ErrorMessage() string {
	if r == nil {
		return UnknownErrorMessage
	}
	return StringNotEmptyCoalesce(r.Detail, r.Error, UnknownErrorMessage)
}
