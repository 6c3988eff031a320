package common

import (
	"errors"
	"strings"
)

// URL validation errors, messages are shown as-is to the user
var (
	ErrEmptyURL       = errors.New("YouTube URL을 입력해주세요!")
	ErrUnsupportedURL = errors.New("올바른 YouTube URL을 입력해주세요!")
)

// VideoHostMarkers are the substrings identifying a supported video URL
var VideoHostMarkers = []string{"youtube.com", "youtu.be"}

// ValidateURL checks a video URL before any request is sent: it must
// not be blank and must contain one of VideoHostMarkers.
func ValidateURL(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyURL
	}
	for _, marker := range VideoHostMarkers {
		if strings.Contains(url, marker) {
			return nil
		}
	}
	return ErrUnsupportedURL
}
