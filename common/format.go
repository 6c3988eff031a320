package common

import (
	"errors"
	"fmt"
	"strings"
)

// Format is an output format understood by the conversion backend
type Format string

// Supported formats
const (
	FormatMP3 Format = "mp3"
	FormatMP4 Format = "mp4"
)

// DefaultFormat is selected at startup
const DefaultFormat = FormatMP3

// Formats lists every supported format, in display order
var Formats = []Format{FormatMP3, FormatMP4}

// ErrUnknownFormat is returned by ParseFormat
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat returns the Format matching s (case insensitive)
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w '%s' (supported: %s)", ErrUnknownFormat, s, FormatNames())
}

// FormatNames returns supported formats as a comma separated string
func FormatNames() string {
	names := make([]string, 0, len(Formats))
	for _, f := range Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
