package common

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/c2h5oh/datasize"
)

// PathExist returns true if a file or directory exists
func PathExist(path string) bool {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}

	// Stat() may fail for other reasons (ENOTDIR for things
	// like /etc/passwd/test), consider those as "not existing"
	if err != nil {
		return false
	}

	return true
}

// InterfaceValueToString converts most interface types to string
func InterfaceValueToString(iv interface{}, format string) string {

	// civ is the casted iv
	switch civ := iv.(type) {
	case int:
		if format == "remain" {
			return FormatRemain(civ)
		}
		return strconv.Itoa(civ)
	case int64:
		if format == "size" {
			return (datasize.ByteSize(civ) * datasize.B).HR()
		}
		return strconv.FormatInt(civ, 10)
	case string:
		return PrintableText(civ)
	case bool:
		return strconv.FormatBool(civ)
	case time.Duration:
		return civ.String()
	case []string:
		return PrintableText(strings.Join(civ, ", "))
	}
	return "INVALID_TYPE"
}

// CleanURL by parsing it, an empty path stays empty
func CleanURL(urlIn string) (string, error) {
	urlObj, err := url.Parse(urlIn)
	if err != nil {
		return urlIn, err
	}
	if urlObj.Path != "" {
		urlObj.Path = path.Clean(urlObj.Path)
	}
	return urlObj.String(), nil
}

// StringNotEmptyCoalesce returns the first non-empty argument
func StringNotEmptyCoalesce(args ...string) string {
	for _, elem := range args {
		if len(elem) > 0 {
			return elem
		}
	}
	return ""
}

// PrintableText makes backend-supplied text safe for a terminal: control
// characters (including ESC, so no ANSI sequence can get through) are
// replaced by their visible escaped form.
func PrintableText(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) == -1 {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			fmt.Fprintf(&b, `\x%02x`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
