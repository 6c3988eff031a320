package common

import "strconv"

// FormatRemain renders a remaining lifetime in seconds using a single,
// truncated unit: seconds below a minute, minutes below an hour, then hours.
func FormatRemain(sec int) string {
	if sec < 0 {
		sec = 0
	}
	switch {
	case sec < 60:
		return strconv.Itoa(sec) + "초"
	case sec < 3600:
		return strconv.Itoa(sec/60) + "분"
	default:
		return strconv.Itoa(sec/3600) + "시간"
	}
}
