// ABOUTME: Duration formatting utilities for video lengths
// ABOUTME: Converts second counts into compact H:MM:SS / M:SS display strings

package duration

import "fmt"

// FormatSeconds converts a length in seconds to "H:MM:SS" when it spans
// an hour or more, otherwise "M:SS". Minutes and seconds are always
// zero-padded to two digits; the leading unit is not.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
