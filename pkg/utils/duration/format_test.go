package duration

import "testing"

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{45, "0:45"},
		{60, "1:00"},
		{75, "1:15"},
		{599, "9:59"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{7200, "2:00:00"},
		{36061, "10:01:01"},
	}

	for _, tt := range tests {
		if got := FormatSeconds(tt.seconds); got != tt.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatSeconds_Negative(t *testing.T) {
	if got := FormatSeconds(-10); got != "0:00" {
		t.Errorf("FormatSeconds(-10) = %q, want 0:00", got)
	}
}
