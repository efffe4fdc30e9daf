package models

import "testing"

func TestValidAttendanceStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: "Present", want: true},
		{status: "Absent", want: true},
		{status: "Half-day", want: true},
		{status: "Halfday", want: false},
		{status: "half-day", want: false},
		{status: "", want: false},
	}

	for _, tt := range tests {
		if got := ValidAttendanceStatus(tt.status); got != tt.want {
			t.Errorf("ValidAttendanceStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
