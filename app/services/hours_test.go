package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestWorkedHours(t *testing.T) {
	tests := []struct {
		name     string
		punchIn  string
		punchOut string
		want     string
		wantErr  bool
	}{
		{
			name:     "standard work day",
			punchIn:  "09:00:00",
			punchOut: "17:30:00",
			want:     "8.5",
		},
		{
			name:     "full eight hours",
			punchIn:  "08:00:00",
			punchOut: "16:00:00",
			want:     "8",
		},
		{
			name:     "quarter hour",
			punchIn:  "10:00:00",
			punchOut: "10:15:00",
			want:     "0.25",
		},
		{
			name:     "zero duration",
			punchIn:  "12:00:00",
			punchOut: "12:00:00",
			want:     "0",
		},
		{
			name:     "seconds round to two places",
			punchIn:  "09:00:00",
			punchOut: "09:00:01",
			want:     "0",
		},
		{
			name:     "out before in",
			punchIn:  "17:00:00",
			punchOut: "09:00:00",
			wantErr:  true,
		},
		{
			name:     "malformed punch in",
			punchIn:  "9am",
			punchOut: "17:00:00",
			wantErr:  true,
		},
		{
			name:     "malformed punch out",
			punchIn:  "09:00:00",
			punchOut: "half five",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WorkedHours(tt.punchIn, tt.punchOut)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("WorkedHours(%q, %q) expected error, got %s", tt.punchIn, tt.punchOut, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("WorkedHours(%q, %q) unexpected error: %v", tt.punchIn, tt.punchOut, err)
			}
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("WorkedHours(%q, %q) = %s, want %s", tt.punchIn, tt.punchOut, got, want)
			}
		})
	}
}

func TestOvertime(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		threshold int64
		want      string
	}{
		{name: "under threshold", month: "120", threshold: 160, want: "0"},
		{name: "exactly at threshold", month: "160", threshold: 160, want: "0"},
		{name: "over threshold", month: "172.5", threshold: 160, want: "12.5"},
		{name: "zero hours", month: "0", threshold: 160, want: "0"},
		{name: "custom threshold", month: "150", threshold: 140, want: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, _ := decimal.NewFromString(tt.month)
			want, _ := decimal.NewFromString(tt.want)
			got := Overtime(month, tt.threshold)
			if !got.Equal(want) {
				t.Errorf("Overtime(%s, %d) = %s, want %s", month, tt.threshold, got, want)
			}
		})
	}
}

func TestLeaveDays(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad test date %q: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "single day", from: "2026-03-10", to: "2026-03-10", want: 1},
		{name: "two days", from: "2026-03-10", to: "2026-03-11", want: 2},
		{name: "full week", from: "2026-03-09", to: "2026-03-15", want: 7},
		{name: "across month boundary", from: "2026-01-30", to: "2026-02-02", want: 4},
		{name: "across leap day", from: "2028-02-28", to: "2028-03-01", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LeaveDays(day(tt.from), day(tt.to))
			if got != tt.want {
				t.Errorf("LeaveDays(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
