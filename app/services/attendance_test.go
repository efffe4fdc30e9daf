package services

import (
	"encoding/json"
	"errors"
	"testing"
)

func strptr(s string) *string { return &s }

func TestNextPunchEvent(t *testing.T) {
	tests := []struct {
		name     string
		punchIn  *string
		punchOut *string
		want     PunchEvent
		wantErr  error
	}{
		{
			name: "no record routes to punch in",
			want: PunchIn,
		},
		{
			name:    "punched in routes to punch out",
			punchIn: strptr("09:00:00"),
			want:    PunchOut,
		},
		{
			name:     "completed day accepts nothing",
			punchIn:  strptr("09:00:00"),
			punchOut: strptr("17:30:00"),
			wantErr:  ErrAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextPunchEvent(tt.punchIn, tt.punchOut)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NextPunchEvent() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NextPunchEvent() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextPunchEvent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatsResponseKeys(t *testing.T) {
	hourKeys := []string{"total_hours_month", "total_hours_week", "total_hours_year", "overtime_hours"}

	tests := []struct {
		name     string
		payload  interface{}
		wantKeys []string
	}{
		{
			name:     "per user stats",
			payload:  &AttendanceStats{},
			wantKeys: hourKeys,
		},
		{
			name:     "all users stats carry the same aggregate keys",
			payload:  &AllStats{Records: []AttendanceRecord{}},
			wantKeys: append(append([]string{}, hourKeys...), "records"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.payload)
			if err != nil {
				t.Fatalf("marshal %T: %v", tt.payload, err)
			}

			var got map[string]json.RawMessage
			if err := json.Unmarshal(raw, &got); err != nil {
				t.Fatalf("unmarshal %s: %v", raw, err)
			}
			for _, key := range tt.wantKeys {
				if _, ok := got[key]; !ok {
					t.Errorf("response %s is missing key %q", raw, key)
				}
			}
		})
	}
}

func TestStatsAllRequiresPermission(t *testing.T) {
	svc := NewAttendanceService(nil, stubOracle{}, 160)

	_, err := svc.StatsAll("some-user")
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("StatsAll without read/attendance: error = %v, want %v", err, ErrPermissionDenied)
	}
}
