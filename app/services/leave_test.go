package services

import (
	"errors"
	"testing"
)

// stubOracle grants only the listed "action/module" pairs.
type stubOracle struct {
	grants map[string]bool
}

func (s stubOracle) Allowed(userID, action, module string) (bool, error) {
	return s.grants[action+"/"+module], nil
}

func TestValidateLeaveRequest(t *testing.T) {
	valid := LeaveRequest{
		LeaveType: "Sick",
		LeaveFrom: "2026-04-06",
		LeaveTo:   "2026-04-08",
		Reason:    "flu",
	}

	tests := []struct {
		name     string
		mutate   func(r *LeaveRequest)
		wantDays int
		wantErr  bool
	}{
		{
			name:     "valid three day span",
			mutate:   func(r *LeaveRequest) {},
			wantDays: 3,
		},
		{
			name:     "single day span counts one",
			mutate:   func(r *LeaveRequest) { r.LeaveTo = r.LeaveFrom },
			wantDays: 1,
		},
		{
			name:    "missing leave type",
			mutate:  func(r *LeaveRequest) { r.LeaveType = "" },
			wantErr: true,
		},
		{
			name:    "missing reason",
			mutate:  func(r *LeaveRequest) { r.Reason = "  " },
			wantErr: true,
		},
		{
			name:    "unknown leave type",
			mutate:  func(r *LeaveRequest) { r.LeaveType = "Sabbatical" },
			wantErr: true,
		},
		{
			name:    "lowercase leave type rejected",
			mutate:  func(r *LeaveRequest) { r.LeaveType = "sick" },
			wantErr: true,
		},
		{
			name:    "to before from",
			mutate:  func(r *LeaveRequest) { r.LeaveTo = "2026-04-01" },
			wantErr: true,
		},
		{
			name:    "malformed from date",
			mutate:  func(r *LeaveRequest) { r.LeaveFrom = "06/04/2026" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			days, err := ValidateLeaveRequest(req)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ValidateLeaveRequest(%+v) expected error, got days=%d", req, days)
				}
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("ValidateLeaveRequest(%+v) error type = %T, want *ValidationError", req, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateLeaveRequest(%+v) unexpected error: %v", req, err)
			}
			if days != tt.wantDays {
				t.Errorf("ValidateLeaveRequest(%+v) days = %d, want %d", req, days, tt.wantDays)
			}
		})
	}
}

func TestCheckLeaveBalance(t *testing.T) {
	tests := []struct {
		name      string
		days      int
		monthly   int
		yearly    int
		wantBound string
	}{
		{
			name:    "both balances cover the span",
			days:    2,
			monthly: 2,
			yearly:  24,
		},
		{
			name:      "three days against monthly balance of two",
			days:      3,
			monthly:   2,
			yearly:    24,
			wantBound: "monthly",
		},
		{
			name:      "yearly balance exhausted",
			days:      3,
			monthly:   5,
			yearly:    2,
			wantBound: "yearly",
		},
		{
			name:      "monthly bound reported first when both are short",
			days:      10,
			monthly:   2,
			yearly:    4,
			wantBound: "monthly",
		},
		{
			name:    "zero days always fits",
			days:    0,
			monthly: 0,
			yearly:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLeaveBalance(tt.days, tt.monthly, tt.yearly)
			if tt.wantBound == "" {
				if err != nil {
					t.Fatalf("CheckLeaveBalance(%d, %d, %d) unexpected error: %v", tt.days, tt.monthly, tt.yearly, err)
				}
				return
			}

			var ib *InsufficientBalanceError
			if !errors.As(err, &ib) {
				t.Fatalf("CheckLeaveBalance(%d, %d, %d) error = %v, want *InsufficientBalanceError", tt.days, tt.monthly, tt.yearly, err)
			}
			if ib.Bound != tt.wantBound {
				t.Errorf("bound = %q, want %q", ib.Bound, tt.wantBound)
			}
			if ib.Requested != tt.days {
				t.Errorf("requested = %d, want %d", ib.Requested, tt.days)
			}
		})
	}
}

func TestValidDecision(t *testing.T) {
	tests := []struct {
		action string
		want   bool
	}{
		{action: "approve", want: true},
		{action: "reject", want: true},
		{action: "Approve", want: false},
		{action: "cancel", want: false},
		{action: "", want: false},
	}

	for _, tt := range tests {
		if got := ValidDecision(tt.action); got != tt.want {
			t.Errorf("ValidDecision(%q) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestLeaveLedgerPermissionGates(t *testing.T) {
	tests := []struct {
		name   string
		grants map[string]bool
		call   func(l *LeaveLedger) error
	}{
		{
			name: "apply requires create/leave",
			call: func(l *LeaveLedger) error {
				_, err := l.Apply("user-1", LeaveRequest{})
				return err
			},
		},
		{
			name: "decide requires update/leave",
			call: func(l *LeaveLedger) error {
				_, err := l.Decide("user-1", "leave-1", "approve")
				return err
			},
		},
		{
			name: "list all requires view/leave",
			call: func(l *LeaveLedger) error {
				_, err := l.ListAll("user-1")
				return err
			},
		},
		{
			name:   "foreign listing requires view_all/leave",
			grants: map[string]bool{"view/leave": true},
			call: func(l *LeaveLedger) error {
				_, err := l.ListForUser("user-1", "user-2")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := NewLeaveLedger(nil, stubOracle{grants: tt.grants})
			err := tt.call(ledger)
			if !errors.Is(err, ErrPermissionDenied) {
				t.Errorf("error = %v, want %v", err, ErrPermissionDenied)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "permission denied", err: ErrPermissionDenied, want: 403},
		{name: "not found", err: ErrNotFound, want: 404},
		{name: "already decided", err: ErrAlreadyDecided, want: 409},
		{name: "already completed", err: ErrAlreadyCompleted, want: 400},
		{name: "validation", err: NewValidationError("bad input"), want: 400},
		{name: "insufficient balance", err: &InsufficientBalanceError{Bound: "monthly", Requested: 3, Available: 1}, want: 400},
		{name: "unknown", err: errors.New("boom"), want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
