package services

import (
	"time"

	"github.com/shopspring/decimal"
)

const clockLayout = "15:04:05"

var secondsPerHour = decimal.NewFromInt(3600)

// WorkedHours computes the exact decimal hours between two times-of-day on
// the same date: whole seconds elapsed divided by 3600, rounded to two
// decimal places to match the NUMERIC(8,2) column.
func WorkedHours(punchIn, punchOut string) (decimal.Decimal, error) {
	in, err := time.Parse(clockLayout, punchIn)
	if err != nil {
		return decimal.Zero, NewValidationError("invalid punch-in time %q", punchIn)
	}
	out, err := time.Parse(clockLayout, punchOut)
	if err != nil {
		return decimal.Zero, NewValidationError("invalid punch-out time %q", punchOut)
	}

	seconds := int64(out.Sub(in).Seconds())
	if seconds < 0 {
		return decimal.Zero, NewValidationError("punch-out time %s is before punch-in time %s", punchOut, punchIn)
	}

	return decimal.NewFromInt(seconds).DivRound(secondsPerHour, 2), nil
}

// Overtime is the hours worked beyond the monthly threshold, never negative.
func Overtime(monthTotal decimal.Decimal, threshold int64) decimal.Decimal {
	over := monthTotal.Sub(decimal.NewFromInt(threshold))
	if over.IsNegative() {
		return decimal.Zero
	}
	return over
}

// LeaveDays is the inclusive day count of a leave span: a single-day leave
// counts as 1.
func LeaveDays(from, to time.Time) int {
	return int(to.Sub(from).Hours()/24) + 1
}
