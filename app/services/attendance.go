package services

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/models"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/permissions"
)

// PunchEvent is the action a punch request resolves to for the user's
// current day.
type PunchEvent string

const (
	PunchIn  PunchEvent = "punch_in"
	PunchOut PunchEvent = "punch_out"
)

// AttendanceService owns the per-day punch state machine and the worked-hour
// aggregates.
type AttendanceService struct {
	DB               *sql.DB
	Oracle           permissions.Oracle
	MonthlyThreshold int64
	Now              func() time.Time
}

func NewAttendanceService(db *sql.DB, oracle permissions.Oracle, monthlyThreshold int64) *AttendanceService {
	return &AttendanceService{
		DB:               db,
		Oracle:           oracle,
		MonthlyThreshold: monthlyThreshold,
		Now:              time.Now,
	}
}

// NextPunchEvent routes a punch request by the record's state: no punch-in
// yet means this is the punch-in, a punch-in without a punch-out means this
// is the punch-out, and a completed day accepts no further events.
func NextPunchEvent(punchIn, punchOut *string) (PunchEvent, error) {
	switch {
	case punchIn == nil:
		return PunchIn, nil
	case punchOut == nil:
		return PunchOut, nil
	default:
		return "", ErrAlreadyCompleted
	}
}

// PunchResult reports what a punch request did.
type PunchResult struct {
	Event       PunchEvent       `json:"event"`
	Date        string           `json:"date"`
	Time        string           `json:"time"`
	HoursWorked *decimal.Decimal `json:"hours_worked,omitempty"`
}

// Punch records the next punch event for the user's current day. The whole
// operation runs in one transaction: the day row is created with
// ON CONFLICT DO NOTHING and then locked with FOR UPDATE, so two concurrent
// punches cannot both land in the same state.
func (s *AttendanceService) Punch(userID string) (*PunchResult, error) {
	now := s.Now()
	today := now.Format("2006-01-02")
	clock := now.Format(clockLayout)

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND is_active = true)`, userID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	_, err = tx.Exec(
		`INSERT INTO attendances (user_id, date, status) VALUES ($1, $2, $3) ON CONFLICT (user_id, date) DO NOTHING`,
		userID, today, models.Present,
	)
	if err != nil {
		return nil, err
	}

	var id string
	var punchIn, punchOut *string
	err = tx.QueryRow(
		`SELECT id, punch_in_time::text, punch_out_time::text FROM attendances WHERE user_id = $1 AND date = $2 FOR UPDATE`,
		userID, today,
	).Scan(&id, &punchIn, &punchOut)
	if err != nil {
		return nil, err
	}

	event, err := NextPunchEvent(punchIn, punchOut)
	if err != nil {
		return nil, err
	}

	result := &PunchResult{Event: event, Date: today, Time: clock}

	switch event {
	case PunchIn:
		_, err = tx.Exec(
			`UPDATE attendances SET punch_in_time = $1, status = $2, updated_at = NOW() WHERE id = $3`,
			clock, models.Present, id,
		)
	case PunchOut:
		var worked decimal.Decimal
		worked, err = WorkedHours(*punchIn, clock)
		if err != nil {
			return nil, err
		}
		result.HoursWorked = &worked
		_, err = tx.Exec(
			`UPDATE attendances SET punch_out_time = $1, total_hours_day = total_hours_day + $2, updated_at = NOW() WHERE id = $3`,
			clock, worked, id,
		)
	}
	if err != nil {
		return nil, err
	}

	return result, tx.Commit()
}

// AttendanceStats are the on-demand worked-hour aggregates for one user.
type AttendanceStats struct {
	MonthHours decimal.Decimal `json:"total_hours_month"`
	WeekHours  decimal.Decimal `json:"total_hours_week"`
	YearHours  decimal.Decimal `json:"total_hours_year"`
	Overtime   decimal.Decimal `json:"overtime_hours"`
}

// Stats sums total_hours_day for the current month, ISO week and year, and
// derives overtime from the monthly total. Aggregates are always computed
// from the rows, never maintained as counters.
func (s *AttendanceService) Stats(userID string) (*AttendanceStats, error) {
	exists, err := userExists(s.DB, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.statsFor(userID)
}

func userExists(db *sql.DB, userID string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND is_active = true)`, userID).Scan(&exists)
	return exists, err
}

func (s *AttendanceService) statsFor(userID string) (*AttendanceStats, error) {
	now := s.Now()
	year, month := now.Year(), int(now.Month())
	isoYear, isoWeek := now.ISOWeek()

	stats := &AttendanceStats{}

	err := s.DB.QueryRow(
		`SELECT COALESCE(SUM(total_hours_day), 0) FROM attendances
		WHERE user_id = $1 AND EXTRACT(YEAR FROM date) = $2 AND EXTRACT(MONTH FROM date) = $3`,
		userID, year, month,
	).Scan(&stats.MonthHours)
	if err != nil {
		return nil, err
	}

	err = s.DB.QueryRow(
		`SELECT COALESCE(SUM(total_hours_day), 0) FROM attendances
		WHERE user_id = $1 AND EXTRACT(ISOYEAR FROM date) = $2 AND EXTRACT(WEEK FROM date) = $3`,
		userID, isoYear, isoWeek,
	).Scan(&stats.WeekHours)
	if err != nil {
		return nil, err
	}

	err = s.DB.QueryRow(
		`SELECT COALESCE(SUM(total_hours_day), 0) FROM attendances
		WHERE user_id = $1 AND EXTRACT(YEAR FROM date) = $2`,
		userID, year,
	).Scan(&stats.YearHours)
	if err != nil {
		return nil, err
	}

	stats.Overtime = Overtime(stats.MonthHours, s.MonthlyThreshold)
	return stats, nil
}

// AttendanceRecord is one row in the all-users stats detail.
type AttendanceRecord struct {
	UserID        string                  `json:"user_id"`
	UserName      string                  `json:"user_name"`
	Date          string                  `json:"date"`
	Status        models.AttendanceStatus `json:"status"`
	PunchInTime   *string                 `json:"punch_in_time"`
	PunchOutTime  *string                 `json:"punch_out_time"`
	TotalHoursDay decimal.Decimal         `json:"total_hours_day"`
}

// AllStats is the permission-gated company-wide view. It carries the same
// aggregate fields as the per-user stats, summed over every user.
type AllStats struct {
	MonthHours decimal.Decimal    `json:"total_hours_month"`
	WeekHours  decimal.Decimal    `json:"total_hours_week"`
	YearHours  decimal.Decimal    `json:"total_hours_year"`
	Overtime   decimal.Decimal    `json:"overtime_hours"`
	Records    []AttendanceRecord `json:"records"`
}

// StatsAll returns aggregates over every user plus per-record detail. The
// caller must hold read/attendance.
func (s *AttendanceService) StatsAll(actorID string) (*AllStats, error) {
	allowed, err := s.Oracle.Allowed(actorID, "read", "attendance")
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrPermissionDenied
	}

	now := s.Now()
	year, month := now.Year(), int(now.Month())
	isoYear, isoWeek := now.ISOWeek()

	all := &AllStats{Records: []AttendanceRecord{}}

	err = s.DB.QueryRow(
		`SELECT COALESCE(SUM(total_hours_day), 0) FROM attendances
		WHERE EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2`,
		year, month,
	).Scan(&all.MonthHours)
	if err != nil {
		return nil, err
	}

	err = s.DB.QueryRow(
		`SELECT COALESCE(SUM(total_hours_day), 0) FROM attendances
		WHERE EXTRACT(ISOYEAR FROM date) = $1 AND EXTRACT(WEEK FROM date) = $2`,
		isoYear, isoWeek,
	).Scan(&all.WeekHours)
	if err != nil {
		return nil, err
	}

	err = s.DB.QueryRow(
		`SELECT COALESCE(SUM(total_hours_day), 0) FROM attendances WHERE EXTRACT(YEAR FROM date) = $1`,
		year,
	).Scan(&all.YearHours)
	if err != nil {
		return nil, err
	}

	all.Overtime = Overtime(all.MonthHours, s.MonthlyThreshold)

	rows, err := s.DB.Query(
		`SELECT a.user_id, u.name, to_char(a.date, 'YYYY-MM-DD'), a.status,
			a.punch_in_time::text, a.punch_out_time::text, a.total_hours_day
		FROM attendances a
		JOIN users u ON a.user_id = u.id
		ORDER BY a.date DESC, u.name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r AttendanceRecord
		if err := rows.Scan(&r.UserID, &r.UserName, &r.Date, &r.Status, &r.PunchInTime, &r.PunchOutTime, &r.TotalHoursDay); err != nil {
			continue
		}
		all.Records = append(all.Records, r)
	}

	return all, nil
}
