package services

import (
	"database/sql"
	"strings"
	"time"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/database"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/models"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/permissions"
)

const dateLayout = "2006-01-02"

// LeaveLedger owns the leave request lifecycle. Balances live on the users
// row but are written only here, inside the decide transaction.
type LeaveLedger struct {
	DB     *sql.DB
	Oracle permissions.Oracle
	Now    func() time.Time
}

func NewLeaveLedger(db *sql.DB, oracle permissions.Oracle) *LeaveLedger {
	return &LeaveLedger{DB: db, Oracle: oracle, Now: time.Now}
}

// LeaveRequest is the apply payload.
type LeaveRequest struct {
	LeaveType string `json:"leave_type"`
	LeaveFrom string `json:"leave_from"`
	LeaveTo   string `json:"leave_to"`
	Reason    string `json:"reason"`
}

// ValidateLeaveRequest checks the apply payload and returns the inclusive
// day count of the span.
func ValidateLeaveRequest(req LeaveRequest) (int, error) {
	if strings.TrimSpace(req.LeaveType) == "" || strings.TrimSpace(req.LeaveFrom) == "" ||
		strings.TrimSpace(req.LeaveTo) == "" || strings.TrimSpace(req.Reason) == "" {
		return 0, NewValidationError("leave_type, leave_from, leave_to and reason are required")
	}
	if !models.ValidLeaveType(req.LeaveType) {
		return 0, NewValidationError("invalid leave_type %q", req.LeaveType)
	}

	from, err := time.Parse(dateLayout, req.LeaveFrom)
	if err != nil {
		return 0, NewValidationError("invalid leave_from date %q", req.LeaveFrom)
	}
	to, err := time.Parse(dateLayout, req.LeaveTo)
	if err != nil {
		return 0, NewValidationError("invalid leave_to date %q", req.LeaveTo)
	}
	if to.Before(from) {
		return 0, NewValidationError("leave_to must not be before leave_from")
	}

	return LeaveDays(from, to), nil
}

// CheckLeaveBalance verifies both balances cover the requested days. The
// monthly bound is checked first, and the returned error names whichever
// bound was exceeded.
func CheckLeaveBalance(days, monthly, yearly int) error {
	if days > monthly {
		return &InsufficientBalanceError{Bound: "monthly", Requested: days, Available: monthly}
	}
	if days > yearly {
		return &InsufficientBalanceError{Bound: "yearly", Requested: days, Available: yearly}
	}
	return nil
}

// Apply validates the request, prechecks both balances and records the leave
// as Pending. No balance is deducted here.
func (l *LeaveLedger) Apply(actorID string, req LeaveRequest) (*models.Leave, error) {
	allowed, err := l.Oracle.Allowed(actorID, "create", "leave")
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrPermissionDenied
	}

	days, err := ValidateLeaveRequest(req)
	if err != nil {
		return nil, err
	}

	var monthly, yearly int
	err = l.DB.QueryRow(
		`SELECT monthly_leave_balance, yearly_leave_balance FROM users WHERE id = $1 AND is_active = true`,
		actorID,
	).Scan(&monthly, &yearly)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := CheckLeaveBalance(days, monthly, yearly); err != nil {
		return nil, err
	}

	leave := &models.Leave{
		UserID:    actorID,
		LeaveType: models.LeaveType(req.LeaveType),
		LeaveFrom: req.LeaveFrom,
		LeaveTo:   req.LeaveTo,
		LeaveDate: l.Now().Format(dateLayout),
		LeaveDays: days,
		Reason:    req.Reason,
		Status:    models.LeavePending,
	}

	query := `INSERT INTO leaves (user_id, leave_type, leave_from, leave_to, leave_date, leave_days, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err = l.DB.QueryRow(query,
		leave.UserID, leave.LeaveType, leave.LeaveFrom, leave.LeaveTo, leave.LeaveDate,
		leave.LeaveDays, leave.Reason, leave.Status,
	).Scan(&leave.ID, &leave.CreatedAt, &leave.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return leave, nil
}

// ValidDecision reports whether the decide action is one of the two accepted
// verbs.
func ValidDecision(action string) bool {
	return action == "approve" || action == "reject"
}

// Decide approves or rejects a pending leave. The leave row and, on
// approval, the requester's users row are locked FOR UPDATE in one
// transaction; balances are re-checked at decision time and deducted exactly
// once. A non-Pending leave cannot be decided again.
func (l *LeaveLedger) Decide(actorID, leaveID, action string) (*models.Leave, error) {
	allowed, err := l.Oracle.Allowed(actorID, "update", "leave")
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrPermissionDenied
	}

	if !ValidDecision(action) {
		return nil, NewValidationError("action must be \"approve\" or \"reject\", got %q", action)
	}

	approverName, err := database.GetUserName(l.DB, actorID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	tx, err := l.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var userID string
	var status models.LeaveStatus
	var days int
	err = tx.QueryRow(
		`SELECT user_id, status, leave_days FROM leaves WHERE id = $1 FOR UPDATE`,
		leaveID,
	).Scan(&userID, &status, &days)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if status != models.LeavePending {
		return nil, ErrAlreadyDecided
	}

	newStatus := models.LeaveRejected
	if action == "approve" {
		newStatus = models.LeaveApproved

		var monthly, yearly int
		err = tx.QueryRow(
			`SELECT monthly_leave_balance, yearly_leave_balance FROM users WHERE id = $1 FOR UPDATE`,
			userID,
		).Scan(&monthly, &yearly)
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}

		if err := CheckLeaveBalance(days, monthly, yearly); err != nil {
			return nil, err
		}

		_, err = tx.Exec(
			`UPDATE users SET monthly_leave_balance = monthly_leave_balance - $1,
				yearly_leave_balance = yearly_leave_balance - $1, updated_at = NOW()
			WHERE id = $2`,
			days, userID,
		)
		if err != nil {
			return nil, err
		}
	}

	now := l.Now()
	_, err = tx.Exec(
		`UPDATE leaves SET status = $1, approved_by = $2, approved_date = $3, approved_time = $4, updated_at = NOW()
		WHERE id = $5`,
		newStatus, approverName, now.Format(dateLayout), now.Format(clockLayout), leaveID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return l.getLeave(leaveID)
}

func (l *LeaveLedger) getLeave(id string) (*models.Leave, error) {
	leave := &models.Leave{}
	var leaveDate sql.NullString
	err := l.DB.QueryRow(
		`SELECT l.id, l.user_id, l.leave_type, to_char(l.leave_from, 'YYYY-MM-DD'),
			to_char(l.leave_to, 'YYYY-MM-DD'), to_char(l.leave_date, 'YYYY-MM-DD'), l.leave_days,
			l.reason, l.status, l.approved_by, to_char(l.approved_date, 'YYYY-MM-DD'),
			l.approved_time::text, l.created_at, l.updated_at
		FROM leaves l WHERE l.id = $1`,
		id,
	).Scan(
		&leave.ID, &leave.UserID, &leave.LeaveType, &leave.LeaveFrom, &leave.LeaveTo,
		&leaveDate, &leave.LeaveDays, &leave.Reason, &leave.Status, &leave.ApprovedBy,
		&leave.ApprovedDate, &leave.ApprovedTime, &leave.CreatedAt, &leave.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	leave.LeaveDate = leaveDate.String
	return leave, nil
}

// ListAll returns every leave request. Requires view/leave.
func (l *LeaveLedger) ListAll(actorID string) ([]*models.Leave, error) {
	allowed, err := l.Oracle.Allowed(actorID, "view", "leave")
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrPermissionDenied
	}
	return database.GetAllLeaves(l.DB)
}

// ListForUser returns one user's leave requests. Requires view/leave, plus
// view_all/leave when asking about another user.
func (l *LeaveLedger) ListForUser(actorID, userID string) ([]*models.Leave, error) {
	allowed, err := l.Oracle.Allowed(actorID, "view", "leave")
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrPermissionDenied
	}

	if actorID != userID {
		allowed, err := l.Oracle.Allowed(actorID, "view_all", "leave")
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, ErrPermissionDenied
		}
	}

	exists, err := userExists(l.DB, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	return database.GetLeavesByUser(l.DB, userID)
}
