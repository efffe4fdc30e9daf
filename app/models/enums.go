package models

// AttendanceStatus defines the possible status values for a daily attendance record.
type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
	HalfDay AttendanceStatus = "Half-day"
)

// ValidAttendanceStatus reports whether s is one of the accepted status
// values.
func ValidAttendanceStatus(s string) bool {
	switch AttendanceStatus(s) {
	case Present, Absent, HalfDay:
		return true
	}
	return false
}

// LeaveStatus defines the lifecycle states of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

// LeaveType defines the accepted categories of leave.
type LeaveType string

const (
	SickLeave      LeaveType = "Sick"
	MaternityLeave LeaveType = "Maternity"
	PaternityLeave LeaveType = "Paternity"
	OtherLeave     LeaveType = "Other"
)

// ValidLeaveType reports whether t is one of the accepted leave categories.
func ValidLeaveType(t string) bool {
	switch LeaveType(t) {
	case SickLeave, MaternityLeave, PaternityLeave, OtherLeave:
		return true
	}
	return false
}

// TaskStatus defines the lifecycle states of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// ValidTaskStatus reports whether s is one of the accepted task states.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// TaskPriority defines the priority levels for a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// ValidTaskPriority reports whether p is one of the accepted priority levels.
func ValidTaskPriority(p string) bool {
	switch TaskPriority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
