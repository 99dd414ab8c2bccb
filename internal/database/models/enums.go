package models

// UserRole defines the access level of a user
type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleProprietor UserRole = "proprietor"
	UserRoleStaff      UserRole = "staff"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleProprietor, UserRoleStaff:
		return true
	}
	return false
}

// IsPrivileged reports whether the role may approve records and manage users
func (r UserRole) IsPrivileged() bool {
	return r == UserRoleAdmin || r == UserRoleProprietor
}

// TaskStatus defines the lifecycle states of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusReassigned TaskStatus = "reassigned"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusReassigned:
		return true
	}
	return false
}

// TaskPriority defines the urgency of a task
type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "low"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityCritical TaskPriority = "critical"
)

// IsValid checks if the TaskPriority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityCritical:
		return true
	}
	return false
}

// AttendanceStatus defines the daily attendance states
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusHalfDay AttendanceStatus = "half_day"
	AttendanceStatusLeave   AttendanceStatus = "leave"
)

// IsValid checks if the AttendanceStatus is valid
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusHalfDay, AttendanceStatusLeave:
		return true
	}
	return false
}

// LeaveType defines the categories of leave requests
type LeaveType string

const (
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeCasual    LeaveType = "casual"
	LeaveTypeVacation  LeaveType = "vacation"
	LeaveTypeEmergency LeaveType = "emergency"
	LeaveTypeOther     LeaveType = "other"
)

// IsValid checks if the LeaveType is valid
func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeSick, LeaveTypeCasual, LeaveTypeVacation, LeaveTypeEmergency, LeaveTypeOther:
		return true
	}
	return false
}

// ApprovalStatus defines the approval states shared by leaves and expenses
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// IsValid checks if the ApprovalStatus is valid
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status accepts no further transitions
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}
