package service

import (
	"office-management-backend/internal/database/models"
)

// taskTransitions enumerates the permitted task status changes. Writing the current
// status again is treated as a no-op by the task service, so it is not listed here.
var taskTransitions = map[models.TaskStatus][]models.TaskStatus{
	models.TaskStatusPending:    {models.TaskStatusInProgress, models.TaskStatusCompleted, models.TaskStatusReassigned},
	models.TaskStatusInProgress: {models.TaskStatusCompleted, models.TaskStatusReassigned},
	models.TaskStatusReassigned: {models.TaskStatusPending, models.TaskStatusInProgress},
	models.TaskStatusCompleted:  {},
}

// taskTransitionAllowed reports whether a task may move from one status to another
func taskTransitionAllowed(from, to models.TaskStatus) bool {
	for _, allowed := range taskTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// approvalTransitionAllowed reports whether a leave or expense may move between
// approval states. Only pending records accept a decision; approved and rejected
// are terminal, so double-approval is rejected rather than silently accepted.
func approvalTransitionAllowed(from, to models.ApprovalStatus) bool {
	return from == models.ApprovalStatusPending &&
		(to == models.ApprovalStatusApproved || to == models.ApprovalStatusRejected)
}
