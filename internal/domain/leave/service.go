package leave

import (
	"context"
)

type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	ListMyLeaveRequests(ctx context.Context, userID string) ([]LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)

	// UpdateLeaveStatus approves or rejects a Pending request
	UpdateLeaveStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveRequestResponse, error)
}

// HalfDayChecker answers whether a user has an approved half-day leave starting on a date.
type HalfDayChecker interface {
	IsHalfDayApproved(ctx context.Context, userID, date string) (bool, error)
}
