package leave

import (
	"context"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)

	// UpdateStatus moves a Pending request to status. Returns ErrLeaveRequestAlreadyProcessed
	// when the request exists but is no longer Pending.
	UpdateStatus(ctx context.Context, id string, status Status, hrComment *string) (LeaveRequest, error)

	// ExistsApprovedStartingOn reports whether the user has an Approved request in one of
	// the categories whose start date is date.
	ExistsApprovedStartingOn(ctx context.Context, userID, date string, categories []Category) (bool, error)
}
