package leave

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrms-server/hrms-backend-go/internal/domain/audit"
	"github.com/hrms-server/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-server/hrms-backend-go/internal/domain/user"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/database"
)

const ActionUpdateLeave = "UPDATE_LEAVE"

type LeaveServiceImpl struct {
	tx database.Transactor
	leave.LeaveRequestRepository
	user.UserRepository
	auditSink audit.Sink
}

// CreateLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	requester, err := l.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get requester: %w", err)
	}

	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		ID:            uuid.Must(uuid.NewV7()).String(),
		UserID:        requester.ID,
		UserName:      requester.Name,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Category:      req.Category,
		Reason:        req.Reason,
		AttachmentURL: req.AttachmentURL,
		Status:        leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	if created.UserDepartment == nil && requester.Department != "" {
		created.UserDepartment = &requester.Department
	}

	return leave.ToResponse(created), nil
}

// ListMyLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyLeaveRequests(ctx context.Context, userID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.LeaveRequestRepository.List(ctx, leave.LeaveRequestFilter{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// UpdateLeaveStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateLeaveStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var before, after leave.LeaveRequest
	err := l.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		before, err = l.LeaveRequestRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if before.Status != leave.StatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		after, err = l.LeaveRequestRepository.UpdateStatus(txCtx, req.ID, req.Status, req.HRComment)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	l.auditSink.Record(ctx, audit.Entry{
		ActorID:    req.ActorID,
		ActorName:  req.ActorName,
		Action:     ActionUpdateLeave,
		TargetType: audit.TargetLeave,
		TargetID:   &after.ID,
		Details:    statusDetails(after),
		BeforeData: statusSnapshot(before),
		AfterData:  statusSnapshot(after),
	})

	return leave.ToResponse(after), nil
}

func statusDetails(r leave.LeaveRequest) string {
	comment := "None"
	if r.HRComment != nil && *r.HRComment != "" {
		comment = *r.HRComment
	}
	return fmt.Sprintf("%s %s leave for %s (%s to %s). Comment: %s",
		r.Status, r.Category, r.UserName, r.StartDate, r.EndDate, comment)
}

func statusSnapshot(r leave.LeaveRequest) *string {
	b, err := json.Marshal(struct {
		Status  leave.Status `json:"status"`
		Comment *string      `json:"comment,omitempty"`
	}{r.Status, r.HRComment})
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}
	return responses
}

func NewLeaveService(
	tx database.Transactor,
	leaveRequestRepo leave.LeaveRequestRepository,
	userRepo user.UserRepository,
	auditSink audit.Sink,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                     tx,
		LeaveRequestRepository: leaveRequestRepo,
		UserRepository:         userRepo,
		auditSink:              auditSink,
	}
}
