package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrms-server/hrms-backend-go/internal/domain/leave"
	"github.com/sony/gobreaker"
)

// Consecutive lookup failures that open the breaker
const halfDayBreakerThreshold = 5

type halfDayChecker struct {
	repo leave.LeaveRequestRepository
	cb   *gobreaker.CircuitBreaker
}

// NewHalfDayChecker answers half-day lookups from stored leave requests. Both the current
// "Half Day Leave" category and the legacy "Half Day" value count.
//
// Lookups run through a circuit breaker; while it is open calls fail with gobreaker.ErrOpenState
// without touching the store.
func NewHalfDayChecker(repo leave.LeaveRequestRepository) leave.HalfDayChecker {
	settings := gobreaker.Settings{
		Name:        "half-day-lookup",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= halfDayBreakerThreshold
		},
		IsSuccessful: func(err error) bool {
			// The caller giving up says nothing about the store
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}

	return &halfDayChecker{
		repo: repo,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// IsHalfDayApproved implements leave.HalfDayChecker.
func (h *halfDayChecker) IsHalfDayApproved(ctx context.Context, userID, date string) (bool, error) {
	result, err := h.cb.Execute(func() (interface{}, error) {
		return h.repo.ExistsApprovedStartingOn(ctx, userID, date, leave.HalfDayCategories)
	})
	if err != nil {
		return false, fmt.Errorf("failed to look up half day leave: %w", err)
	}
	return result.(bool), nil
}
