package user

import "context"

type UserService interface {
	ListUsers(ctx context.Context, filter ListFilter) ([]UserResponse, error)

	// GetEmployeeStats summarizes attendance and approved leave for every active employee.
	GetEmployeeStats(ctx context.Context) ([]EmployeeStats, error)
}
