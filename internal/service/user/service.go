package user

import (
	"context"
	"fmt"

	"github.com/hrms-server/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-server/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-server/hrms-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

// statsConcurrency bounds the per-employee lookups running at once
const statsConcurrency = 4

type UserServiceImpl struct {
	user.UserRepository
	leave.LeaveRequestRepository
	attendanceService attendance.AttendanceService
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	users, err := s.UserRepository.ListActive(ctx, filter.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// GetEmployeeStats implements user.UserService. Attendance is read through the
// attendance service so legacy rows are reclassified on the way.
func (s *UserServiceImpl) GetEmployeeStats(ctx context.Context) ([]user.EmployeeStats, error) {
	role := user.RoleEmployee
	employees, err := s.UserRepository.ListActive(ctx, &role)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	stats := make([]user.EmployeeStats, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(statsConcurrency)
	for i, employee := range employees {
		i, employee := i, employee
		g.Go(func() error {
			st, err := s.employeeStats(gctx, employee)
			if err != nil {
				return err
			}
			stats[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *UserServiceImpl) employeeStats(ctx context.Context, employee user.User) (user.EmployeeStats, error) {
	records, err := s.attendanceService.ListAll(ctx, attendance.ListFilter{UserID: &employee.ID})
	if err != nil {
		return user.EmployeeStats{}, fmt.Errorf("failed to list attendance for %s: %w", employee.ID, err)
	}

	approved := leave.StatusApproved
	leaves, err := s.LeaveRequestRepository.List(ctx, leave.LeaveRequestFilter{UserID: &employee.ID, Status: &approved})
	if err != nil {
		return user.EmployeeStats{}, fmt.Errorf("failed to list leave for %s: %w", employee.ID, err)
	}

	st := user.EmployeeStats{
		User:        user.ToResponse(employee),
		PresentDays: len(records),
	}
	for _, r := range records {
		st.TotalWorkedSeconds += r.TotalWorkedSeconds
		if r.LowTimeFlag {
			st.LowTimeCount++
		}
		if r.ExtraTimeFlag {
			st.ExtraTimeCount++
		}
	}
	st.TotalWorkedHours = fmt.Sprintf("%.1f", float64(st.TotalWorkedSeconds)/3600)

	for _, l := range leaves {
		switch {
		case l.Category == leave.CategoryPaidLeave:
			st.Leaves.Paid++
		case l.Category == leave.CategoryUnpaidLeave:
			st.Leaves.Unpaid++
		case leave.IsHalfDayCategory(l.Category):
			st.Leaves.HalfDay++
		case l.Category == leave.CategoryExtraTimeLeave:
			st.Leaves.ExtraTime++
		}
		st.Leaves.Total++
	}

	return st, nil
}

func NewUserService(
	userRepo user.UserRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	attendanceService attendance.AttendanceService,
) user.UserService {
	return &UserServiceImpl{
		UserRepository:         userRepo,
		LeaveRequestRepository: leaveRequestRepo,
		attendanceService:      attendanceService,
	}
}
