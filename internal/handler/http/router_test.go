package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hrms-server/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-server/hrms-backend-go/internal/domain/audit"
	"github.com/hrms-server/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-server/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-server/hrms-backend-go/internal/domain/report"
	"github.com/hrms-server/hrms-backend-go/internal/domain/user"
	"github.com/hrms-server/hrms-backend-go/internal/handler/http/response"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-jwt"
	employeeID = "0192a4c1-7b8c-7b4a-8a2b-6b8b8b8b8b01"
	hrID       = "0192a4c1-7b8c-7b4a-8a2b-6b8b8b8b8b02"
	adminID    = "0192a4c1-7b8c-7b4a-8a2b-6b8b8b8b8b03"
)

// ===== FAKE SERVICES =====

type fakeAttendanceService struct {
	attendance.AttendanceService

	err     error
	today   *attendance.AttendanceResponse
	clockIn attendance.ClockInRequest
	breakIn attendance.StartBreakRequest
	history attendance.HistoryFilter
	list    attendance.ListFilter
}

func (f *fakeAttendanceService) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	f.clockIn = req
	if f.err != nil {
		return attendance.AttendanceResponse{}, f.err
	}
	return attendance.AttendanceResponse{ID: "rec-1", UserID: req.UserID, Status: attendance.StateOpen}, nil
}

func (f *fakeAttendanceService) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if f.err != nil {
		return attendance.AttendanceResponse{}, f.err
	}
	return attendance.AttendanceResponse{ID: "rec-1", UserID: req.UserID, Status: attendance.StateClosed}, nil
}

func (f *fakeAttendanceService) StartBreak(ctx context.Context, req attendance.StartBreakRequest) (attendance.AttendanceResponse, error) {
	f.breakIn = req
	if f.err != nil {
		return attendance.AttendanceResponse{}, f.err
	}
	return attendance.AttendanceResponse{ID: "rec-1", Status: attendance.StateOnBreak}, nil
}

func (f *fakeAttendanceService) EndBreak(ctx context.Context, req attendance.EndBreakRequest) (attendance.AttendanceResponse, error) {
	if f.err != nil {
		return attendance.AttendanceResponse{}, f.err
	}
	return attendance.AttendanceResponse{ID: "rec-1", Status: attendance.StateOpen}, nil
}

func (f *fakeAttendanceService) GetToday(ctx context.Context, userID string) (*attendance.AttendanceResponse, error) {
	return f.today, f.err
}

func (f *fakeAttendanceService) GetHistory(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.AttendanceResponse, error) {
	f.history = filter
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return []attendance.AttendanceResponse{{ID: "rec-1"}, {ID: "rec-2"}}, f.err
}

func (f *fakeAttendanceService) ListAll(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	f.list = filter
	return []attendance.AttendanceResponse{}, f.err
}

func (f *fakeAttendanceService) ListToday(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	return []attendance.AttendanceResponse{}, f.err
}

func (f *fakeAttendanceService) Backfill(ctx context.Context, req attendance.BackfillRequest) (attendance.BackfillResult, error) {
	return attendance.BackfillResult{Scanned: 2, Updated: 2}, f.err
}

type fakeLeaveService struct {
	leave.LeaveService

	err    error
	create leave.CreateLeaveRequestRequest
	update leave.UpdateLeaveStatusRequest
	filter leave.LeaveRequestFilter
}

func (f *fakeLeaveService) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	f.create = req
	return leave.LeaveRequestResponse{ID: "leave-1", UserID: req.UserID, Status: string(leave.StatusPending)}, f.err
}

func (f *fakeLeaveService) ListMyLeaveRequests(ctx context.Context, userID string) ([]leave.LeaveRequestResponse, error) {
	return []leave.LeaveRequestResponse{{ID: "leave-1", UserID: userID}}, f.err
}

func (f *fakeLeaveService) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	f.filter = filter
	return []leave.LeaveRequestResponse{}, f.err
}

func (f *fakeLeaveService) UpdateLeaveStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveRequestResponse, error) {
	f.update = req
	if f.err != nil {
		return leave.LeaveRequestResponse{}, f.err
	}
	return leave.LeaveRequestResponse{ID: req.ID, Status: string(req.Status)}, nil
}

type fakeAuditService struct {
	audit.AuditService
	filter audit.ListFilter
}

func (f *fakeAuditService) List(ctx context.Context, filter audit.ListFilter) ([]audit.EntryResponse, error) {
	f.filter = filter
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return []audit.EntryResponse{{ID: "log-1", Action: "CLOCK_IN"}}, nil
}

type fakeReportService struct {
	req report.AttendanceReportRequest
}

func (f *fakeReportService) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	f.req = req
	return report.AttendanceReport{Rows: []report.AttendanceReportRow{}}, nil
}

type fakeHolidayService struct {
	holiday.HolidayService

	err     error
	create  holiday.CreateHolidayRequest
	deleted holiday.DeleteHolidayRequest
	filter  holiday.ListFilter
}

func (f *fakeHolidayService) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	err := req.Validate()
	f.create = req
	if f.err != nil {
		return holiday.HolidayResponse{}, f.err
	}
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.HolidayResponse{ID: "holiday-1", Date: req.Date, Description: req.Description}, nil
}

func (f *fakeHolidayService) ListHolidays(ctx context.Context, filter holiday.ListFilter) ([]holiday.HolidayResponse, error) {
	f.filter = filter
	return []holiday.HolidayResponse{{ID: "holiday-1", Date: "2025-01-26"}}, f.err
}

func (f *fakeHolidayService) DeleteHoliday(ctx context.Context, req holiday.DeleteHolidayRequest) error {
	f.deleted = req
	return f.err
}

type fakeUserService struct {
	user.UserService

	filter user.ListFilter
}

func (f *fakeUserService) ListUsers(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, error) {
	f.filter = filter
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return []user.UserResponse{{ID: employeeID, Name: "Jane Doe", Role: user.RoleEmployee}}, nil
}

func (f *fakeUserService) GetEmployeeStats(ctx context.Context) ([]user.EmployeeStats, error) {
	return []user.EmployeeStats{{PresentDays: 3, TotalWorkedHours: "22.3"}}, nil
}

// ===== HARNESS =====

type testServer struct {
	router     *chi.Mux
	jwt        jwt.Service
	attendance *fakeAttendanceService
	leave      *fakeLeaveService
	audit      *fakeAuditService
	report     *fakeReportService
	holiday    *fakeHolidayService
	user       *fakeUserService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		jwt:        jwt.NewJWTService(testSecret, "1h"),
		attendance: &fakeAttendanceService{},
		leave:      &fakeLeaveService{},
		audit:      &fakeAuditService{},
		report:     &fakeReportService{},
		holiday:    &fakeHolidayService{},
		user:       &fakeUserService{},
	}
	s.router = NewRouter(s.jwt, Handlers{
		Attendance: NewAttendanceHandler(s.attendance),
		Leave:      NewLeaveHandler(s.leave),
		Audit:      NewAuditHandler(s.audit),
		Report:     NewReportHandler(s.report),
		Holiday:    NewHolidayHandler(s.holiday),
		User:       NewUserHandler(s.user),
	}, RouterOptions{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return s
}

func (s *testServer) token(t *testing.T, userID, name string, role user.Role) string {
	t.Helper()
	token, _, err := s.jwt.GenerateAccessToken(userID, name, role)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(b)
		}
		reader = bytes.NewBufferString(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec, resp
}

// ===== AUTH BOUNDARY =====

func TestRouter_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec, resp := s.do(t, http.MethodPost, "/api/v1/attendance/clock-in", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)
}

func TestRouter_RejectsNonAccessToken(t *testing.T) {
	s := newTestServer(t)

	_, refresh, err := s.jwt.JWTAuth().Encode(map[string]interface{}{"user_id": employeeID, "type": "refresh"})
	require.NoError(t, err)

	rec, _ := s.do(t, http.MethodGet, "/api/v1/attendance/today", refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_PermissionGates(t *testing.T) {
	s := newTestServer(t)
	employee := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)
	hr := s.token(t, hrID, "Harriet", user.RoleHR)
	admin := s.token(t, adminID, "Ada", user.RoleAdmin)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"employee cannot list all attendance", http.MethodGet, "/api/v1/attendance/all", employee, http.StatusForbidden},
		{"employee cannot list today", http.MethodGet, "/api/v1/attendance/today/all", employee, http.StatusForbidden},
		{"employee cannot backfill", http.MethodPost, "/api/v1/attendance/backfill", employee, http.StatusForbidden},
		{"employee cannot list leaves", http.MethodGet, "/api/v1/leaves", employee, http.StatusForbidden},
		{"employee cannot view reports", http.MethodGet, "/api/v1/reports/attendance", employee, http.StatusForbidden},
		{"hr cannot view audit logs", http.MethodGet, "/api/v1/audit-logs", hr, http.StatusForbidden},
		{"hr lists all attendance", http.MethodGet, "/api/v1/attendance/all", hr, http.StatusOK},
		{"hr lists leaves", http.MethodGet, "/api/v1/leaves", hr, http.StatusOK},
		{"hr views reports", http.MethodGet, "/api/v1/reports/attendance", hr, http.StatusOK},
		{"admin views audit logs", http.MethodGet, "/api/v1/audit-logs", admin, http.StatusOK},
		{"employee views own history", http.MethodGet, "/api/v1/attendance/history", employee, http.StatusOK},
		{"employee views holidays", http.MethodGet, "/api/v1/holidays", employee, http.StatusOK},
		{"employee cannot add holidays", http.MethodPost, "/api/v1/holidays", employee, http.StatusForbidden},
		{"hr cannot delete holidays", http.MethodDelete, "/api/v1/holidays/" + employeeID, hr, http.StatusForbidden},
		{"admin deletes holidays", http.MethodDelete, "/api/v1/holidays/" + employeeID, admin, http.StatusOK},
		{"employee lists users", http.MethodGet, "/api/v1/users", employee, http.StatusOK},
		{"employee cannot view employee stats", http.MethodGet, "/api/v1/users/stats/employees", employee, http.StatusForbidden},
		{"hr views employee stats", http.MethodGet, "/api/v1/users/stats/employees", hr, http.StatusOK},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec, _ := s.do(t, c.method, c.path, c.token, nil)
			assert.Equal(t, c.status, rec.Code)
		})
	}
}

// ===== ATTENDANCE =====

func TestAttendanceHandler_ClockIn(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)

	rec, resp := s.do(t, http.MethodPost, "/api/v1/attendance/clock-in", token, map[string]string{
		"location": "Home",
		"user_id":  hrID,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, employeeID, s.attendance.clockIn.UserID)
	assert.Equal(t, "Jane Doe", s.attendance.clockIn.ActorName)
	assert.Equal(t, "Home", s.attendance.clockIn.Location)
}

func TestAttendanceHandler_ClockInWithoutBody(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)

	rec, _ := s.do(t, http.MethodPost, "/api/v1/attendance/clock-in", token, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, s.attendance.clockIn.Location)
}

func TestAttendanceHandler_MalformedBody(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)

	rec, resp := s.do(t, http.MethodPost, "/api/v1/attendance/break/start", token, `{"type":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request format", resp.Error.Message)
}

func TestAttendanceHandler_StateConflicts(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		err     error
		status  int
		message string
	}{
		{"clock in twice", "/api/v1/attendance/clock-in", attendance.ErrAlreadyClockedIn, http.StatusBadRequest, "Already clocked in today"},
		{"clock out without session", "/api/v1/attendance/clock-out", attendance.ErrNoActiveSession, http.StatusBadRequest, "No active attendance session for today"},
		{"clock out on break", "/api/v1/attendance/clock-out", attendance.ErrBreakInProgress, http.StatusBadRequest, "Please end your break before clocking out"},
		{"second break", "/api/v1/attendance/break/start", attendance.ErrBreakAlreadyActive, http.StatusBadRequest, "Break already in progress"},
		{"end break without record", "/api/v1/attendance/break/end", attendance.ErrNoRecordFound, http.StatusNotFound, "No attendance record found"},
		{"end break when none active", "/api/v1/attendance/break/end", attendance.ErrNoActiveBreak, http.StatusBadRequest, "No active break found"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestServer(t)
			s.attendance.err = c.err
			token := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)

			rec, resp := s.do(t, http.MethodPost, c.path, token, nil)
			assert.Equal(t, c.status, rec.Code)
			require.NotNil(t, resp.Error)
			assert.Equal(t, c.message, resp.Error.Message)
		})
	}
}

func TestAttendanceHandler_StartBreakType(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)

	rec, _ := s.do(t, http.MethodPost, "/api/v1/attendance/break/start", token, map[string]string{"type": "Extra"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, attendance.BreakTypeExtra, s.attendance.breakIn.Type)
	assert.Equal(t, employeeID, s.attendance.breakIn.UserID)
}

func TestAttendanceHandler_GetTodayNotClockedIn(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)

	rec, resp := s.do(t, http.MethodGet, "/api/v1/attendance/today", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}

func TestAttendanceHandler_HistoryValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)

	rec, resp := s.do(t, http.MethodGet, "/api/v1/attendance/history?start_date=2025-03-10&end_date=2025-03-01", token, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "end_date must not be before start_date", resp.Error.Details["end_date"])
}

func TestAttendanceHandler_HistoryScopedToCaller(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)

	rec, resp := s.do(t, http.MethodGet, "/api/v1/attendance/history?start_date=2025-03-01", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, employeeID, s.attendance.history.UserID)
	require.NotNil(t, s.attendance.history.StartDate)
	assert.Equal(t, "2025-03-01", *s.attendance.history.StartDate)
	assert.Nil(t, s.attendance.history.EndDate)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, attendance.HistoryLimit, resp.Meta.Limit)
	assert.EqualValues(t, 2, resp.Meta.TotalItems)
}

func TestAttendanceHandler_ListAllFilters(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, hrID, "Harriet", user.RoleHR)

	rec, _ := s.do(t, http.MethodGet, "/api/v1/attendance/all?user_id="+employeeID, token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, s.attendance.list.UserID)
	assert.Equal(t, employeeID, *s.attendance.list.UserID)
}

func TestAttendanceHandler_StorageFailure(t *testing.T) {
	s := newTestServer(t)
	s.attendance.err = assert.AnError
	token := s.token(t, hrID, "Harriet", user.RoleHR)

	rec, resp := s.do(t, http.MethodGet, "/api/v1/attendance/today/all", token, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
}

// ===== LEAVE =====

func TestLeaveHandler_CreateUsesTokenIdentity(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)

	rec, _ := s.do(t, http.MethodPost, "/api/v1/leaves", token, map[string]string{
		"start_date": "2025-03-10",
		"end_date":   "2025-03-10",
		"category":   "Half Day Leave",
		"reason":     "Doctor appointment",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, employeeID, s.leave.create.UserID)
	assert.Equal(t, "Jane Doe", s.leave.create.UserName)
	assert.Equal(t, leave.CategoryHalfDayLeave, s.leave.create.Category)
}

func TestLeaveHandler_CreateValidationError(t *testing.T) {
	s := newTestServer(t)
	s.leave.err = validator.ValidationErrors{{Field: "reason", Message: "reason is required"}}
	token := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)

	rec, resp := s.do(t, http.MethodPost, "/api/v1/leaves", token, map[string]string{"start_date": "2025-03-10"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "reason is required", resp.Error.Details["reason"])
}

func TestLeaveHandler_ListFilters(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, hrID, "Harriet", user.RoleHR)

	rec, _ := s.do(t, http.MethodGet, "/api/v1/leaves?status=Pending", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, s.leave.filter.Status)
	assert.Equal(t, leave.StatusPending, *s.leave.filter.Status)
	assert.Nil(t, s.leave.filter.UserID)
}

func TestLeaveHandler_UpdateStatus(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, hrID, "Harriet", user.RoleHR)
	leaveID := "0192a4c1-7b8c-7b4a-8a2b-6b8b8b8b8bff"

	rec, resp := s.do(t, http.MethodPut, "/api/v1/leaves/"+leaveID+"/status", token, map[string]string{
		"status":     "Approved",
		"hr_comment": "Enjoy",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Leave request Approved successfully", resp.Message)
	assert.Equal(t, leaveID, s.leave.update.ID)
	assert.Equal(t, hrID, s.leave.update.ActorID)
	assert.Equal(t, "Harriet", s.leave.update.ActorName)
	require.NotNil(t, s.leave.update.HRComment)
	assert.Equal(t, "Enjoy", *s.leave.update.HRComment)
}

func TestLeaveHandler_UpdateStatusConflicts(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{leave.ErrLeaveRequestAlreadyProcessed, http.StatusConflict},
		{leave.ErrLeaveRequestNotFound, http.StatusNotFound},
	}

	for _, c := range cases {
		t.Run(c.err.Error(), func(t *testing.T) {
			s := newTestServer(t)
			s.leave.err = c.err
			token := s.token(t, adminID, "Ada", user.RoleAdmin)

			rec, _ := s.do(t, http.MethodPut, "/api/v1/leaves/some-id/status", token, map[string]string{"status": "Rejected"})
			assert.Equal(t, c.status, rec.Code)
		})
	}
}

// ===== AUDIT & REPORTS =====

func TestAuditHandler_Limit(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, adminID, "Ada", user.RoleAdmin)

	rec, resp := s.do(t, http.MethodGet, "/api/v1/audit-logs", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, audit.DefaultListLimit, resp.Meta.Limit)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/audit-logs?limit=25", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 25, s.audit.filter.Limit)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/audit-logs?limit=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/audit-logs?limit=5000", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestReportHandler_PassesFilters(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, hrID, "Harriet", user.RoleHR)

	rec, _ := s.do(t, http.MethodGet, "/api/v1/reports/attendance?start_date=2025-03-01&end_date=2025-03-31&department=Engineering", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, s.report.req.Department)
	assert.Equal(t, "Engineering", *s.report.req.Department)
	assert.Equal(t, "2025-03-01", *s.report.req.StartDate)
	assert.Equal(t, "2025-03-31", *s.report.req.EndDate)
}

// ===== HOLIDAYS =====

func TestHolidayHandler_CreateUsesTokenIdentity(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, hrID, "Harriet", user.RoleHR)

	rec, resp := s.do(t, http.MethodPost, "/api/v1/holidays", token, map[string]string{
		"date":        "26-01-2025",
		"description": "Republic Day",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Holiday added successfully", resp.Message)
	assert.Equal(t, hrID, s.holiday.create.ActorID)
	assert.Equal(t, "Harriet", s.holiday.create.ActorName)
	assert.Equal(t, "2025-01-26", s.holiday.create.Date)
}

func TestHolidayHandler_CreateErrors(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, hrID, "Harriet", user.RoleHR)

	rec, _ := s.do(t, http.MethodPost, "/api/v1/holidays", token, map[string]string{"date": "someday"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/api/v1/holidays", token, "{")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	s.holiday.err = holiday.ErrHolidayAlreadyExists
	rec, resp := s.do(t, http.MethodPost, "/api/v1/holidays", token, map[string]string{"date": "2025-01-26", "description": "Again"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Holiday already exists for this date", resp.Error.Message)
}

func TestHolidayHandler_ListFilters(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)

	rec, _ := s.do(t, http.MethodGet, "/api/v1/holidays?start_date=2025-01-01&end_date=2025-12-31", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, s.holiday.filter.StartDate)
	assert.Equal(t, "2025-01-01", *s.holiday.filter.StartDate)
	assert.Equal(t, "2025-12-31", *s.holiday.filter.EndDate)
}

func TestHolidayHandler_Delete(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, adminID, "Ada", user.RoleAdmin)
	id := "0192a4c1-7b8c-7b4a-8a2b-6b8b8b8b8d01"

	rec, resp := s.do(t, http.MethodDelete, "/api/v1/holidays/"+id, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Holiday deleted successfully", resp.Message)
	assert.Equal(t, id, s.holiday.deleted.ID)
	assert.Equal(t, adminID, s.holiday.deleted.ActorID)

	s.holiday.err = holiday.ErrHolidayNotFound
	rec, _ = s.do(t, http.MethodDelete, "/api/v1/holidays/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ===== USERS =====

func TestUserHandler_ListByRole(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, employeeID, "Jane Doe", user.RoleEmployee)

	rec, _ := s.do(t, http.MethodGet, "/api/v1/users/role/HR", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, s.user.filter.Role)
	assert.Equal(t, user.RoleHR, *s.user.filter.Role)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/users/role/Owner", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
