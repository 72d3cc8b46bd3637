package user

type Permission string

const (
	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Attendance Management
	PermissionAttendanceViewOwn  Permission = "attendance.view_own"
	PermissionAttendanceCreate   Permission = "attendance.create"
	PermissionAttendanceViewAll  Permission = "attendance.view_all"
	PermissionAttendanceBackfill Permission = "attendance.backfill"

	// Reports
	PermissionReportsView Permission = "reports.view"

	// Audit
	PermissionAuditView Permission = "audit.view"

	// Holidays
	PermissionHolidayView   Permission = "holiday.view"
	PermissionHolidayCreate Permission = "holiday.create"
	PermissionHolidayDelete Permission = "holiday.delete"

	// Users
	PermissionUserView  Permission = "user.view"
	PermissionUserStats Permission = "user.stats"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionAttendanceBackfill,
		PermissionReportsView,
		PermissionAuditView,
		PermissionHolidayView,
		PermissionHolidayCreate,
		PermissionHolidayDelete,
		PermissionUserView,
		PermissionUserStats,
	},
	RoleHR: {
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionAttendanceBackfill,
		PermissionReportsView,
		PermissionHolidayView,
		PermissionHolidayCreate,
		PermissionUserView,
		PermissionUserStats,
	},
	RoleEmployee: {
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionHolidayView,
		PermissionUserView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
