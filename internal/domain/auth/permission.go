package auth

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Attendance
	PermissionAttendanceManageOwn Permission = "attendance.manage_own"

	// Leave Management
	PermissionLeaveManageOwn Permission = "leave.manage_own"
	PermissionLeaveReview    Permission = "leave.review"
	PermissionLeaveViewAll   Permission = "leave.view_all"
	PermissionLeaveCreateAny Permission = "leave.create_any"

	// Directory
	PermissionDirectoryView Permission = "directory.view"
	PermissionTeamView      Permission = "team.view"
	PermissionEmployeeManage Permission = "employee.manage"

	// Holidays
	PermissionHolidayView   Permission = "holiday.view"
	PermissionHolidayManage Permission = "holiday.manage"

	// Projects & Time Logs
	PermissionProjectView      Permission = "project.view"
	PermissionProjectManage    Permission = "project.manage"
	PermissionTimeLogManageOwn Permission = "timelog.manage_own"

	// Dashboard
	PermissionDashboardView Permission = "dashboard.view"
)

// RolePermissions maps roles to their permissions. This table is the single
// authorization contract; every service consults it once per operation.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionAttendanceManageOwn,
		PermissionLeaveManageOwn,
		PermissionLeaveReview,
		PermissionLeaveViewAll,
		PermissionLeaveCreateAny,
		PermissionDirectoryView,
		PermissionTeamView,
		PermissionEmployeeManage,
		PermissionHolidayView,
		PermissionHolidayManage,
		PermissionProjectView,
		PermissionProjectManage,
		PermissionTimeLogManageOwn,
		PermissionDashboardView,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionAttendanceManageOwn,
		PermissionLeaveManageOwn,
		PermissionLeaveReview,
		PermissionDirectoryView,
		PermissionTeamView,
		PermissionHolidayView,
		PermissionHolidayManage,
		PermissionProjectView,
		PermissionProjectManage,
		PermissionTimeLogManageOwn,
		PermissionDashboardView,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionAttendanceManageOwn,
		PermissionLeaveManageOwn,
		PermissionDirectoryView,
		PermissionHolidayView,
		PermissionProjectView,
		PermissionTimeLogManageOwn,
		PermissionDashboardView,
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
