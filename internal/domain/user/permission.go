package user

type Permission string

const (
	// Self Management
	PermissionViewOwnRecords Permission = "records.view_own"

	// Attendance Management
	PermissionAttendanceCheckIn Permission = "attendance.check_in"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Task Management
	PermissionTaskViewOwn      Permission = "task.view_own"
	PermissionTaskUpdateStatus Permission = "task.update_status"
	PermissionTaskViewAll      Permission = "task.view_all"
	PermissionTaskManage       Permission = "task.manage"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// User Management
	PermissionUserManage Permission = "user.manage"

	// Dashboard
	PermissionDashboardView Permission = "dashboard.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionViewOwnRecords,
		PermissionAttendanceCheckIn,
		PermissionAttendanceViewAll,
		PermissionTaskViewOwn,
		PermissionTaskUpdateStatus,
		PermissionTaskViewAll,
		PermissionTaskManage,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionUserManage,
		PermissionDashboardView,
	},
	RoleEmployee: {
		// Employee works with their own records only
		PermissionViewOwnRecords,
		PermissionAttendanceCheckIn,
		PermissionTaskViewOwn,
		PermissionTaskUpdateStatus,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
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

// CanViewRecord reports whether an actor may read a record owned by ownerID.
// Admins see everything; employees only their own records.
func CanViewRecord(role Role, actorID string, ownerID string) bool {
	if role == RoleAdmin {
		return true
	}
	return actorID == ownerID
}

// TaskField identifies a mutable task attribute for field-level authorization.
type TaskField string

const (
	TaskFieldTitle       TaskField = "title"
	TaskFieldDescription TaskField = "description"
	TaskFieldAssignee    TaskField = "assignee"
	TaskFieldPriority    TaskField = "priority"
	TaskFieldStartDate   TaskField = "start_date"
	TaskFieldDueDate     TaskField = "due_date"
	TaskFieldStatus      TaskField = "status"
	TaskFieldProgress    TaskField = "progress"
	TaskFieldNotes       TaskField = "notes"
)

// assigneeMutableTaskFields are the fields a non-admin assignee may change.
var assigneeMutableTaskFields = map[TaskField]bool{
	TaskFieldStatus:   true,
	TaskFieldProgress: true,
	TaskFieldNotes:    true,
}

// CanMutateTaskField reports whether an actor may change a task field.
// Admins may change every field; the assignee only status, progress and notes.
func CanMutateTaskField(role Role, isAssignee bool, field TaskField) bool {
	if role == RoleAdmin {
		return true
	}
	return isAssignee && assigneeMutableTaskFields[field]
}
