package user

import (
	"testing"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleAdmin, PermissionUserManage, true},
		{RoleAdmin, PermissionLeaveApprove, true},
		{RoleAdmin, PermissionDashboardView, true},
		{RoleEmployee, PermissionAttendanceCheckIn, true},
		{RoleEmployee, PermissionLeaveCreate, true},
		{RoleEmployee, PermissionUserManage, false},
		{RoleEmployee, PermissionLeaveApprove, false},
		{RoleEmployee, PermissionDashboardView, false},
		{Role("Manager"), PermissionViewOwnRecords, false},
	}
	for _, c := range cases {
		got := HasPermission(c.role, c.permission)
		if got != c.want {
			t.Errorf("HasPermission(%q, %q) = %v, want %v", c.role, c.permission, got, c.want)
		}
	}
}

func TestCanViewRecord(t *testing.T) {
	cases := []struct {
		name    string
		role    Role
		actorID string
		ownerID string
		want    bool
	}{
		{"admin sees any record", RoleAdmin, "admin-1", "user-2", true},
		{"employee sees own record", RoleEmployee, "user-1", "user-1", true},
		{"employee blocked from others", RoleEmployee, "user-1", "user-2", false},
		{"unknown role blocked from others", Role(""), "user-1", "user-2", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CanViewRecord(c.role, c.actorID, c.ownerID)
			if got != c.want {
				t.Errorf("CanViewRecord(%q, %q, %q) = %v, want %v", c.role, c.actorID, c.ownerID, got, c.want)
			}
		})
	}
}

func TestCanMutateTaskField(t *testing.T) {
	adminFields := []TaskField{
		TaskFieldTitle, TaskFieldDescription, TaskFieldAssignee, TaskFieldPriority,
		TaskFieldStartDate, TaskFieldDueDate, TaskFieldStatus, TaskFieldProgress, TaskFieldNotes,
	}
	for _, f := range adminFields {
		if !CanMutateTaskField(RoleAdmin, false, f) {
			t.Errorf("CanMutateTaskField(Admin, false, %q) = false, want true", f)
		}
	}

	assigneeAllowed := []TaskField{TaskFieldStatus, TaskFieldProgress, TaskFieldNotes}
	for _, f := range assigneeAllowed {
		if !CanMutateTaskField(RoleEmployee, true, f) {
			t.Errorf("CanMutateTaskField(Employee, assignee, %q) = false, want true", f)
		}
	}

	assigneeDenied := []TaskField{
		TaskFieldTitle, TaskFieldDescription, TaskFieldAssignee,
		TaskFieldPriority, TaskFieldStartDate, TaskFieldDueDate,
	}
	for _, f := range assigneeDenied {
		if CanMutateTaskField(RoleEmployee, true, f) {
			t.Errorf("CanMutateTaskField(Employee, assignee, %q) = true, want false", f)
		}
	}

	// Non-assignee employees may not touch anything
	if CanMutateTaskField(RoleEmployee, false, TaskFieldStatus) {
		t.Error("CanMutateTaskField(Employee, not assignee, status) = true, want false")
	}
}
