package user

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrEmailExists              = errors.New("email already exists")
	ErrAdminPrivilegeRequired   = errors.New("admin privilege required")
	ErrRecordAccessDenied       = errors.New("access to this record is denied")
	ErrCannotDeleteDefaultAdmin = errors.New("cannot delete default admin user")
)
