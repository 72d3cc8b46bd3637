package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserInactive            = errors.New("user is inactive")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
