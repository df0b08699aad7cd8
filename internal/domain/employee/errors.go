package employee

import "errors"

var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrInvalidLeaveDelta        = errors.New("delta must be one of: 1, 0.5, -0.5, -1")
	ErrInsufficientLeaveBalance = errors.New("remaining leave days are lower than the requested deduction")
)
