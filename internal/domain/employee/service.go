package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns every employee with the leave controls enabled for their balance
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// AdjustLeaveDays applies one of the fixed deltas and returns the reloaded employee list
	AdjustLeaveDays(ctx context.Context, req AdjustLeaveDaysRequest) ([]EmployeeResponse, error)
}
