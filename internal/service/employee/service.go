package employee

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}
	return responses, nil
}

// AdjustLeaveDays implements employee.EmployeeService.
func (e *EmployeeServiceImpl) AdjustLeaveDays(ctx context.Context, req employee.AdjustLeaveDaysRequest) ([]employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	// A disabled control never reaches the backend.
	if !emp.CanApply(req.Delta) {
		return nil, employee.ErrInsufficientLeaveBalance
	}

	if err := e.EmployeeRepository.AdjustLeaveDays(ctx, req.EmployeeID, req.Delta); err != nil {
		return nil, fmt.Errorf("failed to adjust leave days: %w", err)
	}

	return e.ListEmployees(ctx)
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}
