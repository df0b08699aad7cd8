package remote

import (
	"context"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/upstream"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	client *upstream.Client
}

func NewEmployeeRepository(client *upstream.Client) employee.EmployeeRepository {
	return &employeeRepository{client: client}
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := e.client.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	employees := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, employee.Employee{
			ID:                 row.ID,
			Name:               row.Name,
			RemainingLeaveDays: row.RemainingLeaveDays,
			Penalty:            row.PenaltyPoints,
		})
	}
	return employees, nil
}

// GetByID implements employee.EmployeeRepository. The upstream has no single
// employee endpoint, so the list is scanned.
func (e *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	employees, err := e.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	for _, emp := range employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// AdjustLeaveDays implements employee.EmployeeRepository. The balance is not
// clamped here; the upstream owns it.
func (e *employeeRepository) AdjustLeaveDays(ctx context.Context, id int64, delta decimal.Decimal) error {
	return e.client.AdjustVacationDays(ctx, id, delta.InexactFloat64())
}
