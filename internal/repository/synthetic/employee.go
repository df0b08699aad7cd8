package synthetic

import (
	"context"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.store.mu.RLock()
	defer e.store.mu.RUnlock()

	employees := make([]employee.Employee, 0, len(e.store.order))
	for _, id := range e.store.order {
		employees = append(employees, e.store.employees[id])
	}
	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return employee.Employee{}, err
	}

	e.store.mu.RLock()
	defer e.store.mu.RUnlock()

	emp, ok := e.store.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// AdjustLeaveDays implements employee.EmployeeRepository. The balance is
// floored at zero.
func (e *employeeRepository) AdjustLeaveDays(ctx context.Context, id int64, delta decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.store.mu.Lock()
	defer e.store.mu.Unlock()

	emp, ok := e.store.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.RemainingLeaveDays = emp.ApplyClamped(delta)
	e.store.employees[id] = emp
	return nil
}
