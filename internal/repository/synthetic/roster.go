package synthetic

import (
	"fmt"
	"os"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type rosterFile struct {
	Employees []rosterEntry `yaml:"employees"`
}

type rosterEntry struct {
	ID                 int64   `yaml:"id"`
	Name               string  `yaml:"name"`
	RemainingLeaveDays float64 `yaml:"remaining_leave_days"`
	Penalty            float64 `yaml:"penalty"`
}

// DefaultRoster is the built-in employee list used when no roster file is configured.
func DefaultRoster() []employee.Employee {
	return []employee.Employee{
		{ID: 1, Name: "Andi Pratama", RemainingLeaveDays: decimal.NewFromInt(12), Penalty: decimal.Zero},
		{ID: 2, Name: "Siti Rahmawati", RemainingLeaveDays: decimal.NewFromFloat(8.5), Penalty: decimal.NewFromInt(2)},
		{ID: 3, Name: "Budi Santoso", RemainingLeaveDays: decimal.NewFromInt(3), Penalty: decimal.NewFromInt(5)},
		{ID: 4, Name: "Dewi Lestari", RemainingLeaveDays: decimal.NewFromFloat(0.5), Penalty: decimal.NewFromInt(1)},
		{ID: 5, Name: "Rizky Hidayat", RemainingLeaveDays: decimal.Zero, Penalty: decimal.NewFromInt(8)},
	}
}

// LoadRoster reads a YAML roster:
//
//	employees:
//	  - id: 1
//	    name: Andi Pratama
//	    remaining_leave_days: 12
//	    penalty: 0
func LoadRoster(path string) ([]employee.Employee, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	seen := make(map[int64]bool, len(file.Employees))
	roster := make([]employee.Employee, 0, len(file.Employees))
	for i, e := range file.Employees {
		if e.ID <= 0 {
			return nil, fmt.Errorf("roster entry %d: id must be positive", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("roster entry %d: duplicate id %d", i, e.ID)
		}
		if e.RemainingLeaveDays < 0 {
			return nil, fmt.Errorf("roster entry %d: remaining_leave_days must not be negative", i)
		}
		seen[e.ID] = true
		roster = append(roster, employee.Employee{
			ID:                 e.ID,
			Name:               e.Name,
			RemainingLeaveDays: decimal.NewFromFloat(e.RemainingLeaveDays),
			Penalty:            decimal.NewFromFloat(e.Penalty),
		})
	}
	return roster, nil
}
