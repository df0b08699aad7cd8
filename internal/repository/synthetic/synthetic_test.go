package synthetic

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 2024-03-06, mid-morning.
var fixedNow = time.Date(2024, time.March, 6, 9, 30, 0, 0, time.UTC)

func newTestStore() *Store {
	return NewStore(DefaultRoster(), func() time.Time { return fixedNow }, time.UTC)
}

func TestGenerate_TodayAndLaterAreNotYet(t *testing.T) {
	today := calendar.StartOfDay(fixedNow)
	for id := int64(-3); id <= 20; id++ {
		for offset := 0; offset < 10; offset++ {
			day := today.AddDate(0, 0, offset)
			rec := Generate(id, offset, day, today)
			assert.Equal(t, attendance.StatusNotYet, rec.Status, "id=%d offset=%d", id, offset)
		}
	}
}

func TestGenerate_PastIsDeterministicAndEditable(t *testing.T) {
	today := calendar.StartOfDay(fixedNow)
	day := today.AddDate(0, 0, -1)
	for id := int64(1); id <= 8; id++ {
		for idx := 0; idx < 12; idx++ {
			a := Generate(id, idx, day, today)
			b := Generate(id, idx, day, today)
			assert.Equal(t, a, b)
			assert.True(t, a.Status.Editable())
			assert.Equal(t, a, a.Normalize())
		}
	}
}

func TestAttendanceRepository_ListByEmployee_SkipsFuture(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(newTestStore())

	week := calendar.RangeFor(calendar.ViewWeek, fixedNow, time.Monday)
	records, err := repo.ListByEmployee(ctx, 1, week)
	require.NoError(t, err)

	// Monday and Tuesday are in the past; Wednesday onwards is not yet.
	require.Len(t, records, 2)
	assert.Equal(t, "2024-03-04", records[0].Key())
	assert.Equal(t, "2024-03-05", records[1].Key())
}

func TestAttendanceRepository_ListByEmployee_UnknownEmployee(t *testing.T) {
	repo := NewAttendanceRepository(newTestStore())
	_, err := repo.ListByEmployee(context.Background(), 99, calendar.RangeFor(calendar.ViewWeek, fixedNow, time.Monday))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceRepository_Update_PersistsAllFields(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(newTestStore())

	err := repo.Update(ctx, attendance.UpdateAttendanceRequest{
		EmployeeID: 2,
		Date:       "2024-03-05",
		Status:     attendance.StatusOfficialLeave,
		Time:       "08:00",
		Comment:    "medical",
	})
	require.NoError(t, err)

	records, err := repo.ListByEmployee(ctx, 2, calendar.RangeFor(calendar.ViewWeek, fixedNow, time.Monday))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, attendance.StatusOfficialLeave, records[1].Status)
	assert.Equal(t, "medical", records[1].Comment)
	assert.Empty(t, records[1].Time)
	assert.Equal(t, "OFFICIAL_LEAVE (medical)", records[1].Label())
}

func TestAttendanceRepository_Update_RejectsTodayFutureAndWeekend(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(newTestStore())

	for _, date := range []string{"2024-03-06", "2024-03-07", "2024-03-03"} {
		err := repo.Update(ctx, attendance.UpdateAttendanceRequest{EmployeeID: 1, Date: date, Status: attendance.StatusAbsent})
		assert.ErrorIs(t, err, attendance.ErrDateNotEditable, date)
	}
}

func TestEmployeeRepository_AdjustLeaveDays_Clamps(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(newTestStore())

	require.NoError(t, repo.AdjustLeaveDays(ctx, 4, decimal.NewFromInt(-1)))
	emp, err := repo.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.True(t, emp.RemainingLeaveDays.Equal(decimal.Zero))

	require.NoError(t, repo.AdjustLeaveDays(ctx, 4, decimal.NewFromFloat(0.5)))
	emp, err = repo.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "0.5", emp.RemainingLeaveDays.String())

	assert.ErrorIs(t, repo.AdjustLeaveDays(ctx, 42, decimal.NewFromInt(1)), employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_List_KeepsRosterOrder(t *testing.T) {
	employees, err := NewEmployeeRepository(newTestStore()).List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 5)
	for i, e := range employees {
		assert.Equal(t, int64(i+1), e.ID)
	}
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `employees:
  - id: 10
    name: Joko Widodo
    remaining_leave_days: 2.5
    penalty: 1
  - id: 11
    name: Sri Mulyani
    remaining_leave_days: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	roster, err := LoadRoster(path)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Joko Widodo", roster[0].Name)
	assert.Equal(t, "2.5", roster[0].RemainingLeaveDays.String())
	assert.True(t, roster[1].Penalty.Equal(decimal.Zero))
}

func TestLoadRoster_RejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := "employees:\n  - id: 1\n    name: A\n  - id: 1\n    name: B\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := LoadRoster(path)
	assert.Error(t, err)
}
