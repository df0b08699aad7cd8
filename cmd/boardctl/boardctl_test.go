package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/board"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockFor(t *testing.T) {
	clock, err := clockFor("", time.UTC)
	require.NoError(t, err)
	assert.Nil(t, clock)

	clock, err = clockFor("2024-03-06", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC), clock())

	_, err = clockFor("06/03/2024", time.UTC)
	assert.Error(t, err)
}

func TestPrintRange(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRange(&buf, board.RangeResponse{
		Mode:  "day",
		From:  "2024-03-06",
		To:    "2024-03-06",
		Today: "2024-03-06",
		Columns: []board.Column{
			{Date: "2024-03-06", Weekday: "Wednesday", Label: "Wed, 06 Mar"},
		},
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "day: 2024-03-06 .. 2024-03-06 (today 2024-03-06, 1 workdays)", lines[0])
	assert.Equal(t, "2024-03-06  Wednesday  Wed, 06 Mar", lines[1])
}

func TestPrintGrid(t *testing.T) {
	grid := board.Grid{
		Columns: []board.Column{{Date: "2024-03-05", Label: "Tue"}, {Date: "2024-03-06", Label: "Wed"}},
		Rows: []board.Row{
			{
				Employee:      employee.EmployeeResponse{Name: "Ani", RemainingLeaveDays: decimal.NewFromFloat(1.5), Penalty: decimal.Zero},
				RecordsLoaded: true,
				Cells: []board.Cell{
					{Date: "2024-03-05", Status: attendance.StatusOfficialLeave, Label: "OFFICIAL_LEAVE (medical)", Stored: true},
					{Date: "2024-03-06", Status: attendance.StatusNotYet, Label: "NOT_YET"},
				},
			},
			{
				Employee: employee.EmployeeResponse{Name: "Budi", RemainingLeaveDays: decimal.Zero, Penalty: decimal.NewFromInt(3)},
				Cells: []board.Cell{
					{Date: "2024-03-05", Status: attendance.StatusNotYet, Label: "NOT_YET"},
					{Date: "2024-03-06", Status: attendance.StatusNotYet, Label: "NOT_YET"},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printGrid(&buf, grid))
	out := buf.String()

	assert.Contains(t, out, "EMPLOYEE")
	assert.Contains(t, out, "OFFICIAL_LEAVE (medical)")
	assert.Contains(t, out, "Budi (!)")
	assert.NotContains(t, out, "NOT_YET")
}
