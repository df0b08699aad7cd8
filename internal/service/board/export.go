package board

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/board"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

// fixed columns before the date columns: name, leave days, penalty
const leadColumns = 3

// WriteWorkbook renders the grid as a single-sheet XLSX workbook.
func WriteWorkbook(grid board.Grid, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	placeholderStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Color: "#808080"},
	})
	if err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(leadColumns + len(grid.Columns))
	if err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("ATTENDANCE %s - %s", grid.From, grid.To))
	f.MergeCell(sheetName, "A1", lastCol+"1")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)
	f.SetRowHeight(sheetName, 1, 25)

	f.SetCellValue(sheetName, "A3", "Employee")
	f.SetCellValue(sheetName, "B3", "Leave Days")
	f.SetCellValue(sheetName, "C3", "Penalty")
	for i, col := range grid.Columns {
		cell, err := excelize.CoordinatesToCellName(leadColumns+i+1, 3)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, col.Label)
	}
	f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	for r, row := range grid.Rows {
		line := r + 4
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", line), row.Employee.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", line), row.Employee.RemainingLeaveDays.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", line), row.Employee.Penalty.InexactFloat64())

		for c, cell := range row.Cells {
			name, err := excelize.CoordinatesToCellName(leadColumns+c+1, line)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, name, cell.Label)
			if !cell.Stored {
				f.SetCellStyle(sheetName, name, name, placeholderStyle)
			}
		}
	}

	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "C", 12)
	if len(grid.Columns) > 0 {
		firstDate, _ := excelize.ColumnNumberToName(leadColumns + 1)
		f.SetColWidth(sheetName, firstDate, lastCol, 22)
	}

	f.DeleteSheet("Sheet1")

	return f.Write(w)
}
