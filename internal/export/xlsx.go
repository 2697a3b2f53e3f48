// Package export renders an employee's shifts as a spreadsheet.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/daphos/shift-service/internal/analytics"
	"github.com/daphos/shift-service/internal/domain"
)

// Sheet names of the workbook.
const (
	ShiftsSheet = "Shifts"
	DailySheet  = "Daily"
)

const cellTimeLayout = "2006-01-02 15:04"

// ContentType is the MIME type of the written workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteShifts writes a workbook with the shift table and the daily breakdown to w.
// Shifts are written in the given order.
func WriteShifts(w io.Writer, employee domain.Employee, shifts []domain.Shift) error {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName("Sheet1", ShiftsSheet); err != nil {
		return err
	}
	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rows := [][]any{{"Start", "End", "Hours", "Type", "Note"}}
	for _, s := range shifts {
		rows = append(rows, []any{
			s.Start.Format(cellTimeLayout),
			s.End.Format(cellTimeLayout),
			analytics.Round(analytics.Duration(s), 2),
			string(s.Type()),
			s.Note,
		})
	}
	rows = append(rows, []any{"Total", "", analytics.Round(analytics.TotalHours(shifts), 2), fmt.Sprintf("%d shifts", len(shifts)), employee.Name})
	if err := writeRows(file, ShiftsSheet, rows); err != nil {
		return err
	}
	if err := styleRow(file, ShiftsSheet, 1, 5, bold); err != nil {
		return err
	}
	if err := styleRow(file, ShiftsSheet, len(rows), 5, bold); err != nil {
		return err
	}
	if err := file.SetColWidth(ShiftsSheet, "A", "B", 18); err != nil {
		return err
	}
	if err := file.SetColWidth(ShiftsSheet, "E", "E", 40); err != nil {
		return err
	}

	if _, err := file.NewSheet(DailySheet); err != nil {
		return err
	}
	daily := analytics.DailyHoursBreakdown(shifts, nil)
	dailyRows := [][]any{{"Date", "Day", "Hours"}}
	for _, d := range daily {
		dailyRows = append(dailyRows, []any{d.Date.Format(domain.DateLayout), d.Label, d.Hours})
	}
	if err := writeRows(file, DailySheet, dailyRows); err != nil {
		return err
	}
	if err := styleRow(file, DailySheet, 1, 3, bold); err != nil {
		return err
	}

	return file.Write(w)
}

func writeRows(file *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func styleRow(file *excelize.File, sheet string, row, cols, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return file.SetCellStyle(sheet, first, last, style)
}
