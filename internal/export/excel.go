// Package export renders record lists as downloadable spreadsheets. One
// sheet per file, localized headers, nothing persisted server-side.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/floshq/flos-admin-api/internal/model"
)

const blank = "-"

// Sheet is a flat record list ready for serialization.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// Filename names the download after its content and the current date,
// e.g. 打卡記錄_2024-03-18.xlsx.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, now.Format(model.DateOnly))
}

// WriteXLSX serializes the sheet to w as a single-sheet workbook with a
// bold header row.
func WriteXLSX(w io.Writer, sheet Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Name
	// Excel caps sheet names at 31 characters.
	if len(name) > 31 {
		name = name[:31]
	}
	f.SetSheetName("Sheet1", name)

	for i, col := range sheet.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(name, cell, col); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, 1)
		endCell, _ := excelize.CoordinatesToCellName(len(sheet.Headers), 1)
		_ = f.SetCellStyle(name, startCell, endCell, style)
	}

	for rowIdx, row := range sheet.Rows {
		for colIdx, val := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(name, cell, val); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// AttendanceSheet flattens the attendance log the way the overview table
// displays it.
func AttendanceSheet(entries []*model.AttendanceLogEntry) Sheet {
	sheet := Sheet{
		Name:    "打卡記錄",
		Headers: []string{"診所", "員工姓名", "員工編號", "上班時間", "下班時間", "工作時數", "打卡地點"},
	}

	for _, e := range entries {
		checkOut := "尚未打卡"
		if e.CheckOutTime != nil {
			checkOut = model.FormatTimestamp(*e.CheckOutTime)
		}
		sheet.Rows = append(sheet.Rows, []interface{}{
			e.ClinicName,
			e.EmployeeName,
			e.EmployeeCode,
			model.FormatTimestamp(e.CheckInTime),
			checkOut,
			model.WorkHours(e.CheckInTime, e.CheckOutTime),
			orBlank(e.Location),
		})
	}
	return sheet
}

// AppointmentsSheet flattens appointments with localized status labels.
func AppointmentsSheet(appointments []*model.Appointment) Sheet {
	sheet := Sheet{
		Name:    "預約記錄",
		Headers: []string{"診所", "客戶姓名", "客戶電話", "預約日期", "預約時間", "療程", "醫師", "狀態", "備註", "建立時間"},
	}

	for _, apt := range appointments {
		sheet.Rows = append(sheet.Rows, []interface{}{
			orBlank(apt.ClinicName),
			apt.CustomerName,
			apt.CustomerPhone,
			apt.AppointmentDate,
			apt.AppointmentTime,
			apt.Treatment,
			orBlank(apt.Doctor),
			apt.Status.Label(),
			orBlank(apt.Notes),
			model.FormatTimestamp(apt.CreatedAt),
		})
	}
	return sheet
}

func orBlank(s *string) string {
	if s == nil || *s == "" {
		return blank
	}
	return *s
}
