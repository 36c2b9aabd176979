package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/tempohr/tempo-backend-go/internal/domain/attendance"
	"github.com/tempohr/tempo-backend-go/internal/domain/employee"
	"github.com/tempohr/tempo-backend-go/internal/domain/report"
	"github.com/tempohr/tempo-backend-go/internal/pkg/jwt"
	"github.com/xuri/excelize/v2"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

var reportColumns = []string{"Date", "Weekday", "Check In", "Check Out", "Status", "Worked Hours", "Late Minutes", "Overtime Hours"}

// MonthlyAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) MonthlyAttendanceReport(ctx context.Context, req report.MonthlyAttendanceReportRequest) (report.File, error) {
	if err := req.Validate(); err != nil {
		return report.File{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return report.File{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return report.File{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, req.EmployeeID, time.Month(req.Month), req.Year, companyID)
	if err != nil {
		return report.File{}, fmt.Errorf("failed to list attendance for report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%04d-%02d", req.Year, req.Month)
	index, err := f.NewSheet(sheet)
	if err != nil {
		return report.File{}, fmt.Errorf("failed to create report sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	title := fmt.Sprintf("Attendance - %s - %s %d", emp.FullName, time.Month(req.Month), req.Year)
	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", "H1")
	if titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	}); err == nil {
		f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	}

	for i, col := range reportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, col)
	}
	if headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	}); err == nil {
		f.SetCellStyle(sheet, "A3", "H3", headerStyle)
	}

	var (
		totalWorked   float64
		totalLate     int
		totalOvertime float64
		presentDays   int
	)

	row := 4
	for _, att := range records {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), att.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), att.Date.Weekday().String())
		if att.CheckIn != nil {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), *att.CheckIn)
		}
		if att.CheckOut != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), *att.CheckOut)
		}
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(att.Status))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), att.WorkedHours)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), att.LateMinutes)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), att.OvertimeHours)

		totalWorked += att.WorkedHours
		totalLate += att.LateMinutes
		totalOvertime += att.OvertimeHours
		if att.Status == attendance.StatusPresent {
			presentDays++
		}
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("%d present", presentDays))
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), totalWorked)
	f.SetCellValue(sheet, fmt.Sprintf("G%d", row), totalLate)
	f.SetCellValue(sheet, fmt.Sprintf("H%d", row), totalOvertime)
	if totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "top", Color: "#000000", Style: 1},
		},
	}); err == nil {
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), totalStyle)
	}

	f.SetColWidth(sheet, "A", "B", 12)
	f.SetColWidth(sheet, "C", "E", 10)
	f.SetColWidth(sheet, "F", "H", 14)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return report.File{}, fmt.Errorf("failed to write report workbook: %w", err)
	}

	return report.File{
		Filename: fmt.Sprintf("attendance_%s_%04d-%02d.xlsx", emp.ID, req.Year, req.Month),
		Content:  buf.Bytes(),
	}, nil
}
