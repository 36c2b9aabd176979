package report

import "context"

// ReportService generates downloadable report files.
type ReportService interface {
	// MonthlyAttendanceReport builds an XLSX workbook of one employee's
	// attendance for a calendar month: a row per recorded day plus a
	// totals row.
	MonthlyAttendanceReport(ctx context.Context, req MonthlyAttendanceReportRequest) (File, error)
}
