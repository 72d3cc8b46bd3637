package main

import (
	"fmt"
	"time"

	"github.com/hrms-server/hrms-backend-go/internal/domain/report"
	"github.com/hrms-server/hrms-backend-go/internal/domain/user"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func buildReportTable(r report.AttendanceReport) table.Writer {
	t := table.NewWriter()
	t.SetTitle(reportTitle(r))
	t.AppendHeader(table.Row{"Date", "Employee", "Department", "Location", "In (UTC)", "Out (UTC)", "Breaks", "Worked", "Low", "Extra"})

	var total int64
	for _, row := range r.Rows {
		total += row.WorkedSeconds
		t.AppendRow(table.Row{
			row.Date,
			row.Name,
			row.Department,
			row.Location,
			clockTime(row.CheckIn),
			clockTime(row.CheckOut),
			row.BreakCount,
			secondsToString(row.WorkedSeconds),
			row.LowTime,
			row.ExtraTime,
		})
	}

	t.AppendFooter(table.Row{"", "", "", "", "", "", "Total", secondsToString(total), "", ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 7, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	t.SetStyle(table.StyleRounded)
	return t
}

func buildStatsTable(stats []user.EmployeeStats) table.Writer {
	t := table.NewWriter()
	t.SetTitle("Employee statistics")
	t.AppendHeader(table.Row{"Employee", "Department", "Days", "Worked", "Low", "Extra", "Paid", "Unpaid", "Half", "Extra Time", "Leaves"})

	for _, s := range stats {
		t.AppendRow(table.Row{
			s.User.Name,
			s.User.Department,
			s.PresentDays,
			secondsToString(s.TotalWorkedSeconds),
			s.LowTimeCount,
			s.ExtraTimeCount,
			s.Leaves.Paid,
			s.Leaves.Unpaid,
			s.Leaves.HalfDay,
			s.Leaves.ExtraTime,
			s.Leaves.Total,
		})
	}

	t.SortBy([]table.SortBy{{Name: "Department", Mode: table.Asc}, {Name: "Employee", Mode: table.Asc}})
	t.SetStyle(table.StyleRounded)
	return t
}

func reportTitle(r report.AttendanceReport) string {
	title := "Attendance report"
	if r.StartDate != nil || r.EndDate != nil {
		title += fmt.Sprintf(" %s to %s", valueOr(r.StartDate, "..."), valueOr(r.EndDate, "..."))
	}
	if r.Department != nil {
		title += " / " + *r.Department
	}
	return title
}

// clockTime shortens an RFC3339 timestamp to HH:MM; anything else passes through.
func clockTime(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.UTC().Format("15:04")
}

func secondsToString(seconds int64) string {
	return fmt.Sprintf("%d:%02d", seconds/3600, (seconds%3600)/60)
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
