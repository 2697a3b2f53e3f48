package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/daphos/shift-service/internal/analytics"
	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/service"
)

func printDashboard(out io.Writer, d *service.EmployeeDashboard, ref time.Time) error {
	s := d.Summary
	status := "active"
	if !d.Employee.IsActive {
		status = "inactive"
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s (%s)\n", d.Employee.Name, d.Employee.Role, status)
	fmt.Fprintf(w, "reference\t%s\n", ref.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "total hours\t%.1f\n", s.TotalHours)
	fmt.Fprintf(w, "shifts\t%d\n", s.ShiftCount)
	fmt.Fprintf(w, "avg shift\t%.1f h\n", s.AverageShiftDuration)
	fmt.Fprintf(w, "utilization\t%.0f%% of %.0f h (%.1f h available)\n", s.Utilization, s.FullTimeHours, s.Capacity.AvailableHours)
	fmt.Fprintf(w, "types\tmorning %d, afternoon %d, night %d\n", s.Types.Morning, s.Types.Afternoon, s.Types.Night)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nlast 7 days")
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, day := range s.Daily.LastDays(7) {
		fmt.Fprintf(w, "%s\t%.1f h\t%s\n", day.Label, day.Hours, bar(day.Hours))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nweek of %s\n", analytics.WeekStart(ref).Format(domain.DateLayout))
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, day := range s.Week {
		marker := ""
		if day.IsToday {
			marker = "*"
		}
		entries := make([]string, 0, len(day.Shifts))
		for _, ws := range day.Shifts {
			entries = append(entries, fmt.Sprintf("%s-%s %s",
				ws.Shift.Start.Format("15:04"), ws.Shift.End.Format("15:04"), ws.Type))
		}
		if len(entries) == 0 {
			entries = append(entries, "-")
		}
		fmt.Fprintf(w, "%s%s\t%s\n", marker, analytics.GermanDayLabel(day.Date), strings.Join(entries, ", "))
	}
	return w.Flush()
}

func bar(hours float64) string {
	n := int(hours + 0.5)
	if n < 0 {
		n = 0
	}
	return strings.Repeat("#", n)
}
