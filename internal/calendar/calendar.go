// Package calendar projects a month of journal entries onto a Sunday-first
// grid of cells. Everything here is pure; nothing touches storage.
package calendar

import (
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

// DaysInWeek is the column count of the grid.
const DaysInWeek = 7

// DaysIn returns the number of days in month of year, using "day 0 of the
// next month".
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayHeaders returns the short weekday labels, Sunday first.
func WeekdayHeaders() []string {
	h := make([]string, DaysInWeek)
	for i := range h {
		h[i] = time.Weekday(i).String()[:3]
	}
	return h
}

// Project emits 7 header cells, one padding cell per weekday before the 1st,
// then one cell per day of the month.
func Project(year int, month time.Month, entries []models.Entry, today models.Date) []models.CalendarCell {
	first := models.NewDate(year, month, 1)
	days := DaysIn(year, month)
	padding := int(first.Weekday())

	marked := make(map[models.Date]struct{}, len(entries))
	for _, e := range entries {
		marked[e.Date] = struct{}{}
	}

	cells := make([]models.CalendarCell, 0, DaysInWeek+padding+days)
	for _, label := range WeekdayHeaders() {
		cells = append(cells, models.CalendarCell{Kind: models.CellHeader, Label: label})
	}
	for i := 0; i < padding; i++ {
		cells = append(cells, models.CalendarCell{Kind: models.CellPadding})
	}
	for day := 1; day <= days; day++ {
		d := models.Date{Year: year, Month: month, Day: day}
		_, has := marked[d]
		cells = append(cells, models.CalendarCell{
			Kind:     models.CellDay,
			Day:      day,
			Date:     d,
			HasEntry: has,
			IsToday:  d == today,
		})
	}
	return cells
}

// ProjectMonthOf projects the month containing today. There is no month
// navigation.
func ProjectMonthOf(today models.Date, entries []models.Entry) []models.CalendarCell {
	return Project(today.Year, today.Month, entries, today)
}

// DayCells filters out header and padding cells.
func DayCells(cells []models.CalendarCell) []models.CalendarCell {
	out := make([]models.CalendarCell, 0, len(cells))
	for _, c := range cells {
		if c.Kind == models.CellDay {
			out = append(out, c)
		}
	}
	return out
}
