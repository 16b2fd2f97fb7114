package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countKind(cells []models.CalendarCell, k models.CellKind) int {
	n := 0
	for _, c := range cells {
		if c.Kind == k {
			n++
		}
	}
	return n
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.June, 30},
		{2024, time.September, 30},
		{2024, time.November, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysIn(tt.year, tt.month), "%d-%s", tt.year, tt.month)
	}
}

func TestWeekdayHeaders(t *testing.T) {
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, WeekdayHeaders())
}

func TestProject_LeapFebruary(t *testing.T) {
	cells := Project(2024, time.February, nil, models.NewDate(2024, time.February, 10))

	require.Equal(t, 7+4+29, len(cells))
	assert.Equal(t, 7, countKind(cells, models.CellHeader))
	assert.Equal(t, 4, countKind(cells, models.CellPadding))
	assert.Equal(t, 29, countKind(cells, models.CellDay))

	// headers, then padding, then days in order
	for i := 0; i < 7; i++ {
		assert.Equal(t, models.CellHeader, cells[i].Kind)
	}
	for i := 7; i < 11; i++ {
		assert.Equal(t, models.CellPadding, cells[i].Kind)
	}
	for i, c := range cells[11:] {
		assert.Equal(t, i+1, c.Day)
		assert.Equal(t, models.NewDate(2024, time.February, i+1), c.Date)
	}
}

func TestProject_MonthStartingOnSunday_HasNoPadding(t *testing.T) {
	// 2023-01-01 is a Sunday
	cells := Project(2023, time.January, nil, models.Date{})
	assert.Equal(t, 0, countKind(cells, models.CellPadding))
	assert.Equal(t, 31, countKind(cells, models.CellDay))
}

func TestProject_MonthStartingOnSaturday(t *testing.T) {
	// 2024-06-01 is a Saturday
	cells := Project(2024, time.June, nil, models.Date{})
	assert.Equal(t, 6, countKind(cells, models.CellPadding))
	assert.Equal(t, 30, countKind(cells, models.CellDay))
}

func TestProject_HasEntry_IgnoresTimeOfDay(t *testing.T) {
	var fromTimestamp models.Entry
	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":"1","date":"2024-02-05T23:59:00-05:00","content":"late"}`), &fromTimestamp))

	entries := []models.Entry{
		fromTimestamp,
		{ID: "2", Date: models.NewDate(2024, time.February, 14), Content: "a"},
		{ID: "3", Date: models.NewDate(2024, time.February, 14), Content: "b"},
		{ID: "4", Date: models.NewDate(2024, time.March, 5), Content: "other month"},
	}

	days := DayCells(Project(2024, time.February, entries, models.Date{}))
	require.Len(t, days, 29)

	for _, c := range days {
		want := c.Day == 5 || c.Day == 14
		assert.Equal(t, want, c.HasEntry, "day %d", c.Day)
	}
}

func TestProject_IsToday(t *testing.T) {
	today := models.NewDate(2024, time.February, 29)
	days := DayCells(Project(2024, time.February, nil, today))

	for _, c := range days {
		assert.Equal(t, c.Day == 29, c.IsToday, "day %d", c.Day)
	}

	// same day number in another month is not today
	for _, c := range DayCells(Project(2024, time.January, nil, today)) {
		assert.False(t, c.IsToday)
	}
}

func TestProjectMonthOf(t *testing.T) {
	today := models.NewDate(2026, time.October, 18)
	cells := ProjectMonthOf(today, nil)

	days := DayCells(cells)
	require.Len(t, days, 31)
	assert.True(t, days[17].IsToday)
	// 2026-10-01 is a Thursday
	assert.Equal(t, 4, countKind(cells, models.CellPadding))
}
