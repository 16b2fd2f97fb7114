package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/calendar"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticEntries []models.Entry

func (s staticEntries) All() []models.Entry { return s }

func TestRenderEntries(t *testing.T) {
	var buf bytes.Buffer
	RenderEntries(&buf, []models.Entry{
		{ID: "b", Date: models.NewDate(2024, time.January, 2), Content: "B\nmore"},
		{ID: "a", Date: models.NewDate(2024, time.January, 1), Content: "A"},
	})

	want := "── January 2, 2024 ── (id b)\n   B\n   more\n" +
		"── January 1, 2024 ── (id a)\n   A\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderEntries_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderEntries(&buf, nil)
	assert.Equal(t, "No entries yet\n", buf.String())
}

func TestRenderCalendar_Grid(t *testing.T) {
	today := models.NewDate(2024, time.February, 14)
	entries := []models.Entry{{ID: "1", Date: models.NewDate(2024, time.February, 1), Content: "x"}}

	var buf bytes.Buffer
	RenderCalendar(&buf, calendar.ProjectMonthOf(today, entries), models.ThemeLight)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+1+5) // title, header row, 5 week rows
	assert.Equal(t, "February 2024", lines[0])
	assert.Equal(t, "Sun  Mon  Tue  Wed  Thu  Fri  Sat  ", lines[1])
	// four blank columns before Thursday the 1st, which has an entry
	assert.True(t, strings.HasPrefix(lines[2], strings.Repeat(" ", 20)+"  1 *"), lines[2])
	assert.Contains(t, buf.String(), "[14] ")
	assert.NotContains(t, buf.String(), ansiInverse)
}

func TestRenderCalendar_DarkThemeHighlightsToday(t *testing.T) {
	today := models.NewDate(2024, time.February, 14)

	var buf bytes.Buffer
	RenderCalendar(&buf, calendar.ProjectMonthOf(today, nil), models.ThemeDark)
	assert.Contains(t, buf.String(), ansiInverse+"[14] "+ansiReset)
}

func TestRenderer_Refresh(t *testing.T) {
	var buf bytes.Buffer
	src := staticEntries{{ID: "a", Date: models.NewDate(2024, time.March, 3), Content: "A"}}
	r := NewRenderer(&buf, src, func() models.Date { return models.NewDate(2024, time.March, 10) })

	r.Refresh()

	out := buf.String()
	assert.Contains(t, out, "── March 3, 2024 ── (id a)")
	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "  3 *")
	assert.Contains(t, out, "[10] ")
}
