// Package view renders the entry list and month calendar as terminal text.
// It keeps no state of its own beyond the writer and the current theme.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/calendar"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

const (
	ansiInverse = "\x1b[7m"
	ansiReset   = "\x1b[0m"
	cellWidth   = 5
)

// EntrySource is the read side of services.EntryService.
type EntrySource interface {
	All() []models.Entry
}

type Renderer struct {
	w       io.Writer
	entries EntrySource
	today   func() models.Date
	Theme   models.Theme
}

func NewRenderer(w io.Writer, entries EntrySource, today func() models.Date) *Renderer {
	return &Renderer{w: w, entries: entries, today: today, Theme: models.ThemeLight}
}

// Refresh redraws the entry list followed by the current month.
func (r *Renderer) Refresh() {
	entries := r.entries.All()
	RenderEntries(r.w, entries)
	fmt.Fprintln(r.w)
	RenderCalendar(r.w, calendar.ProjectMonthOf(r.today(), entries), r.Theme)
}

// RenderEntries prints one card per entry, newest first.
func RenderEntries(w io.Writer, entries []models.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries yet")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "── %s ── (id %s)\n", e.Date.Format(), e.ID)
		for _, line := range strings.Split(e.Content, "\n") {
			fmt.Fprintf(w, "   %s\n", line)
		}
	}
}

// RenderCalendar prints cells as a 7-column grid. Days with entries carry a
// '*', today is bracketed and, in the dark theme, shown in inverse video.
func RenderCalendar(w io.Writer, cells []models.CalendarCell, theme models.Theme) {
	for _, c := range cells {
		if c.Kind == models.CellDay {
			fmt.Fprintf(w, "%s %d\n", c.Date.Month, c.Date.Year)
			break
		}
	}

	col := 0
	for _, c := range cells {
		fmt.Fprint(w, formatCell(c, theme))
		col++
		if col == calendar.DaysInWeek {
			fmt.Fprintln(w)
			col = 0
		}
	}
	if col != 0 {
		fmt.Fprintln(w)
	}
}

func formatCell(c models.CalendarCell, theme models.Theme) string {
	switch c.Kind {
	case models.CellHeader:
		return fmt.Sprintf("%-*s", cellWidth, c.Label)
	case models.CellPadding:
		return strings.Repeat(" ", cellWidth)
	}

	mark := " "
	if c.HasEntry {
		mark = "*"
	}
	var s string
	if c.IsToday {
		s = fmt.Sprintf("[%2d]%s", c.Day, mark)
		if theme == models.ThemeDark {
			s = ansiInverse + s + ansiReset
		}
	} else {
		s = fmt.Sprintf(" %2d %s", c.Day, mark)
	}
	return s
}
