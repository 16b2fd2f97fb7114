package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophdiary/internal/calendar"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/notify"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/dmitrijs2005/gophdiary/internal/client/view"
)

var (
	ErrInvalidDay   = errors.New("invalid day")
	ErrUnknownEntry = errors.New("unknown entry")
)

// Add asks for a date and a multi-line text and stores them as a new entry.
// A blank date keeps the selected one; a typed date becomes the new
// selection, like a date input that keeps its value between submissions.
func (a *App) Add(ctx context.Context) error {
	prompt := fmt.Sprintf("Enter date (YYYY-MM-DD, empty for %s)", a.selected)
	raw, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}

	date := a.selected
	if raw != "" {
		date, err = models.ParseDate(raw)
		if err != nil {
			printlnFn("Invalid date:", raw)
			return err
		}
		a.selected = date
	}

	text, err := getMultiline(a.reader, "Enter entry text (double Enter to finish):", a.out)
	if err != nil {
		return err
	}

	if _, err := a.entries.Add(ctx, date, text); err != nil {
		if errors.Is(err, services.ErrEmptyContent) {
			a.notifier.Show(notify.MsgEmptyContent)
		} else {
			a.log.Error(ctx, "error adding entry", "error", err)
		}
		return err
	}

	a.notifier.Show(notify.MsgEntryAdded)
	return nil
}

// List prints the entry cards, newest first.
func (a *App) List(ctx context.Context) error {
	view.RenderEntries(a.out, a.entries.All())
	return nil
}

// Calendar prints the month containing today.
func (a *App) Calendar(ctx context.Context) error {
	cells := calendar.ProjectMonthOf(a.today(), a.entries.All())
	view.RenderCalendar(a.out, cells, a.renderer.Theme)
	return nil
}

// Pick selects a day of the current month as the date for new entries,
// the counterpart of clicking a calendar cell.
func (a *App) Pick(ctx context.Context, day string) error {
	today := a.today()
	last := calendar.DaysIn(today.Year, today.Month)

	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > last {
		printlnFn(fmt.Sprintf("Day must be between 1 and %d", last))
		return fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	a.selected = models.NewDate(today.Year, today.Month, d)
	printlnFn("Selected date:", a.selected.Format())
	return nil
}

// Delete removes the entry with id. An id that matches nothing is reported
// and nothing is written.
func (a *App) Delete(ctx context.Context, id string) error {
	found := false
	for _, e := range a.entries.All() {
		if e.ID == id {
			found = true
			break
		}
	}
	if !found {
		printlnFn("No entry with id", id)
		return fmt.Errorf("%w: %s", ErrUnknownEntry, id)
	}

	if err := a.entries.Delete(ctx, id); err != nil {
		a.log.Error(ctx, "error deleting entry", "id", id, "error", err)
		return err
	}

	a.notifier.Show(notify.MsgEntryDeleted)
	return nil
}

// Share copies every entry as "<date>\n<content>" blocks to the clipboard.
func (a *App) Share(ctx context.Context) error {
	text, err := a.entries.SerializeForSharing()
	if err != nil {
		if errors.Is(err, services.ErrNothingToShare) {
			a.notifier.Show(notify.MsgNothingToShare)
		}
		return err
	}

	if err := a.clipboard.WriteText(text); err != nil {
		a.log.Warn(ctx, "clipboard write failed", "error", err)
		a.notifier.Show(notify.MsgShareFailed)
		return err
	}

	a.notifier.Show(notify.MsgShared)
	return nil
}

// Theme flips between light and dark and redraws when logged in.
func (a *App) Theme(ctx context.Context) error {
	theme, err := a.themes.Toggle(ctx)
	if err != nil {
		a.log.Error(ctx, "error saving theme", "error", err)
		return err
	}
	a.renderer.Theme = theme
	printlnFn("Theme:", string(theme))
	a.refresh()
	return nil
}
