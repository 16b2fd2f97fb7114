package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/client/clipboard"
	"github.com/dmitrijs2005/gophdiary/internal/client/config"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/notify"
	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/dmitrijs2005/gophdiary/internal/client/storage"
	"github.com/dmitrijs2005/gophdiary/internal/client/view"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
)

type App struct {
	config    *config.Config
	log       logging.Logger
	closers   []io.Closer
	sessions  services.SessionService
	entries   services.EntryService
	themes    services.ThemeService
	renderer  *view.Renderer
	notifier  *notify.Notifier
	clipboard clipboard.Writer
	reader    *bufio.Reader
	out       io.Writer
	clock     func() time.Time

	// selected is the date new entries get when the user keeps the default.
	selected models.Date
}

// NewApp builds the logger and opens the configured store, then wires the
// services against stdin/stdout and the system clipboard.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.New(logging.Options{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		File:       c.LogFile,
		MaxSizeMB:  logMaxSizeMB,
		MaxBackups: logMaxBackups,
		Quiet:      c.LogFile != "",
	})

	store, err := storage.Open(ctx, c.StorageBackend, c.DatabasePath, c.DataDir)
	if err != nil {
		log.Error(ctx, "error opening storage", "backend", c.StorageBackend, "error", err)
		_ = log.Close()
		return nil, err
	}

	a := newApp(c, log, store.Records, clipboard.NewSystem(), os.Stdin, os.Stdout, time.Now)
	a.closers = []io.Closer{store, log}
	return a, nil
}

func newApp(
	c *config.Config,
	log logging.Logger,
	records kv.Repository,
	clip clipboard.Writer,
	in io.Reader,
	out io.Writer,
	clock func() time.Time,
) *App {
	a := &App{
		config:    c,
		log:       log,
		sessions:  services.NewSessionService(c.Users, records, log),
		entries:   services.NewEntryService(records, log),
		themes:    services.NewThemeService(records),
		notifier:  notify.New(out, c.NotificationTimeout),
		clipboard: clip,
		reader:    bufio.NewReader(in),
		out:       out,
		clock:     clock,
	}
	a.renderer = view.NewRenderer(out, a.entries, a.today)
	a.entries.Subscribe(a.refresh)
	a.selected = a.today()
	return a
}

// Run executes the REPL and releases the store and log file when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the store, then the log file.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current() != nil
}

func (a *App) today() models.Date {
	return models.DateOf(a.clock())
}

// refresh redraws entries and calendar after every collection change while
// somebody is logged in.
func (a *App) refresh() {
	if a.isLoggedIn() {
		a.renderer.Refresh()
	}
}

func (a *App) getStatus() string {
	parts := make([]string, 0, 2)
	if id := a.sessions.Current(); id != nil {
		parts = append(parts, id.Username)
	}
	parts = append(parts, string(a.renderer.Theme))

	s := "(" + strings.Join(parts, " ") + ")"
	if msg := a.notifier.Current(); msg != "" {
		s += " [" + msg + "]"
	}
	return s
}
