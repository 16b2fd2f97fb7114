package cli

import (
	"context"
	"fmt"
)

// Root restores the saved theme and session, then runs the REPL until the
// user exits or input ends.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to GophDiary (type 'help' for commands)")

	theme, err := a.themes.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "using default theme", "error", err)
	}
	a.renderer.Theme = theme

	identity, err := a.sessions.Restore(ctx)
	if err != nil {
		a.log.Error(ctx, "error restoring session", "error", err)
	}
	if identity != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s", identity.Username))
		if err := a.entries.Load(ctx, identity); err != nil {
			a.log.Error(ctx, "error loading entries", "user", identity.Username, "error", err)
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
