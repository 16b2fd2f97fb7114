package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophdiary/internal/client/notify"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/dmitrijs2005/gophdiary/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Login prompts the user for credentials and checks them against the roster.
//
// On success the identity becomes the active session, the selected date is
// reset to today and the user's entries are loaded, which renders them. A
// rejected login shows "Invalid username or password" and returns
// services.ErrInvalidCredentials. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	identity, err := a.sessions.Login(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			a.notifier.Show(notify.MsgInvalidCredentials)
		} else {
			a.log.Error(ctx, "login failed", "user", userName, "error", err)
		}
		return err
	}

	a.selected = a.today()
	if err := a.entries.Load(ctx, identity); err != nil {
		a.log.Error(ctx, "error loading entries", "user", identity.Username, "error", err)
		return err
	}
	return nil
}

// Logout forgets the session, both in memory and in the store, and drops
// the loaded entries. The entries themselves stay persisted.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.entries.Reset()
	a.notifier.Show(notify.MsgLoggedOut)
	return nil
}
