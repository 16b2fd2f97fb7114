package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/client/config"
	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Thursday; February 2024 has 29 days and starts on a Thursday.
var fixedNow = time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)

type fakeClipboard struct {
	text  string
	err   error
	calls int
}

func (f *fakeClipboard) WriteText(s string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.text = s
	return nil
}

// failingRepo fails Set or Delete on demand.
type failingRepo struct {
	kv.Repository
	setErr error
	delErr error
}

func (f *failingRepo) Set(ctx context.Context, key kv.Key, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Repository.Set(ctx, key, value)
}

func (f *failingRepo) Delete(ctx context.Context, key kv.Key) error {
	if f.delErr != nil {
		return f.delErr
	}
	return f.Repository.Delete(ctx, key)
}

func newRecords() kv.Repository {
	return kv.NewFileRepository(afero.NewMemMapFs(), "/diary")
}

func newTestApp(t *testing.T, records kv.Repository, input string) (*App, *bytes.Buffer, *fakeClipboard) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.NotificationTimeout = time.Minute

	out := &bytes.Buffer{}
	clip := &fakeClipboard{}
	a := newApp(cfg, logging.Discard(), records, clip, strings.NewReader(input), out,
		func() time.Time { return fixedNow })
	return a, out, clip
}

// pipedStdin makes GetPassword read from the app reader instead of the tty.
func pipedStdin(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func loginAs(t *testing.T, a *App, username, password string) {
	t.Helper()
	ctx := context.Background()
	id, err := a.sessions.Login(ctx, username, password)
	require.NoError(t, err)
	require.NoError(t, a.entries.Load(ctx, id))
}
