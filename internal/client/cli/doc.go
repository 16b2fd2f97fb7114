// Package cli provides the interactive GophDiary terminal client.
//
// It wires configuration, local storage, the session/entry/theme services,
// the text renderer and the notifier into a REPL. Typical flow: restore the
// previous session if there is one, otherwise prompt for credentials, then
// execute user commands.
//
// Key features:
//   - Login / Logout against the configured roster
//   - Add, list and delete dated entries
//   - Month calendar with days that have entries marked
//   - Share all entries through the system clipboard
//   - Light / dark theme toggle
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
