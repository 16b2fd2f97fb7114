// Package kv is the persistent store adapter of GophDiary: a small
// string-keyed record store holding serialized session, entry and theme data.
//
// Records are addressed by a two-part Key (namespace, name). Key.String()
// renders the flat layout used for display and file names:
//
//	user                → the active session identity
//	entries_<username>  → the user's entries, newest first
//	theme               → "dark" or "light"
//
// Two backends implement Repository: SQLiteRepository (table "records") and
// FileRepository (one JSON file per key on an afero.Fs). Both treat a
// missing record as (nil, nil) and make Delete idempotent.
//
// There is no locking or versioning; the last writer wins.
package kv
