package kv

import (
	"context"
)

const (
	NamespaceSession = "user"
	NamespaceEntries = "entries"
	NamespaceTheme   = "theme"
)

// Key addresses a single record.
type Key struct {
	Namespace string
	Name      string
}

func SessionKey() Key { return Key{Namespace: NamespaceSession} }

func ThemeKey() Key { return Key{Namespace: NamespaceTheme} }

// EntriesKey scopes an entry collection to one user.
func EntriesKey(username string) Key {
	return Key{Namespace: NamespaceEntries, Name: username}
}

func (k Key) String() string {
	if k.Name == "" {
		return k.Namespace
	}
	return k.Namespace + "_" + k.Name
}

type Repository interface {
	// Get returns (nil, nil) when the record does not exist.
	Get(ctx context.Context, key Key) ([]byte, error)
	// Set creates or overwrites the record.
	Set(ctx context.Context, key Key, value []byte) error
	// Delete removes the record; deleting a missing record is not an error.
	Delete(ctx context.Context, key Key) error
}
