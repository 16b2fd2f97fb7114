package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/google/uuid"
)

// EntryService owns the in-memory, newest-first entry collection of the
// active user and writes the whole collection back after every mutation.
type EntryService interface {
	Load(ctx context.Context, identity *models.Identity) error
	Add(ctx context.Context, date models.Date, content string) (models.Entry, error)
	Delete(ctx context.Context, id string) error
	All() []models.Entry
	SerializeForSharing() (string, error)
	Reset()
	Subscribe(fn func())
}

type entryService struct {
	records   kv.Repository
	log       logging.Logger
	newID     func() string
	owner     string
	entries   []models.Entry
	listeners []func()

	// unreadable holds persisted items that failed to decode; save appends
	// them so they are never lost.
	unreadable []json.RawMessage
}

func NewEntryService(records kv.Repository, log logging.Logger) EntryService {
	return &entryService{
		records: records,
		log:     log.With("component", "entries"),
		newID:   uuid.NewString,
	}
}

// Load replaces the collection with the one persisted for identity. A
// missing record yields an empty collection; so does a corrupt one, which
// is logged and left in place until the next write overwrites it. Single
// entries that do not decode are logged, hidden from the collection and
// written back unchanged on every save.
func (s *entryService) Load(ctx context.Context, identity *models.Identity) error {
	if identity == nil {
		return ErrNotLoggedIn
	}

	key := kv.EntriesKey(identity.Username)
	b, err := s.records.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("error loading entries: %w", err)
	}

	var (
		loaded     []models.Entry
		unreadable []json.RawMessage
	)
	if b != nil {
		var raw []json.RawMessage
		if err := json.Unmarshal(b, &raw); err != nil {
			s.log.Warn(ctx, "ignoring corrupt entries record", "key", key.String(), "error", err)
		}
		for i, item := range raw {
			var e models.Entry
			if err := json.Unmarshal(item, &e); err != nil {
				s.log.Warn(ctx, "keeping unreadable entry aside", "key", key.String(), "index", i, "error", err)
				unreadable = append(unreadable, item)
				continue
			}
			loaded = append(loaded, e)
		}
	}

	s.owner = identity.Username
	s.entries = loaded
	s.unreadable = unreadable
	s.log.Debug(ctx, "entries loaded", "user", s.owner, "count", len(loaded), "unreadable", len(unreadable))
	s.notify()
	return nil
}

func (s *entryService) Add(ctx context.Context, date models.Date, content string) (models.Entry, error) {
	if s.owner == "" {
		return models.Entry{}, ErrNotLoggedIn
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return models.Entry{}, ErrEmptyContent
	}

	e := models.Entry{ID: s.newID(), Date: date, Content: content}

	next := make([]models.Entry, 0, len(s.entries)+1)
	next = append(next, e)
	next = append(next, s.entries...)

	if err := s.save(ctx, next); err != nil {
		return models.Entry{}, err
	}
	s.entries = next

	s.log.Info(ctx, "entry added", "user", s.owner, "id", e.ID, "date", e.Date.String())
	s.notify()
	return e, nil
}

// Delete removes every entry with id. An unknown id is a no-op.
func (s *entryService) Delete(ctx context.Context, id string) error {
	if s.owner == "" {
		return ErrNotLoggedIn
	}

	next := make([]models.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			next = append(next, e)
		}
	}
	if len(next) == len(s.entries) {
		return nil
	}

	if err := s.save(ctx, next); err != nil {
		return err
	}
	s.entries = next

	s.log.Info(ctx, "entry deleted", "user", s.owner, "id", id)
	s.notify()
	return nil
}

func (s *entryService) All() []models.Entry {
	out := make([]models.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// SerializeForSharing renders "<date>\n<content>" blocks separated by a
// blank line, newest first.
func (s *entryService) SerializeForSharing() (string, error) {
	if len(s.entries) == 0 {
		return "", ErrNothingToShare
	}

	blocks := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		blocks = append(blocks, e.Date.Format()+"\n"+e.Content)
	}
	return strings.Join(blocks, "\n\n"), nil
}

// Reset drops the in-memory collection, e.g. on logout. Nothing is written.
func (s *entryService) Reset() {
	s.owner = ""
	s.entries = nil
	s.unreadable = nil
	s.notify()
}

func (s *entryService) Subscribe(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *entryService) save(ctx context.Context, entries []models.Entry) error {
	items := make([]json.RawMessage, 0, len(entries)+len(s.unreadable))
	for _, e := range entries {
		b, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("error encoding entries: %w", err)
		}
		items = append(items, b)
	}
	items = append(items, s.unreadable...)

	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("error encoding entries: %w", err)
	}
	if err := s.records.Set(ctx, kv.EntriesKey(s.owner), b); err != nil {
		return fmt.Errorf("error saving entries: %w", err)
	}
	return nil
}

func (s *entryService) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}
