package configstore

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/formforge/govern/pkg/environment"
	"github.com/formforge/govern/pkg/tier"
)

// Store owns the live key -> Entry mapping, its audit log, snapshots, and
// subscriber lists. All methods are safe for concurrent use; mutations are
// serialized by a store-wide lock and subscriber callbacks run after the
// lock is released.
type Store struct {
	mu        sync.RWMutex
	entries   map[string]*Entry
	events    []UpdateEvent
	snapshots map[string]Snapshot
	subs      map[string][]*subscriber
	nextSubID uint64

	env environment.Environment
	log *slog.Logger
	now func() time.Time
}

type subscriber struct {
	id uint64
	fn Callback
}

// SeedActor is recorded as the modifier of entries seeded at construction.
const SeedActor = "system"

// New builds a store seeded with the given default entries. Seed values
// are validated against their own rules; a malformed default is a
// construction error. Each seed is recorded as a create event so that a
// key's history always replays to its current state.
func New(defaults []Entry, opts ...Option) (*Store, error) {
	s := &Store{
		entries:   make(map[string]*Entry, len(defaults)),
		snapshots: make(map[string]Snapshot),
		subs:      make(map[string][]*subscriber),
		env:       environment.Current(),
		log:       slog.Default(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	ts := s.now()
	for _, def := range defaults {
		if def.Key == "" {
			return nil, errors.Join(ErrInvalidDefaults, errors.New("entry key cannot be empty"))
		}
		if _, exists := s.entries[def.Key]; exists {
			return nil, errors.Join(ErrInvalidDefaults, fmt.Errorf("key %q declared twice", def.Key))
		}
		if def.Value.IsZero() {
			return nil, errors.Join(ErrInvalidDefaults, fmt.Errorf("key %q has no value", def.Key))
		}
		if verr := def.Validation.validate(def.Key, def.Value); verr != nil {
			return nil, errors.Join(ErrInvalidDefaults, verr)
		}

		entry := def.clone()
		entry.Version = 1
		entry.PreviousValue = nil
		if entry.Category == "" {
			entry.Category = CategoryCustom
		}
		if entry.LastModified.IsZero() {
			entry.LastModified = ts
		}
		if entry.ModifiedBy == "" {
			entry.ModifiedBy = SeedActor
		}

		s.entries[entry.Key] = &entry
		s.appendEvent(UpdateEvent{
			Type:      EventCreate,
			Key:       entry.Key,
			NewValue:  valuePtr(entry.Value),
			Version:   1,
			Actor:     entry.ModifiedBy,
			Reason:    "seed default",
			CreatedAt: entry.LastModified,
		})
	}

	return s, nil
}

// Get returns the current value for key, or def when the key is absent or
// out of scope for the store's environment. Get never fails.
func (s *Store) Get(key string, def Value) Value {
	return s.GetForTier(key, "", def)
}

// GetForTier is Get with the entry's tier restriction honored as well:
// an entry pinned to one tier is only visible to that tier.
func (s *Store) GetForTier(key string, level tier.Level, def Value) Value {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[key]
	if !exists || !entry.appliesTo(s.env, level) {
		return def.Clone()
	}
	return entry.Value.Clone()
}

// StringVal returns the string at key, or def when absent or not a string.
func (s *Store) StringVal(key, def string) string {
	if v, ok := s.Get(key, Value{}).AsString(); ok {
		return v
	}
	return def
}

// NumberVal returns the number at key, or def when absent or not numeric.
func (s *Store) NumberVal(key string, def float64) float64 {
	if v, ok := s.Get(key, Value{}).AsNumber(); ok {
		return v
	}
	return def
}

// BoolVal returns the boolean at key, or def when absent or not boolean.
func (s *Store) BoolVal(key string, def bool) bool {
	if v, ok := s.Get(key, Value{}).AsBool(); ok {
		return v
	}
	return def
}

// Lookup returns a copy of the full entry, including metadata and audit
// fields, without scope filtering.
func (s *Store) Lookup(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[key]
	if !exists {
		return Entry{}, false
	}
	return entry.clone(), true
}

// Keys returns all keys, optionally filtered by category.
func (s *Store) Keys(categories ...string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.entries))
	for key, entry := range s.entries {
		if len(categories) > 0 && !slices.Contains(categories, entry.Category) {
			continue
		}
		out = append(out, key)
	}
	slices.Sort(out)
	return out
}

// Set validates and applies a new value for key. For a pre-existing entry
// the value must keep the recorded type and satisfy the entry's rules; a
// violation returns a ValidationError and leaves the entry untouched.
// A missing key is created at version 1 with the "custom" category (no
// rules to validate against). Subscribers are notified synchronously
// after the mutation commits.
func (s *Store) Set(key string, value Value, actor string, opts ...MutateOption) error {
	if value.IsZero() {
		return newValidationError(key, RuleRequired, value, "cannot set an absent value")
	}

	m := newMutation(opts)

	s.mu.Lock()

	eventType := EventUpdate
	entry, exists := s.entries[key]
	if exists {
		if value.Type() != entry.Value.Type() {
			s.mu.Unlock()
			return newValidationError(key, RuleType, value,
				fmt.Sprintf("expected %s, got %s", entry.Value.Type(), value.Type()))
		}
		if verr := entry.Validation.validate(key, value); verr != nil {
			s.mu.Unlock()
			return verr
		}

		old := entry.Value.Clone()
		entry.PreviousValue = &old
		entry.Value = value.Clone()
		entry.Version++
		entry.LastModified = s.now()
		entry.ModifiedBy = actor

		s.appendEvent(UpdateEvent{
			Type:      EventUpdate,
			Key:       key,
			OldValue:  valuePtr(old),
			NewValue:  valuePtr(entry.Value),
			Version:   entry.Version,
			Actor:     actor,
			Reason:    m.reason,
			CreatedAt: entry.LastModified,
		})
	} else {
		eventType = EventCreate
		entry = &Entry{
			Key:          key,
			Value:        value.Clone(),
			Category:     m.category,
			Version:      1,
			LastModified: s.now(),
			ModifiedBy:   actor,
		}
		s.entries[key] = entry

		s.appendEvent(UpdateEvent{
			Type:      EventCreate,
			Key:       key,
			NewValue:  valuePtr(entry.Value),
			Version:   1,
			Actor:     actor,
			Reason:    m.reason,
			CreatedAt: entry.LastModified,
		})
	}

	subs := s.subscribersFor(key)
	update := Update{Key: key, Type: eventType, Value: valuePtr(entry.Value), Actor: actor}
	s.mu.Unlock()

	s.notify(subs, update)
	return nil
}

// Delete removes the key if present, records a delete event, and notifies
// subscribers with an absent value. Returns false when the key was not
// present; that is an expected condition, not an error.
func (s *Store) Delete(key, actor string, opts ...MutateOption) bool {
	m := newMutation(opts)

	s.mu.Lock()

	entry, exists := s.entries[key]
	if !exists {
		s.mu.Unlock()
		return false
	}

	old := entry.Value.Clone()
	delete(s.entries, key)

	s.appendEvent(UpdateEvent{
		Type:      EventDelete,
		Key:       key,
		OldValue:  valuePtr(old),
		Actor:     actor,
		Reason:    m.reason,
		CreatedAt: s.now(),
	})

	subs := s.subscribersFor(key)
	s.mu.Unlock()

	s.notify(subs, Update{Key: key, Type: EventDelete, Value: nil, Actor: actor})
	return true
}

// Rollback restores the value recorded before the last accepted mutation.
// It is itself a mutation: the version advances and a rollback event is
// appended. Returns false when the key is absent or holds no previous
// value.
func (s *Store) Rollback(key, actor string, opts ...MutateOption) bool {
	m := newMutation(opts)

	s.mu.Lock()

	entry, exists := s.entries[key]
	if !exists || entry.PreviousValue == nil {
		s.mu.Unlock()
		return false
	}

	old := entry.Value.Clone()
	restored := entry.PreviousValue.Clone()
	entry.Value = restored
	entry.PreviousValue = &old
	entry.Version++
	entry.LastModified = s.now()
	entry.ModifiedBy = actor

	s.appendEvent(UpdateEvent{
		Type:      EventRollback,
		Key:       key,
		OldValue:  valuePtr(old),
		NewValue:  valuePtr(restored),
		Version:   entry.Version,
		Actor:     actor,
		Reason:    m.reason,
		CreatedAt: entry.LastModified,
	})

	subs := s.subscribersFor(key)
	update := Update{Key: key, Type: EventRollback, Value: valuePtr(restored), Actor: actor}
	s.mu.Unlock()

	s.notify(subs, update)
	return true
}

// Subscribe registers a callback invoked synchronously, in registration
// order, after every accepted Set, Rollback, or Delete for key. The
// returned function removes exactly that callback and is safe to call
// more than once.
func (s *Store) Subscribe(key string, fn Callback) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextSubID++
	sub := &subscriber{id: s.nextSubID, fn: fn}
	s.subs[key] = append(s.subs[key], sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		list := s.subs[key]
		for i, candidate := range list {
			if candidate.id == sub.id {
				s.subs[key] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
		if len(s.subs[key]) == 0 {
			delete(s.subs, key)
		}
	}
}

// TakeSnapshot captures an independent copy of every current entry.
func (s *Store) TakeSnapshot(name, description, actor string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Actor:       actor,
		CreatedAt:   s.now(),
		Entries:     make(map[string]Entry, len(s.entries)),
	}
	for key, entry := range s.entries {
		snap.Entries[key] = entry.clone()
	}

	s.snapshots[snap.ID] = snap
	return snap.clone()
}

// GetSnapshot returns a stored snapshot by id.
func (s *Store) GetSnapshot(id string) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snapshots[id]
	if !ok {
		return Snapshot{}, false
	}
	return snap.clone(), true
}

// ListSnapshots returns all stored snapshots, newest first.
func (s *Store) ListSnapshots() []Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Snapshot, 0, len(s.snapshots))
	for _, snap := range s.snapshots {
		out = append(out, snap.clone())
	}
	sortSnapshots(out)
	return out
}

// Restore atomically replaces the live entries with the snapshot's.
// It is a hard reset: history is not replayed, per-key subscribers are
// not notified, and the restore itself is appended to the event log.
// Returns false for an unknown snapshot id.
func (s *Store) Restore(snapshotID, actor string, opts ...MutateOption) bool {
	m := newMutation(opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.snapshots[snapshotID]
	if !ok {
		return false
	}

	s.entries = make(map[string]*Entry, len(snap.Entries))
	for key, entry := range snap.Entries {
		restored := entry.clone()
		s.entries[key] = &restored
	}

	s.appendEvent(UpdateEvent{
		Type:      EventRestore,
		Snapshot:  snapshotID,
		Actor:     actor,
		Reason:    m.reason,
		CreatedAt: s.now(),
	})
	return true
}

// History returns the ordered update events recorded for one key.
func (s *Store) History(key string) []UpdateEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []UpdateEvent
	for _, event := range s.events {
		if event.Key == key {
			out = append(out, event.clone())
		}
	}
	return out
}

// Events returns the full ordered update event log, including store-wide
// events such as snapshot restores.
func (s *Store) Events() []UpdateEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]UpdateEvent, len(s.events))
	for i, event := range s.events {
		out[i] = event.clone()
	}
	return out
}

func (s *Store) appendEvent(event UpdateEvent) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	s.events = append(s.events, event)
}

// subscribersFor copies the callback list under the held lock so that
// notification can run outside it.
func (s *Store) subscribersFor(key string) []Callback {
	list := s.subs[key]
	if len(list) == 0 {
		return nil
	}
	out := make([]Callback, len(list))
	for i, sub := range list {
		out[i] = sub.fn
	}
	return out
}

// notify fans the update out to each callback in order, recovering from
// panics so one bad subscriber cannot break the mutation or starve the
// rest of the list.
func (s *Store) notify(subs []Callback, update Update) {
	for _, fn := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.log.Error("config subscriber panicked",
						slog.String("key", update.Key),
						slog.Any("panic", r))
				}
			}()
			fn(update)
		}()
	}
}

func valuePtr(v Value) *Value {
	c := v.Clone()
	return &c
}

func sortSnapshots(snaps []Snapshot) {
	slices.SortFunc(snaps, func(a, b Snapshot) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
