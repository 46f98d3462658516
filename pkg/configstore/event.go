package configstore

import "time"

// EventType identifies what kind of mutation an update event records.
type EventType string

const (
	EventCreate   EventType = "create"
	EventUpdate   EventType = "update"
	EventDelete   EventType = "delete"
	EventRollback EventType = "rollback"
	EventRestore  EventType = "restore"
)

// UpdateEvent is one immutable audit record of an accepted mutation.
// The ordered sequence of events for a key, replayed from the initial
// default, reconstructs the key's current value and version.
type UpdateEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Key       string    `json:"key,omitempty"` // empty for store-wide events (restore)
	OldValue  *Value    `json:"old_value,omitempty"`
	NewValue  *Value    `json:"new_value,omitempty"`
	Version   int       `json:"version,omitempty"` // entry version after the mutation
	Actor     string    `json:"actor"`
	Reason    string    `json:"reason,omitempty"`
	Snapshot  string    `json:"snapshot,omitempty"` // snapshot id for restore events
	CreatedAt time.Time `json:"created_at"`
}

func (e UpdateEvent) clone() UpdateEvent {
	out := e
	if e.OldValue != nil {
		v := e.OldValue.Clone()
		out.OldValue = &v
	}
	if e.NewValue != nil {
		v := e.NewValue.Clone()
		out.NewValue = &v
	}
	return out
}

// Update is the notification payload delivered to subscribers after an
// accepted Set or Delete. Value is nil when the key was removed.
type Update struct {
	Key   string
	Type  EventType
	Value *Value
	Actor string
}

// Callback receives change notifications for a subscribed key.
// Callbacks run synchronously, in registration order, inside the
// triggering mutation; a panicking callback is recovered and logged
// without affecting the mutation or later callbacks.
type Callback func(Update)
