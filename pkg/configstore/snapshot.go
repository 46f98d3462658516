package configstore

import "time"

// Snapshot is an immutable, named copy of every entry at a point in time.
// Snapshots are taken by value; later mutations of the live store never
// alter a snapshot, and restoring one is a hard reset of the live state.
type Snapshot struct {
	ID          string
	Name        string
	Description string
	Actor       string
	CreatedAt   time.Time
	Entries     map[string]Entry
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.Entries = make(map[string]Entry, len(s.Entries))
	for k, e := range s.Entries {
		out.Entries[k] = e.clone()
	}
	return out
}
