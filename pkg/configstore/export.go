package configstore

import (
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/formforge/govern/pkg/environment"
	"github.com/formforge/govern/pkg/tier"
)

// exportDocument is the serialized form produced by Export. Metadata
// beyond key and value is informational on import: Import pushes each
// value through the validated Set path, so the live store's own rules
// and recorded types stay authoritative.
type exportDocument struct {
	ExportedAt time.Time     `json:"exported_at"`
	Entries    []exportEntry `json:"entries"`
}

type exportEntry struct {
	Key         string                  `json:"key"`
	Value       Value                   `json:"value"`
	Category    string                  `json:"category,omitempty"`
	Environment environment.Environment `json:"environment,omitempty"`
	Tier        tier.Level              `json:"tier,omitempty"`
	Validation  *Rule                   `json:"validation,omitempty"`
	Version     int                     `json:"version"`
	ModifiedBy  string                  `json:"modified_by,omitempty"`
}

// Export serializes every current entry to JSON.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()

	doc := exportDocument{
		ExportedAt: s.now(),
		Entries:    make([]exportEntry, 0, len(s.entries)),
	}
	for _, entry := range s.entries {
		doc.Entries = append(doc.Entries, exportEntry{
			Key:         entry.Key,
			Value:       entry.Value.Clone(),
			Category:    entry.Category,
			Environment: entry.Environment,
			Tier:        entry.Tier,
			Validation:  entry.Validation.clone(),
			Version:     entry.Version,
			ModifiedBy:  entry.ModifiedBy,
		})
	}
	s.mu.RUnlock()

	slices.SortFunc(doc.Entries, func(a, b exportEntry) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		default:
			return 0
		}
	})

	return json.MarshalIndent(doc, "", "  ")
}

// Import applies a previously exported document entry by entry through
// the validated Set path: an entry that fails validation is skipped and
// logged while the rest of the import proceeds. Returns the number of
// applied entries; the error is non-nil only when the payload itself
// cannot be decoded.
func (s *Store) Import(data []byte, actor string) (int, error) {
	var doc exportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, errors.Join(ErrMalformedImport, err)
	}

	applied := 0
	for _, entry := range doc.Entries {
		if entry.Key == "" || entry.Value.IsZero() {
			s.log.Warn("skipping malformed import entry", slog.String("key", entry.Key))
			continue
		}

		opts := []MutateOption{WithReason("import")}
		if entry.Category != "" {
			opts = append(opts, WithCategory(entry.Category))
		}
		if err := s.Set(entry.Key, entry.Value, actor, opts...); err != nil {
			s.log.Warn("import entry rejected",
				slog.String("key", entry.Key),
				slog.Any("error", err))
			continue
		}
		applied++
	}

	return applied, nil
}
