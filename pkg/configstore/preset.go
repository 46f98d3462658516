package configstore

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/formforge/govern/pkg/environment"
)

// Preset is a bundle of recommended configuration values for one
// deployment environment, applied at process start through the normal
// validated Set path. Presets are data, not a separate code path.
type Preset struct {
	Environment environment.Environment
	Entries     []PresetEntry
}

// PresetEntry is one recommended key/value inside a preset.
type PresetEntry struct {
	Key    string
	Value  Value
	Reason string
}

type presetYAML struct {
	Presets map[string][]presetEntryYAML `yaml:"presets"`
}

type presetEntryYAML struct {
	Key    string `yaml:"key"`
	Value  any    `yaml:"value"`
	Reason string `yaml:"reason"`
}

// LoadPresets decodes environment presets from YAML:
//
//	presets:
//	  production:
//	    - key: cache.ttl.default
//	      value: 3600
//	      reason: long cache in production
//	  development:
//	    - key: cache.ttl.default
//	      value: 60
func LoadPresets(r io.Reader) ([]Preset, error) {
	var raw presetYAML
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Join(ErrMalformedPreset, err)
	}

	out := make([]Preset, 0, len(raw.Presets))
	for envName, entries := range raw.Presets {
		preset := Preset{
			Environment: environment.Parse(envName),
			Entries:     make([]PresetEntry, 0, len(entries)),
		}
		for _, entry := range entries {
			if entry.Key == "" {
				return nil, errors.Join(ErrMalformedPreset,
					fmt.Errorf("preset for %q has an entry without a key", envName))
			}
			value, err := FromAny(entry.Value)
			if err != nil {
				return nil, errors.Join(ErrMalformedPreset,
					fmt.Errorf("preset key %q: %w", entry.Key, err))
			}
			preset.Entries = append(preset.Entries, PresetEntry{
				Key:    entry.Key,
				Value:  value,
				Reason: entry.Reason,
			})
		}
		out = append(out, preset)
	}

	return out, nil
}

// ApplyPreset applies every entry of the presets matching env through
// Set. Entries rejected by validation are logged and skipped; the rest
// apply. Returns the number of applied entries.
func (s *Store) ApplyPreset(presets []Preset, env environment.Environment, actor string) int {
	applied := 0
	for _, preset := range presets {
		if !env.Matches(preset.Environment) {
			continue
		}
		for _, entry := range preset.Entries {
			reason := entry.Reason
			if reason == "" {
				reason = fmt.Sprintf("%s preset", preset.Environment)
			}
			if err := s.Set(entry.Key, entry.Value, actor, WithReason(reason)); err != nil {
				s.log.Warn("preset entry rejected",
					slog.String("key", entry.Key),
					slog.String("environment", string(preset.Environment)),
					slog.Any("error", err))
				continue
			}
			applied++
		}
	}
	return applied
}
