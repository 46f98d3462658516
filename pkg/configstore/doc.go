// Package configstore is the runtime configuration store of the governance
// engine: a process-local, versioned key/value map with validation rules,
// a per-key audit history, one-step rollback, named snapshots, synchronous
// change subscriptions, and JSON export/import.
//
// Reads never fail: Get substitutes the caller's default for absent or
// out-of-scope keys, because configuration access must never become a
// source of request failure. Writes validate against the entry's declared
// rules and its recorded value type; a rejected Set returns a typed
// ValidationError and leaves the entry, its version, and its history
// untouched.
//
//	store, err := configstore.New([]configstore.Entry{
//		{
//			Key:      "cache.ttl.default",
//			Value:    configstore.Number(300),
//			Category: "cache",
//			Validation: &configstore.Rule{Min: configstore.Float(60)},
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ttl := store.NumberVal("cache.ttl.default", 300)
//
//	unsubscribe := store.Subscribe("cache.ttl.default", func(u configstore.Update) {
//		// react to the change; panics here are isolated and logged
//	})
//	defer unsubscribe()
//
//	if err := store.Set("cache.ttl.default", configstore.Number(600), "ops@example.com",
//		configstore.WithReason("raise cache ttl"),
//	); err != nil {
//		var verr *configstore.ValidationError
//		if errors.As(err, &verr) {
//			// verr.Kind names the violated rule
//		}
//	}
//
// Every accepted mutation appends an immutable UpdateEvent; replaying a
// key's events from its seeded default reproduces its current value and
// version. Snapshots capture the whole store by value and restoring one
// is a hard reset recorded in the same event log.
//
// Environment presets (LoadPresets/ApplyPreset) carry recommended values
// per deployment environment and go through the same validated Set path.
package configstore
