// Package config loads process configuration from environment variables into
// typed structs, with per-type caching so each configuration is parsed once.
//
// It wraps caarlos0/env for struct-tag parsing and godotenv for optional .env
// files. The governance engine uses it for ambient settings (logger level and
// format, deployment environment) rather than for runtime configuration keys,
// which live in the configstore package.
package config
