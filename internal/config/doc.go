package config

// Package config holds runtime settings and their defaults. Values are
// populated from command-line flags; nothing is persisted.
