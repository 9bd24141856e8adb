package history

// Package history keeps the in-memory log of finished jobs.
