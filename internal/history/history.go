package history

import (
	"sync"

	"github.com/ytgrab/ytgrab/internal/model"
)

// Log is an append-only record of finished jobs. The runner is the sole
// writer; any number of readers may snapshot it concurrently. Entries
// are never removed and the log is unbounded; history does not survive a
// restart.
type Log struct {
	mu      sync.RWMutex
	entries []model.HistoryEntry
}

// NewLog creates an empty history log.
func NewLog() *Log {
	return &Log{}
}

// Append records one finished job. It never fails.
func (l *Log) Append(entry model.HistoryEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// Snapshot returns a copy of all entries in insertion order. Rendering
// order (the app shows most-recent-first) is the caller's choice.
func (l *Log) Snapshot() []model.HistoryEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]model.HistoryEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
