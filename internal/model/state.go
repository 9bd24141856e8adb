package model

import "time"

// JobState is a point-in-time snapshot of the active job, published by
// the runner and read by any number of observers. Progress is always in
// [0.0, 1.0]. Values are copied out under the runner's lock, so a reader
// never observes a partially updated record.
type JobState struct {
	Status     JobStatus
	StatusText string
	Progress   float64
}

// HistoryEntry records one finished job. Entries are created exactly
// once, when the job reaches a terminal state, and never mutated.
type HistoryEntry struct {
	JobID       string
	URL         string
	FormatLabel string
	Outcome     Outcome
	FinishedAt  time.Time
}
