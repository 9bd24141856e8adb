package runner

// Package runner implements the core download pipeline: it launches
// yt-dlp as a child process, streams its stdout through the progress
// scraper, publishes job state to observers, and records each finished
// job in the history log. Exactly one job occupies the slot at a time.
