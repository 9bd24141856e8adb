package runner

import (
	"github.com/ytgrab/ytgrab/internal/history"
	"github.com/ytgrab/ytgrab/internal/model"
)

// Runner defines the surface a presentation layer drives and observes.
type Runner interface {
	// Start submits a job. It returns ErrBusy while a job is in flight
	// and ErrEmptyURL for a blank URL; launch failures are reported
	// through the published state, not as an error.
	Start(req model.DownloadRequest) (string, error)

	// Cancel terminates the in-flight job, if any.
	Cancel() error

	// State returns a consistent snapshot of the current job state.
	State() model.JobState

	// Done returns a channel closed when the current job finishes.
	Done() <-chan struct{}

	// History returns the log of finished jobs.
	History() *history.Log

	// SetUpdateCallback registers a push notification for state changes.
	SetUpdateCallback(func(model.JobState))
}
