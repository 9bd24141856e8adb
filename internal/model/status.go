package model

// JobStatus represents the status of the download job slot
type JobStatus string

const (
	// JobStatusIdle means no job has been submitted yet
	JobStatusIdle JobStatus = "Idle"

	// JobStatusStarting means the job is in the process of launching
	JobStatusStarting JobStatus = "Starting"

	// JobStatusDownloading means the download is in progress
	JobStatusDownloading JobStatus = "Downloading"

	// JobStatusStopping means cancellation was requested and the job is
	// winding down
	JobStatusStopping JobStatus = "Stopping"

	// JobStatusCompleted means the job finished successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusFailed means the subprocess ran but exited with an error
	JobStatusFailed JobStatus = "Failed"

	// JobStatusCancelled means the job was cancelled by the user
	JobStatusCancelled JobStatus = "Cancelled"

	// JobStatusLaunchFailed means the subprocess could not be started
	JobStatusLaunchFailed JobStatus = "LaunchFailed"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if a job currently occupies the slot
func (js JobStatus) IsActive() bool {
	return js == JobStatusStarting || js == JobStatusDownloading || js == JobStatusStopping
}

// IsTerminal returns true once the job reached a state after which no
// further updates occur
func (js JobStatus) IsTerminal() bool {
	return js == JobStatusCompleted || js == JobStatusFailed ||
		js == JobStatusCancelled || js == JobStatusLaunchFailed
}

// Outcome classifies a finished job for its history entry.
type Outcome string

const (
	OutcomeCompleted Outcome = "Completed"
	OutcomeFailed    Outcome = "Failed"
	OutcomeCancelled Outcome = "Cancelled"
)

// String returns the string representation of Outcome
func (o Outcome) String() string {
	return string(o)
}
