package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ytgrab/ytgrab/internal/history"
	"github.com/ytgrab/ytgrab/internal/model"
	"github.com/ytgrab/ytgrab/internal/platform"
)

var (
	// ErrBusy is returned by Start while a job is already in flight.
	ErrBusy = errors.New("a download is already in progress")

	// ErrEmptyURL is returned by Start for a blank URL.
	ErrEmptyURL = errors.New("url must not be empty")

	// ErrNotActive is returned by Cancel when no job is in flight.
	ErrNotActive = errors.New("no download in progress")
)

// Service owns the single download job slot. All published state is
// guarded by the mutex; the job goroutine is the sole writer and any
// number of observers read via State.
type Service struct {
	mu     sync.RWMutex
	state  model.JobState
	jobID  string
	cancel context.CancelFunc
	done   chan struct{}

	binPath  string
	history  *history.Log
	onUpdate func(model.JobState)

	// newCommand is swapped out in tests to fake the subprocess.
	newCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewService creates a runner using the given downloader binary. An
// empty binPath resolves the default binary via PATH.
func NewService(binPath string, hist *history.Log) *Service {
	if binPath == "" {
		binPath = platform.DefaultBinary
	}
	if hist == nil {
		hist = history.NewLog()
	}
	return &Service{
		state:      model.JobState{Status: model.JobStatusIdle, StatusText: "Idle"},
		binPath:    binPath,
		history:    hist,
		newCommand: exec.CommandContext,
	}
}

// SetUpdateCallback registers a callback invoked after every state
// change, outside the service lock. Observers that poll State instead
// can leave it unset.
func (s *Service) SetUpdateCallback(callback func(model.JobState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// State returns a consistent snapshot of the current job state.
func (s *Service) State() model.JobState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// JobID returns the identifier of the current (or most recent) job.
func (s *Service) JobID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobID
}

// History returns the log of finished jobs.
func (s *Service) History() *history.Log {
	return s.history
}

// Done returns a channel closed when the current job reaches a terminal
// state. Before any job was started it is already closed.
func (s *Service) Done() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return s.done
}

// Start submits a download job and returns its identifier. The slot is
// checked and claimed atomically: a second Start while a job is active
// returns ErrBusy and leaves the running job untouched. A launch
// failure after acceptance is reported only through the published state
// (the caller already let go), and appends nothing to history.
func (s *Service) Start(req model.DownloadRequest) (string, error) {
	if req.URL == "" {
		return "", ErrEmptyURL
	}

	s.mu.Lock()
	if s.state.Status.IsActive() {
		s.mu.Unlock()
		return "", ErrBusy
	}

	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.NewString()

	s.jobID = id
	s.cancel = cancel
	s.done = make(chan struct{})
	s.state = model.JobState{Status: model.JobStatusStarting, StatusText: "Starting download..."}
	done := s.done
	s.mu.Unlock()

	s.notify()
	go s.run(ctx, cancel, req, done)

	return id, nil
}

// Cancel terminates the in-flight job. The child process is killed via
// its context and the job winds down to a Cancelled outcome.
func (s *Service) Cancel() error {
	s.mu.Lock()
	if !s.state.Status.IsActive() {
		s.mu.Unlock()
		return ErrNotActive
	}
	s.state.Status = model.JobStatusStopping
	s.state.StatusText = "Cancelling..."
	cancel := s.cancel
	s.mu.Unlock()

	s.notify()
	cancel()
	return nil
}

// run drives one job from launch to terminal state.
func (s *Service) run(ctx context.Context, cancel context.CancelFunc, req model.DownloadRequest, done chan struct{}) {
	defer close(done)
	defer cancel()

	cmd := s.newCommand(ctx, s.binPath, platform.DownloadArgs(req)...)

	// stderr is captured away from the parent's terminal but
	// deliberately never read; diagnostics die with the child.
	cmd.Stderr = io.Discard

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.finishLaunchFailure(err)
		return
	}

	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			// Cancelled in the Starting window, before launch.
			s.finish(req, model.OutcomeCancelled)
			return
		}
		s.finishLaunchFailure(err)
		return
	}

	s.setDownloading()

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		fraction, ok := platform.ParseProgress(scanner.Text())
		if !ok {
			continue
		}
		s.setProgress(fraction)
	}
	// A scanner error is indistinguishable from early stream EOF here;
	// either way the exit status decides the outcome.

	err = cmd.Wait()

	var outcome model.Outcome
	switch {
	case ctx.Err() != nil:
		outcome = model.OutcomeCancelled
	case err != nil:
		outcome = model.OutcomeFailed
		log.Printf("download failed for job %s: %v", s.JobID(), err)
	default:
		outcome = model.OutcomeCompleted
	}

	s.finish(req, outcome)
}

// setDownloading moves the job out of the Starting state unless a
// cancellation already flipped it to Stopping.
func (s *Service) setDownloading() {
	s.mu.Lock()
	if s.state.Status == model.JobStatusStarting {
		s.state.Status = model.JobStatusDownloading
		s.state.StatusText = "Downloading..."
	}
	s.mu.Unlock()
	s.notify()
}

// setProgress publishes a scraped progress value, clamped so observers
// never see a fraction outside [0,1] even for spurious lines.
func (s *Service) setProgress(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	s.mu.Lock()
	if s.state.Status == model.JobStatusDownloading {
		s.state.Progress = fraction
		s.state.StatusText = fmt.Sprintf("Downloading... %.0f%%", fraction*100)
	}
	s.mu.Unlock()
	s.notify()
}

// finish records the outcome in history and freezes the terminal state.
// Exactly one history entry is appended per job that launched.
func (s *Service) finish(req model.DownloadRequest, outcome model.Outcome) {
	s.mu.Lock()
	s.history.Append(model.HistoryEntry{
		JobID:       s.jobID,
		URL:         req.URL,
		FormatLabel: req.Format.Label(),
		Outcome:     outcome,
		FinishedAt:  time.Now(),
	})

	switch outcome {
	case model.OutcomeCompleted:
		s.state.Status = model.JobStatusCompleted
		s.state.StatusText = "Download completed"
		s.state.Progress = 1.0
	case model.OutcomeCancelled:
		s.state.Status = model.JobStatusCancelled
		s.state.StatusText = "Download cancelled"
	default:
		s.state.Status = model.JobStatusFailed
		s.state.StatusText = "Download failed"
	}
	s.mu.Unlock()

	s.notify()
}

// finishLaunchFailure reports a job that never ran. No history entry is
// appended for it.
func (s *Service) finishLaunchFailure(err error) {
	s.mu.Lock()
	s.state.Status = model.JobStatusLaunchFailed
	s.state.StatusText = fmt.Sprintf("Failed to start %s: %v", s.binPath, err)
	s.mu.Unlock()

	log.Printf("failed to start %s: %v", s.binPath, err)
	s.notify()
}

// notify pushes the current snapshot to the registered callback, if any,
// outside the lock.
func (s *Service) notify() {
	s.mu.RLock()
	callback := s.onUpdate
	state := s.state
	s.mu.RUnlock()

	if callback != nil {
		callback(state)
	}
}
