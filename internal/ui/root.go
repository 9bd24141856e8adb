package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytgrab/ytgrab/internal/config"
	"github.com/ytgrab/ytgrab/internal/model"
	"github.com/ytgrab/ytgrab/internal/runner"
)

const progressBarWidth = 40

// tickMsg drives the poll loop; each tick re-reads the runner state.
type tickMsg time.Time

// RootModel is the single-screen bubbletea model: URL input, format
// toggle, progress bar, status line, and the history list.
type RootModel struct {
	runner       runner.Runner
	pollInterval time.Duration
	destination  string

	urlInput textinput.Model
	bar      progress.Model
	format   model.Format

	state    model.JobState
	startErr error
	width    int
}

// NewRootModel creates the root screen bound to a runner.
func NewRootModel(r runner.Runner, settings *config.Settings) RootModel {
	input := textinput.New()
	input.Placeholder = "https://www.youtube.com/watch?v=..."
	input.Focus()
	input.CharLimit = 512
	input.Width = 60

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(progressBarWidth),
	)

	return RootModel{
		runner:       r,
		pollInterval: settings.GetPollInterval(),
		destination:  settings.GetDestinationDir(),
		urlInput:     input,
		bar:          bar,
		format:       model.FormatBestVideo,
		state:        r.State(),
	}
}

func (m RootModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m RootModel) tick() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.format = toggleFormat(m.format)
			return m, nil
		case "ctrl+x":
			// Cancelling an idle runner is a no-op.
			_ = m.runner.Cancel()
			return m, nil
		case "enter":
			m.startErr = m.startDownload()
			return m, nil
		}

	case tickMsg:
		m.state = m.runner.State()
		return m, m.tick()
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

// startDownload submits the current form to the runner. The returned
// error is rendered inline rather than terminating the UI.
func (m RootModel) startDownload() error {
	url := strings.TrimSpace(m.urlInput.Value())
	if url == "" {
		return errors.New("enter a URL first")
	}

	_, err := m.runner.Start(model.DownloadRequest{
		URL:            url,
		Format:         m.format,
		DestinationDir: m.destination,
	})
	return err
}

func (m RootModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ytgrab"))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("URL"))
	b.WriteString("\n")
	b.WriteString(m.urlInput.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Format: "))
	b.WriteString(renderFormatChoice(m.format))
	b.WriteString("\n")

	if m.destination != "" {
		b.WriteString(labelStyle.Render("Saving to: " + m.destination))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.state.Progress))
	b.WriteString("\n")
	b.WriteString(statusStyle(m.state.Status).Render("Status: " + m.state.StatusText))
	b.WriteString("\n")

	if m.startErr != nil {
		b.WriteString(statusFailedStyle.Render(m.startErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(renderHistory(m.runner.History().Snapshot()))

	b.WriteString(helpStyle.Render("enter: download • tab: format • ctrl+x: cancel • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// toggleFormat flips between the two supported output formats.
func toggleFormat(f model.Format) model.Format {
	if f == model.FormatAudioOnly {
		return model.FormatBestVideo
	}
	return model.FormatAudioOnly
}

func renderFormatChoice(selected model.Format) string {
	choices := []model.Format{model.FormatBestVideo, model.FormatAudioOnly}
	parts := make([]string, 0, len(choices))
	for _, f := range choices {
		label := f.Label()
		if f == selected {
			parts = append(parts, selectedFormatStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, labelStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

// renderHistory lists finished jobs most-recent-first.
func renderHistory(entries []model.HistoryEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(historyHeaderStyle.Render("History"))
	b.WriteString("\n")

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		line := fmt.Sprintf("%s | %s | %s", e.URL, e.FormatLabel, e.Outcome)
		b.WriteString(outcomeStyle(e.Outcome).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func statusStyle(status model.JobStatus) lipgloss.Style {
	switch status {
	case model.JobStatusCompleted:
		return statusCompletedStyle
	case model.JobStatusFailed, model.JobStatusLaunchFailed:
		return statusFailedStyle
	case model.JobStatusStarting, model.JobStatusDownloading, model.JobStatusStopping:
		return statusActiveStyle
	default:
		return labelStyle
	}
}

func outcomeStyle(outcome model.Outcome) lipgloss.Style {
	switch outcome {
	case model.OutcomeCompleted:
		return statusCompletedStyle
	case model.OutcomeFailed:
		return statusFailedStyle
	default:
		return labelStyle
	}
}
