package model

import "testing"

func TestJobStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusIdle, false},
		{JobStatusStarting, true},
		{JobStatusDownloading, true},
		{JobStatusStopping, true},
		{JobStatusCompleted, false},
		{JobStatusFailed, false},
		{JobStatusCancelled, false},
		{JobStatusLaunchFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("JobStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestJobStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusIdle, false},
		{JobStatusStarting, false},
		{JobStatusDownloading, false},
		{JobStatusStopping, false},
		{JobStatusCompleted, true},
		{JobStatusFailed, true},
		{JobStatusCancelled, true},
		{JobStatusLaunchFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsTerminal()
		if result != test.expected {
			t.Errorf("JobStatus(%s).IsTerminal() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestJobStatus_String(t *testing.T) {
	status := JobStatusDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("JobStatus.String() = %s, expected %s", result, expected)
	}
}

func TestFormat_Label(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatBestVideo, "Video"},
		{FormatAudioOnly, "MP3"},
		{Format(""), "Video"},
	}

	for _, test := range tests {
		result := test.format.Label()
		if result != test.expected {
			t.Errorf("Format(%s).Label() = %s, expected %s", test.format, result, test.expected)
		}
	}
}
