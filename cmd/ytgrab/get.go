package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytgrab/ytgrab/internal/history"
	"github.com/ytgrab/ytgrab/internal/model"
	"github.com/ytgrab/ytgrab/internal/runner"
)

var flagAudio bool

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Download a single URL without the TUI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := buildSettings()

		format := model.FormatBestVideo
		if flagAudio {
			format = model.FormatAudioOnly
		}

		svc := runner.NewService(settings.GetBinaryPath(), history.NewLog())
		_, err := svc.Start(model.DownloadRequest{
			URL:            args[0],
			Format:         format,
			DestinationDir: settings.GetDestinationDir(),
		})
		if err != nil {
			return err
		}

		ticker := time.NewTicker(settings.GetPollInterval())
		defer ticker.Stop()

		var lastLine string
		for {
			select {
			case <-ticker.C:
				state := svc.State()
				if state.StatusText != lastLine {
					fmt.Println(state.StatusText)
					lastLine = state.StatusText
				}
			case <-svc.Done():
				state := svc.State()
				if state.StatusText != lastLine {
					fmt.Println(state.StatusText)
				}
				if state.Status != model.JobStatusCompleted {
					return fmt.Errorf("download did not complete: %s", state.Status)
				}
				return nil
			}
		}
	},
}

func init() {
	getCmd.Flags().BoolVarP(&flagAudio, "audio", "a", false, "extract audio only (mp3)")
}
