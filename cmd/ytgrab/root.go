package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ytgrab/ytgrab/internal/config"
	"github.com/ytgrab/ytgrab/internal/history"
	"github.com/ytgrab/ytgrab/internal/runner"
	"github.com/ytgrab/ytgrab/internal/ui"
)

var (
	flagBinary string
	flagDest   string
	flagPollMs int
)

var rootCmd = &cobra.Command{
	Use:   "ytgrab",
	Short: "A terminal front-end for yt-dlp",
	Long:  "Download videos or audio through yt-dlp with live progress and a session history",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := buildSettings()
		svc := runner.NewService(settings.GetBinaryPath(), history.NewLog())

		program := tea.NewProgram(ui.NewRootModel(svc, settings))
		_, err := program.Run()
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBinary, "binary", "", "path to the yt-dlp executable (default: resolve via PATH)")
	rootCmd.PersistentFlags().StringVarP(&flagDest, "dest", "d", "", "destination directory (default: tool default)")
	rootCmd.PersistentFlags().IntVar(&flagPollMs, "poll", 0, "progress poll interval in milliseconds")

	rootCmd.AddCommand(getCmd)
}

func buildSettings() *config.Settings {
	settings := config.NewSettings()
	settings.SetBinaryPath(flagBinary)
	settings.SetDestinationDir(flagDest)
	if flagPollMs > 0 {
		settings.SetPollInterval(time.Duration(flagPollMs) * time.Millisecond)
	}
	return settings
}
