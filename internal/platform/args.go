package platform

import "github.com/ytgrab/ytgrab/internal/model"

// DefaultBinary is the downloader executable resolved via PATH unless a
// caller configures an explicit path.
const DefaultBinary = "yt-dlp"

// yt-dlp flag spellings. Kept together so a change in the external tool
// touches exactly one place.
const (
	FlagNewline      = "--newline"
	FlagDestination  = "-P"
	FlagFormat       = "-f"
	FlagMergeFormat  = "--merge-output-format"
	FlagExtractAudio = "-x"
	FlagAudioFormat  = "--audio-format"

	FormatSelectorBest = "bestvideo+bestaudio/best"
	MergeContainer     = "mp4"
	AudioCodec         = "mp3"
)

// DownloadArgs builds the deterministic argument list for one download
// request. --newline forces line-buffered progress output (no carriage
// returns), the destination flag is appended only when a directory was
// chosen, and the URL always comes last.
func DownloadArgs(req model.DownloadRequest) []string {
	args := []string{FlagNewline}

	if req.DestinationDir != "" {
		args = append(args, FlagDestination, req.DestinationDir)
	}

	switch req.Format {
	case model.FormatAudioOnly:
		args = append(args, FlagExtractAudio, FlagAudioFormat, AudioCodec)
	default:
		args = append(args, FlagFormat, FormatSelectorBest, FlagMergeFormat, MergeContainer)
	}

	return append(args, req.URL)
}
