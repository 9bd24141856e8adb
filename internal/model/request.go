package model

// Format selects the output flavor requested from the downloader.
type Format string

const (
	// FormatBestVideo requests the best video+audio streams merged into
	// a standard container.
	FormatBestVideo Format = "bestvideo"

	// FormatAudioOnly requests audio extraction to a compressed format.
	FormatAudioOnly Format = "audio"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// Label returns the short human-readable label used in history rows.
func (f Format) Label() string {
	if f == FormatAudioOnly {
		return "MP3"
	}
	return "Video"
}

// DownloadRequest describes a single download job. It is immutable once
// submitted; the URL is expected to be non-empty and validated by the
// caller. An empty DestinationDir leaves the tool's default in effect.
type DownloadRequest struct {
	URL            string
	Format         Format
	DestinationDir string
}
