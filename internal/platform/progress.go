package platform

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseProgress extracts a fractional progress value from one line of
// downloader output, e.g. "[download]  42.0% of 10.00MiB" -> 0.42.
//
// The scrape is a heuristic, not a format-validated parse: it takes the
// numeric token ending at the last '%' in the line, bounded on the left
// by whitespace. Lines without a '%', without whitespace before the
// token, or with a non-numeric token carry no progress signal and
// return ok=false. A '%' buried in a filename can still produce a
// spurious value; callers clamp before publishing.
func ParseProgress(line string) (float64, bool) {
	idx := strings.LastIndexByte(line, '%')
	if idx < 0 {
		return 0, false
	}

	boundary := strings.LastIndexFunc(line[:idx], unicode.IsSpace)
	if boundary < 0 {
		return 0, false
	}

	token := line[boundary+1 : idx]
	if token == "" {
		return 0, false
	}

	percent, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}

	return percent / 100, true
}
