package platform

import (
	"math"
	"testing"
)

func TestParseProgress(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected float64
		ok       bool
	}{
		{
			name:     "typical download line",
			line:     "[download]  42.0% of 10.00MiB at 1.21MiB/s ETA 00:05",
			expected: 0.42,
			ok:       true,
		},
		{
			name:     "completed download line",
			line:     "[download] 100% of 10.00MiB",
			expected: 1.0,
			ok:       true,
		},
		{
			name:     "bare percentage with leading spaces",
			line:     "  7.3%",
			expected: 0.073,
			ok:       true,
		},
		{
			name: "no percent sign",
			line: "Merging formats...",
			ok:   false,
		},
		{
			name: "empty line",
			line: "",
			ok:   false,
		},
		{
			name: "non-numeric token before percent",
			line: "[download] resuming%",
			ok:   false,
		},
		{
			name: "token at start of line has no boundary",
			line: "100%abc",
			ok:   false,
		},
		{
			name: "bare token without leading whitespace",
			line: "42%",
			ok:   false,
		},
		{
			name: "percent directly after whitespace",
			line: "[download] 50 %",
			ok:   false,
		},
		{
			name:     "multiple percent signs uses the last",
			line:     "fifty%file 80.5% of 1MiB",
			expected: 0.805,
			ok:       true,
		},
		{
			name:     "spurious over-100 value passes through",
			line:     "weird 250% line",
			expected: 2.5,
			ok:       true,
		},
		{
			name:     "zero percent",
			line:     "[download]   0.0% of 3.50MiB",
			expected: 0.0,
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ParseProgress(tt.line)

			if ok != tt.ok {
				t.Fatalf("ParseProgress(%q) ok = %v, expected %v", tt.line, ok, tt.ok)
			}
			if ok && math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("ParseProgress(%q) = %v, expected %v", tt.line, result, tt.expected)
			}
		})
	}
}
