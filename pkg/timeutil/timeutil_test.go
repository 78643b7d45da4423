package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEpoch(t *testing.T) {
	testCases := []struct {
		name     string
		secs     int64
		expected string
	}{
		{
			name:     "Epoch start",
			secs:     0,
			expected: "1970-01-01T00:00:00Z",
		},
		{
			name:     "Start of a leap-year March",
			secs:     1709251200, // 2024-03-01T00:00:00Z
			expected: "2024-03-01T00:00:00Z",
		},
		{
			name:     "Leap day with time of day",
			secs:     1709209845, // 2024-02-29T12:30:45Z
			expected: "2024-02-29T12:30:45Z",
		},
		{
			name:     "End of year",
			secs:     1735689599, // 2024-12-31T23:59:59Z
			expected: "2024-12-31T23:59:59Z",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatEpoch(tc.secs))
		})
	}
}

func TestFormatClockUTC(t *testing.T) {
	assert.Equal(t, "00:00:00 UTC", FormatClockUTC(0))
	assert.Equal(t, "12:30:45 UTC", FormatClockUTC(1709209845))
}
