package whois

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCreationDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected *time.Time
	}{
		{
			name:     "rfc3339",
			value:    "2019-03-28T14:30:00Z",
			expected: timePtr(2019, time.March, 28, 14, 30, 0),
		},
		{
			name:     "date and time without zone",
			value:    "2019-03-28 14:30:00",
			expected: timePtr(2019, time.March, 28, 14, 30, 0),
		},
		{
			name:     "date only",
			value:    "2019-03-28",
			expected: timePtr(2019, time.March, 28, 0, 0, 0),
		},
		{
			name:     "legacy registry format",
			value:    "28-Mar-2019",
			expected: timePtr(2019, time.March, 28, 0, 0, 0),
		},
		{
			name:     "dotted format",
			value:    "2019.03.28",
			expected: timePtr(2019, time.March, 28, 0, 0, 0),
		},
		{
			name:     "unparseable",
			value:    "sometime in 2019",
			expected: nil,
		},
		{
			name:     "empty",
			value:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			value:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCreationDate(tt.value)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.True(t, tt.expected.Equal(*got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func timePtr(year int, month time.Month, day, hour, min, sec int) *time.Time {
	t := time.Date(year, month, day, hour, min, sec, 0, time.UTC)
	return &t
}
