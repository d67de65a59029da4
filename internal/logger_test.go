package internal

import (
	"bytes"
	"testing"
	"time"
)

func TestLogger(t *testing.T) {
	ts := time.Date(2020, 5, 17, 10, 30, 0, 0, time.UTC)
	testCases := []struct {
		title        string
		currentLevel VerbosityLevel
		messageLevel VerbosityLevel
		expected     string
	}{
		{
			title:        "forced message at the default level",
			currentLevel: Forced,
			messageLevel: Forced,
			expected:     "2020/05/17 10:30:00 message 1\n",
		},
		{
			title:        "verbose message at the default level",
			currentLevel: Forced,
			messageLevel: Verbose,
		},
		{
			title:        "verbose message at a higher level",
			currentLevel: Chatty,
			messageLevel: Verbose,
			expected:     "2020/05/17 10:30:00 message 1\n",
		},
		{
			title:        "chatty message at the super verbose level",
			currentLevel: SuperVerbose,
			messageLevel: Chatty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tc.currentLevel, &buf, false)
			logger.now = func() time.Time { return ts }
			logger.Logf(tc.messageLevel, "message %d", 1)
			if actual := buf.String(); actual != tc.expected {
				t.Errorf("Expected: %q, Actual: %q", tc.expected, actual)
			}
			if logger.Level() != tc.currentLevel {
				t.Errorf("Expected level: %s, Actual: %s", tc.currentLevel, logger.Level())
			}
		})
	}
}
