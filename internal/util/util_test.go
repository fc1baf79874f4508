package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", FormatBytes(0))
	assert.Equal(t, "1023 B", FormatBytes(1023))
	assert.Equal(t, "1.0 KB", FormatBytes(1024))
	assert.Equal(t, "1.5 KB", FormatBytes(1536))
	assert.Equal(t, "2.0 MB", FormatBytes(2<<20))
	assert.Equal(t, "5.0 MB", FormatBytes(5<<20))
	assert.Equal(t, "3.0 GB", FormatBytes(3<<30))
}

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		20 * time.Second:              "less than a minute",
		45 * time.Second:              "1 minute",
		15 * time.Minute:              "15 minutes",
		30 * time.Minute:              "30 minutes",
		time.Hour:                     "1 hour",
		2*time.Hour + 15*time.Minute:  "2 hours 15 minutes",
		time.Hour + time.Minute:       "1 hour 1 minute",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatDuration(in), in.String())
	}
}
