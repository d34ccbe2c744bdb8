package voice

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeanVolume(t *testing.T) {
	output := `[Parsed_volumedetect_0 @ 0x7f9] n_samples: 80000
[Parsed_volumedetect_0 @ 0x7f9] mean_volume: -42.3 dB
[Parsed_volumedetect_0 @ 0x7f9] max_volume: -20.1 dB
`

	db, err := parseMeanVolume(output)

	require.NoError(t, err)
	assert.Equal(t, -42.3, db)
}

func TestParseMeanVolumeMissing(t *testing.T) {
	_, err := parseMeanVolume("size=N/A time=00:00:00.50 bitrate=N/A speed=1x")

	assert.Error(t, err)
}

func TestParseMeanVolumeGarbageValue(t *testing.T) {
	_, err := parseMeanVolume("mean_volume: not-a-number dB")

	assert.Error(t, err)
}

func TestWarningFor(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "unavailable",
			err:      ErrUnavailable,
			expected: "Voice capture is not available. Please use text input.",
		},
		{
			name:     "wrapped unavailable",
			err:      fmt.Errorf("%w: ffmpeg not found in PATH", ErrUnavailable),
			expected: "Voice capture is not available. Please use text input.",
		},
		{
			name:     "no speech",
			err:      ErrNoSpeech,
			expected: "No speech detected within timeout.",
		},
		{
			name:     "unintelligible",
			err:      ErrUnintelligible,
			expected: "Could not understand audio.",
		},
		{
			name:     "anything else",
			err:      errors.New("socket closed"),
			expected: "Error during voice recognition: socket closed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WarningFor(tc.err))
		})
	}
}

func TestDefaultInput(t *testing.T) {
	format, device := defaultInput()

	assert.NotEmpty(t, format)
	assert.NotEmpty(t, device)
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0.5", formatSeconds(calibrationWindow))
	assert.Equal(t, "10", formatSeconds(phraseLimit))
}
