// Package voice captures one microphone phrase with ffmpeg and
// transcribes it to text. Every failure mode is non-fatal: callers get
// an empty query plus a sentinel they can render as a warning.
package voice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrUnavailable means voice capture cannot run at all (no ffmpeg,
	// no transcription backend).
	ErrUnavailable = errors.New("voice capture unavailable")
	// ErrNoSpeech means the capture stayed at the ambient noise floor.
	ErrNoSpeech = errors.New("no speech detected")
	// ErrUnintelligible means audio was captured but produced no text.
	ErrUnintelligible = errors.New("could not understand audio")
)

const (
	calibrationWindow = 500 * time.Millisecond
	waitTimeout       = 5 * time.Second
	phraseLimit       = 10 * time.Second

	// dB above the calibrated noise floor a capture must reach to count
	// as speech
	speechMargin = 3.0

	// noise floor assumed when calibration itself fails
	fallbackNoiseFloor = -60.0
)

// Transcriber converts a captured audio file to text.
type Transcriber interface {
	Transcript(ctx context.Context, audioPath string) (string, error)
}

// Recorder performs one scoped microphone capture per call: calibrate
// ambient noise, record a bounded phrase, reject silence, transcribe.
type Recorder struct {
	transcriber Transcriber
	logger      *zap.SugaredLogger
	format      string
	device      string
}

// NewRecorder creates a Recorder using the platform's default input device.
func NewRecorder(transcriber Transcriber, logger *zap.SugaredLogger) *Recorder {
	format, device := defaultInput()
	return &Recorder{
		transcriber: transcriber,
		logger:      logger,
		format:      format,
		device:      device,
	}
}

// Record captures and transcribes a single phrase. Exactly one attempt;
// no automatic retry. The returned error is always one of the package
// sentinels (possibly wrapped) or a transcription failure.
func (r *Recorder) Record(ctx context.Context) (string, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return "", fmt.Errorf("%w: ffmpeg not found in PATH", ErrUnavailable)
	}

	noiseFloor, err := r.calibrate(ctx)
	if err != nil {
		r.logger.Warnw("ambient noise calibration failed, using fallback floor",
			"fallback_db", fallbackNoiseFloor, "error", err)
		noiseFloor = fallbackNoiseFloor
	}

	wavPath, err := r.capture(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer os.Remove(wavPath)

	level, err := r.meanVolume(ctx, wavPath)
	if err != nil {
		r.logger.Warnw("volume check failed, passing capture through", "error", err)
	} else if level <= noiseFloor+speechMargin {
		r.logger.Debugw("capture below speech threshold",
			"level_db", level, "noise_floor_db", noiseFloor)
		return "", ErrNoSpeech
	}

	text, err := r.transcriber.Transcript(ctx, wavPath)
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrUnintelligible
	}

	return strings.TrimSpace(text), nil
}

// calibrate samples the microphone briefly and returns the ambient mean
// volume in dB.
func (r *Recorder) calibrate(ctx context.Context) (float64, error) {
	cctx, cancel := context.WithTimeout(ctx, calibrationWindow+2*time.Second)
	defer cancel()

	cmd := exec.CommandContext(cctx, "ffmpeg",
		"-f", r.format,
		"-i", r.device,
		"-t", formatSeconds(calibrationWindow),
		"-af", "volumedetect",
		"-f", "null", "-",
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffmpeg calibration: %v, stderr: %s", err, stderr.String())
	}

	return parseMeanVolume(stderr.String())
}

// capture records one phrase to a 16kHz mono WAV temp file.
func (r *Recorder) capture(ctx context.Context) (string, error) {
	wavPath := filepath.Join(os.TempDir(),
		fmt.Sprintf("tubepick-capture-%d.wav", time.Now().UnixNano()))

	cctx, cancel := context.WithTimeout(ctx, waitTimeout+phraseLimit)
	defer cancel()

	cmd := exec.CommandContext(cctx, "ffmpeg",
		"-f", r.format,
		"-i", r.device,
		"-t", formatSeconds(phraseLimit),
		"-ac", "1",
		"-ar", "16000",
		"-y", wavPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(wavPath)
		return "", fmt.Errorf("ffmpeg capture: %v, stderr: %s", err, stderr.String())
	}

	return wavPath, nil
}

func (r *Recorder) meanVolume(ctx context.Context, audioPath string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", audioPath,
		"-af", "volumedetect",
		"-f", "null", "-",
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffmpeg volumedetect: %v, stderr: %s", err, stderr.String())
	}

	return parseMeanVolume(stderr.String())
}

// parseMeanVolume extracts the "mean_volume: -42.0 dB" line from ffmpeg
// volumedetect stderr output.
func parseMeanVolume(output string) (float64, error) {
	for _, line := range strings.Split(output, "\n") {
		idx := strings.Index(line, "mean_volume:")
		if idx < 0 {
			continue
		}
		value := strings.TrimSpace(line[idx+len("mean_volume:"):])
		value = strings.TrimSpace(strings.TrimSuffix(value, "dB"))
		db, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("parse mean_volume from %q: %w", line, err)
		}
		return db, nil
	}
	return 0, fmt.Errorf("no mean_volume in volumedetect output")
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// defaultInput returns the ffmpeg input format and device for the
// platform's default microphone.
func defaultInput() (format, device string) {
	switch runtime.GOOS {
	case "darwin":
		return "avfoundation", ":0"
	case "windows":
		return "dshow", "audio=default"
	default:
		return "alsa", "default"
	}
}

// WarningFor maps a Record failure to the user-facing warning text.
func WarningFor(err error) string {
	switch {
	case errors.Is(err, ErrUnavailable):
		return "Voice capture is not available. Please use text input."
	case errors.Is(err, ErrNoSpeech):
		return "No speech detected within timeout."
	case errors.Is(err, ErrUnintelligible):
		return "Could not understand audio."
	default:
		return fmt.Sprintf("Error during voice recognition: %v", err)
	}
}
