package capture

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecorder scripted audio recorder
type fakeRecorder struct {
	filePath string
	startErr error
	stopErr  error
	started  bool
	stopped  bool
}

func (r *fakeRecorder) Start(_ context.Context) (string, error) {
	if r.startErr != nil {
		return "", r.startErr
	}
	r.started = true
	return r.filePath, nil
}

func (r *fakeRecorder) Stop(_ context.Context) (string, error) {
	if r.stopErr != nil {
		return "", r.stopErr
	}
	r.stopped = true
	return r.filePath, nil
}

// fakeTranscriber scripted speech transcriber
type fakeTranscriber struct {
	text     string
	err      error
	lastFile string
}

func (s *fakeTranscriber) Transcribe(_ context.Context, filePath string) (string, error) {
	s.lastFile = filePath
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

// fakeClock stepping clock
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) timeNow() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func tempAudioFile(t *testing.T) string {
	file, err := os.CreateTemp(t.TempDir(), "capture-ut-*.m4a")
	require.Nil(t, err)
	require.Nil(t, file.Close())
	return file.Name()
}

// TestSessionCaptureFlow verifies the start → stop → transcribe → cleanup flow.
func TestSessionCaptureFlow(t *testing.T) {
	assert := assert.New(t)
	utCtx := context.Background()

	audioFile := tempAudioFile(t)
	recorder := &fakeRecorder{filePath: audioFile}
	transcriber := &fakeTranscriber{text: "Taken at nine"}
	clock := &fakeClock{now: time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)}

	uut := newSessionWithClock(recorder, transcriber, clock.timeNow)

	// 1 – Start recording
	assert.Nil(uut.Start(utCtx))
	assert.True(uut.Recording())
	assert.Equal(0, uut.ElapsedSeconds())

	// 2 – Elapsed time tracks the clock
	clock.advance(42 * time.Second)
	assert.Equal(42, uut.ElapsedSeconds())

	// 3 – Stop transcribes and reports the duration
	result, err := uut.Stop(utCtx)
	assert.Nil(err)
	assert.Equal("Taken at nine", result.Transcript)
	assert.Equal(42, result.DurationSeconds)
	assert.Equal(audioFile, transcriber.lastFile)
	assert.False(uut.Recording())
	assert.Equal(0, uut.ElapsedSeconds())

	// 4 – The temporary audio file was removed
	_, statErr := os.Stat(audioFile)
	assert.True(os.IsNotExist(statErr))
}

// TestSessionStopWithoutStart verifies the programmer-error sentinel.
func TestSessionStopWithoutStart(t *testing.T) {
	assert := assert.New(t)

	uut := NewSession(&fakeRecorder{}, &fakeTranscriber{})

	_, err := uut.Stop(context.Background())
	assert.ErrorIs(err, ErrNoActiveRecording)
}

// TestSessionTranscriptionFailureKeepsFile verifies the audio file is left in
// place when transcription fails, and the sentinel stays checkable.
func TestSessionTranscriptionFailureKeepsFile(t *testing.T) {
	assert := assert.New(t)
	utCtx := context.Background()

	audioFile := tempAudioFile(t)
	recorder := &fakeRecorder{filePath: audioFile}
	transcriber := &fakeTranscriber{err: ErrOnDeviceUnavailable}

	uut := NewSession(recorder, transcriber)

	assert.Nil(uut.Start(utCtx))
	_, err := uut.Stop(utCtx)
	assert.ErrorIs(err, ErrOnDeviceUnavailable)

	_, statErr := os.Stat(audioFile)
	assert.Nil(statErr)
}

// TestSessionStartFailure verifies permission failures propagate and leave
// the session idle.
func TestSessionStartFailure(t *testing.T) {
	assert := assert.New(t)

	recorder := &fakeRecorder{startErr: ErrMicPermissionDenied}
	uut := NewSession(recorder, &fakeTranscriber{})

	err := uut.Start(context.Background())
	assert.ErrorIs(err, ErrMicPermissionDenied)
	assert.False(uut.Recording())
}

// TestFormatElapsed verifies the mm:ss display helper.
func TestFormatElapsed(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("00:00", FormatElapsed(0))
	assert.Equal("00:09", FormatElapsed(9))
	assert.Equal("01:05", FormatElapsed(65))
	assert.Equal("10:00", FormatElapsed(600))
}
