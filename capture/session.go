package capture

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alwitt/goutils"
	"github.com/apex/log"
)

// CaptureResult outcome of a finished capture session
type CaptureResult struct {
	// Transcript the transcribed text
	Transcript string
	// DurationSeconds how long the recording ran
	DurationSeconds int
}

// Session a single voice memo capture flow
//
// Start begins recording; Stop ends it, transcribes the audio, and removes the
// temporary audio file. The session issues one outstanding platform request at
// a time. A session is not safe for concurrent use.
type Session interface {
	/*
		Start begin recording

			@param ctx context.Context - execution context
	*/
	Start(ctx context.Context) error

	/*
		Stop end recording and transcribe the captured audio

		The temporary audio file is removed after a successful transcription. On
		transcription failure the file is left behind for the OS to reclaim.

			@param ctx context.Context - execution context
			@returns the transcript and recording duration
	*/
	Stop(ctx context.Context) (CaptureResult, error)

	/*
		Recording whether a recording is currently in progress

			@returns whether recording
	*/
	Recording() bool

	/*
		ElapsedSeconds seconds since recording started

			@returns elapsed whole seconds, 0 when not recording
	*/
	ElapsedSeconds() int
}

// sessionImpl implements Session
type sessionImpl struct {
	goutils.Component
	recorder    AudioRecorder
	transcriber SpeechTranscriber
	timeNow     func() time.Time
	recording   bool
	startedAt   time.Time
}

/*
NewSession define a new capture session

	@param recorder AudioRecorder - platform audio capture
	@param transcriber SpeechTranscriber - platform speech-to-text
	@returns new session
*/
func NewSession(recorder AudioRecorder, transcriber SpeechTranscriber) Session {
	return newSessionWithClock(recorder, transcriber, time.Now)
}

// newSessionWithClock session constructor with injectable clock for testing
func newSessionWithClock(
	recorder AudioRecorder, transcriber SpeechTranscriber, timeNow func() time.Time,
) Session {
	logTags := log.Fields{"package": "carelog", "module": "capture", "component": "session"}

	return &sessionImpl{
		Component: goutils.Component{
			LogTags: logTags,
			LogTagModifiers: []goutils.LogMetadataModifier{
				goutils.ModifyLogMetadataByRestRequestParam,
			},
		},
		recorder:    recorder,
		transcriber: transcriber,
		timeNow:     timeNow,
	}
}

/*
Start begin recording

	@param ctx context.Context - execution context
*/
func (s *sessionImpl) Start(ctx context.Context) error {
	filePath, err := s.recorder.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start audio capture [%w]", err)
	}

	s.recording = true
	s.startedAt = s.timeNow()
	log.WithFields(s.LogTags).WithField("file", filePath).Debug("Recording started")
	return nil
}

/*
Stop end recording and transcribe the captured audio

	@param ctx context.Context - execution context
	@returns the transcript and recording duration
*/
func (s *sessionImpl) Stop(ctx context.Context) (CaptureResult, error) {
	if !s.recording {
		return CaptureResult{}, ErrNoActiveRecording
	}
	duration := int(s.timeNow().Sub(s.startedAt) / time.Second)
	s.recording = false

	filePath, err := s.recorder.Stop(ctx)
	if err != nil {
		return CaptureResult{}, fmt.Errorf("failed to stop audio capture [%w]", err)
	}

	transcript, err := s.transcriber.Transcribe(ctx, filePath)
	if err != nil {
		// The audio file is intentionally left in place on failure
		return CaptureResult{}, fmt.Errorf("failed to transcribe recording [%w]", err)
	}

	if err := os.Remove(filePath); err != nil {
		log.WithError(err).WithFields(s.LogTags).WithField("file", filePath).
			Warn("Unable to remove temporary audio file")
	}

	return CaptureResult{Transcript: transcript, DurationSeconds: duration}, nil
}

/*
Recording whether a recording is currently in progress

	@returns whether recording
*/
func (s *sessionImpl) Recording() bool {
	return s.recording
}

/*
ElapsedSeconds seconds since recording started

	@returns elapsed whole seconds, 0 when not recording
*/
func (s *sessionImpl) ElapsedSeconds() int {
	if !s.recording {
		return 0
	}
	return int(s.timeNow().Sub(s.startedAt) / time.Second)
}

/*
FormatElapsed render an elapsed second count as mm:ss

	@param seconds int - elapsed seconds
	@return "MM:SS" display text
*/
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
