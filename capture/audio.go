// Package capture - audio capture and speech transcription capabilities
package capture

import (
	"context"
	"errors"
)

// ErrNoActiveRecording stop was called with no recording in progress. This is
// a programmer-error-class failure in correct usage.
var ErrNoActiveRecording = errors.New("no active recording")

// ErrMicPermissionDenied microphone permission was refused
var ErrMicPermissionDenied = errors.New("microphone permission denied")

// AudioRecorder platform audio capture capability
//
// One recording may be in flight at a time; Stop returns the captured audio
// file for handoff to a SpeechTranscriber.
type AudioRecorder interface {
	/*
		Start begin capturing audio

			@param ctx context.Context - execution context
			@returns path of the audio file being written
	*/
	Start(ctx context.Context) (string, error)

	/*
		Stop finish capturing audio

			@param ctx context.Context - execution context
			@returns path of the finished audio file
	*/
	Stop(ctx context.Context) (string, error)
}
