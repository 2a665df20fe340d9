package capture

import (
	"context"
	"errors"
)

// ErrSpeechPermissionDenied speech recognition permission was refused
var ErrSpeechPermissionDenied = errors.New("speech recognition permission denied")

// ErrRecognizerUnavailable no speech recognizer exists for the device locale
var ErrRecognizerUnavailable = errors.New("speech recognizer unavailable")

// ErrOnDeviceUnavailable the recognizer cannot run on-device. Distinct from
// ErrRecognizerUnavailable so the UI can explain it is a device limitation,
// not a transient failure.
var ErrOnDeviceUnavailable = errors.New("on-device speech recognition unavailable")

// ErrRecognitionFailed the recognizer produced no result
var ErrRecognitionFailed = errors.New("speech recognition failed")

// SpeechTranscriber on-device speech-to-text capability
type SpeechTranscriber interface {
	/*
		Transcribe convert a recorded audio file to text

		Single-shot and on-device only. Implementations report permission,
		availability, and on-device-support failures through the package's
		sentinel errors so callers can distinguish them with errors.Is.

			@param ctx context.Context - execution context
			@param filePath string - the audio file to transcribe
			@returns the transcribed text
	*/
	Transcribe(ctx context.Context, filePath string) (string, error)
}
