// Package auth - biometric app-lock capability
package auth

import "context"

// BiometryKind the biometric hardware available on the device
type BiometryKind string

const (
	// BiometryKindNone no biometric hardware
	BiometryKindNone BiometryKind = "none"
	// BiometryKindFace face recognition
	BiometryKindFace BiometryKind = "face"
	// BiometryKindTouch fingerprint recognition
	BiometryKindTouch BiometryKind = "touch"
	// BiometryKindOptic iris / optic recognition
	BiometryKindOptic BiometryKind = "optic"
)

// Outcome result of a biometric prompt
type Outcome string

const (
	// OutcomeSuccess the user authenticated
	OutcomeSuccess Outcome = "success"
	// OutcomeFailure the credential check failed
	OutcomeFailure Outcome = "failure"
	// OutcomeUserCancelled the user dismissed the prompt. Not a failure; the
	// lock UI must not show an error for this.
	OutcomeUserCancelled Outcome = "userCancelled"
)

// Authenticator platform biometric authentication capability
type Authenticator interface {
	/*
		Available whether biometric authentication can be used

			@returns whether available
	*/
	Available() bool

	/*
		Kind the biometric hardware on this device

			@returns the biometry kind
	*/
	Kind() BiometryKind

	/*
		Authenticate show the biometric prompt and wait for its result

		The three-way outcome separates a user-initiated cancel from a credential
		failure. The error return is for platform faults only.

			@param ctx context.Context - execution context
			@returns the prompt outcome
	*/
	Authenticate(ctx context.Context) (Outcome, error)
}
