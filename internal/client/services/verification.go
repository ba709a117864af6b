package services

import "time"

// Purpose says which flow a verification code belongs to.
type Purpose string

const (
	PurposeSignUp   Purpose = "signup"
	PurposeRecovery Purpose = "recovery"
)

// VerificationContext is the ephemeral state of one in-progress code
// confirmation. It is created when a sign-up or forgot-password call
// succeeds in sending a code and destroyed when the flow completes; an
// abandoned context needs no cleanup since nothing is persisted.
type VerificationContext struct {
	Purpose Purpose
	Email   string
	// Code carries the user-verified recovery code forward to the reset
	// step. The provider confirms a recovery code only together with the
	// new password, so the verification step cannot consume it.
	Code string

	cooldownUntil time.Time
	resending     bool
}
