// Package identity abstracts the external identity provider that owns
// accounts, credentials and verification codes. The concrete implementation
// talks to an AWS Cognito user pool; everything above this package depends
// only on the Provider interface and the tagged error set in errors.go.
package identity

import (
	"context"
	"time"
)

// NextStep tells the caller what, if anything, the provider still requires
// after an operation nominally succeeded.
type NextStep int

const (
	// StepNone: nothing pending.
	StepNone NextStep = iota
	// StepDone: the flow is complete (e.g. already signed in).
	StepDone
	// StepConfirmSignUp: the account exists but the email is unverified.
	StepConfirmSignUp
	// StepResetPassword: the provider requires a password reset first.
	StepResetPassword
	// StepUnknown: the provider asked for something this client does not
	// implement; RawStep carries the provider's own name for it.
	StepUnknown
)

// UserAttributes are the profile attributes submitted with a sign-up.
// Birthdate uses the ISO form YYYY-MM-DD.
type UserAttributes struct {
	Name      string
	Gender    string
	Address   string
	Birthdate string
}

type SignUpResult struct {
	Step        NextStep
	Destination string // masked delivery destination of the code, if any
}

type SignInResult struct {
	IsSignedIn bool
	Step       NextStep
	RawStep    string
}

type ResetPasswordResult struct {
	Step        NextStep
	Destination string
}

// Session is the provider-side view of the current authentication state.
type Session struct {
	SubjectID string
	ExpiresAt time.Time
}

type EventKind int

const (
	EventSignedIn EventKind = iota
	EventSignedOut
)

// Event is a sign-in/sign-out notification delivered to subscribers.
type Event struct {
	Kind EventKind
}

// Subscription is a handle on an event-channel registration. Cancel is
// idempotent and releases the registration.
type Subscription interface {
	Cancel()
}

// Provider is the gateway contract consumed by the auth orchestrator.
// All failures are either *Error values tagged with a Kind, or ErrNoSession
// from FetchSession.
type Provider interface {
	SignUp(ctx context.Context, username, password string, attrs UserAttributes) (SignUpResult, error)
	SignIn(ctx context.Context, username, password string) (SignInResult, error)
	ConfirmSignUp(ctx context.Context, username, code string) error
	ResendSignUpCode(ctx context.Context, username string) error
	// ResetPassword sends a recovery code; it doubles as "resend recovery code".
	ResetPassword(ctx context.Context, username string) (ResetPasswordResult, error)
	ConfirmResetPassword(ctx context.Context, username, code, newPassword string) error
	// FetchSession returns the current session, refreshing tokens when
	// forceRefresh is set or the cached id token has expired.
	FetchSession(ctx context.Context, forceRefresh bool) (Session, error)
	SignOut(ctx context.Context) error
	// Subscribe registers fn for sign-in/sign-out events until the returned
	// subscription is cancelled. Events are delivered synchronously from the
	// operation that caused them.
	Subscribe(fn func(Event)) Subscription
}
