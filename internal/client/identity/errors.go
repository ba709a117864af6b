package identity

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned by FetchSession when no tokens are available at
// all, i.e. the user has never signed in on this device or has signed out.
var ErrNoSession = errors.New("no active session")

// Kind is the closed set of provider failure categories. Every error crossing
// the gateway boundary carries exactly one Kind, so callers can match
// exhaustively instead of inspecting provider-specific error shapes.
type Kind int

const (
	KindUnknown Kind = iota
	KindUserNotFound
	KindNotAuthorized
	KindUserNotConfirmed
	KindUsernameExists
	KindCodeMismatch
	KindCodeExpired
	KindTooManyRequests
	KindWeakPassword
	KindInvalidParameter
)

func (k Kind) String() string {
	switch k {
	case KindUserNotFound:
		return "UserNotFound"
	case KindNotAuthorized:
		return "NotAuthorized"
	case KindUserNotConfirmed:
		return "UserNotConfirmed"
	case KindUsernameExists:
		return "UsernameExists"
	case KindCodeMismatch:
		return "CodeMismatch"
	case KindCodeExpired:
		return "CodeExpired"
	case KindTooManyRequests:
		return "TooManyRequests"
	case KindWeakPassword:
		return "WeakPassword"
	case KindInvalidParameter:
		return "InvalidParameter"
	default:
		return "Unknown"
	}
}

// Error is a tagged provider error.
type Error struct {
	Kind Kind
	Op   string // the gateway operation that failed, e.g. "sign in"
	Err  error  // underlying provider error, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from err, returning KindUnknown when err is not a
// gateway Error.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}
