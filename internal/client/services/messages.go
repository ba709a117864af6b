package services

import "github.com/lvtran/mindbrew/internal/client/identity"

// The message helpers translate the provider's error kinds into the alerts
// screens show. One helper per operation because the same kind reads
// differently depending on what the user was doing.

func signInMessage(err error) string {
	switch identity.KindOf(err) {
	case identity.KindUserNotFound:
		return "No account found for this email."
	case identity.KindNotAuthorized:
		return "Incorrect email or password."
	case identity.KindUserNotConfirmed:
		return "Your account isn't confirmed yet. Check your email for the code."
	case identity.KindTooManyRequests:
		return "Too many attempts. Please wait a moment and try again."
	default:
		return "Failed to sign in. Please try again."
	}
}

func signUpMessage(err error) string {
	switch identity.KindOf(err) {
	case identity.KindUsernameExists:
		return "An account with this email already exists."
	case identity.KindWeakPassword:
		return "Password doesn't meet requirements. Try a stronger one."
	case identity.KindInvalidParameter:
		return "Some information looks invalid. Please review your details."
	case identity.KindTooManyRequests:
		return "Too many attempts. Please wait a moment and try again."
	default:
		return "Failed to create account. Please try again."
	}
}

func verifyMessage(err error) string {
	switch identity.KindOf(err) {
	case identity.KindCodeMismatch:
		return "The code is incorrect. Please try again."
	case identity.KindCodeExpired:
		return "This code has expired. Please resend a new code."
	case identity.KindTooManyRequests:
		return "Too many attempts. Please wait a moment and try again."
	default:
		return "Verification failed. Please check the code and try again."
	}
}

func resendMessage(err error) string {
	switch identity.KindOf(err) {
	case identity.KindTooManyRequests:
		return "Too many requests. Please wait a moment and try again."
	case identity.KindUserNotFound:
		return "No account found for this email."
	default:
		return "Could not resend the code. Please try again."
	}
}

func resetMessage(err error) string {
	switch identity.KindOf(err) {
	case identity.KindCodeMismatch:
		return "The code is incorrect. Request a new one and try again."
	case identity.KindCodeExpired:
		return "This code has expired. Request a new one and try again."
	case identity.KindWeakPassword:
		return "Password doesn't meet requirements. Try a stronger one."
	case identity.KindUserNotFound:
		return "No account found for this email."
	default:
		return "Could not reset password. Please try again."
	}
}
