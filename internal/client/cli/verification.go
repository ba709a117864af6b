package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/lvtran/mindbrew/internal/client/services"
)

// verification is the code-entry screen for both sign-up confirmation and
// password recovery. "resend" requests a fresh code; the orchestrator keeps
// it a no-op while the cooldown runs, so mashing the command costs nothing.
// The screen ends when the code is accepted or the user backs out.
func (a *App) verification(ctx context.Context) {
	verif, ok := a.auth.Verification()
	if !ok {
		return
	}
	fmt.Printf("A verification code was sent to %s.\n", verif.Email)

	for {
		prompt := "Enter code ('resend' for a new one, 'back' to cancel)"
		if left := a.auth.CooldownRemaining(); left > 0 {
			prompt = fmt.Sprintf("Enter code ('back' to cancel; resend in %ds)", left)
		}

		line, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return
		}

		switch line {
		case "back":
			return
		case "resend":
			a.auth.ResendCode(ctx)
		default:
			switch a.auth.SubmitVerificationCode(ctx, line) {
			case services.OutcomeSignInAgain:
				return
			case services.OutcomeResetPassword:
				a.resetPassword(ctx)
				return
			}
		}
	}
}
