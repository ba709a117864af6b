package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/lvtran/mindbrew/internal/client/services"
	"github.com/lvtran/mindbrew/internal/common"
)

// forgotPassword starts the recovery flow: send a code, verify it, then set
// the new password.
func (a *App) forgotPassword(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter your account email", os.Stdout)
	if err != nil {
		return
	}

	out := a.auth.ForgotPassword(ctx, email)
	a.followOutcome(ctx, out)
}

// resetPassword collects the verified code and the new password and submits
// them together. A code carried over from the verification screen is offered
// as the default.
func (a *App) resetPassword(ctx context.Context) {
	carried := ""
	if verif, ok := a.auth.Verification(); ok {
		carried = verif.Code
	}

	for {
		prompt := "Verification code"
		if carried != "" {
			prompt = fmt.Sprintf("Verification code [%s]", carried)
		}
		code, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return
		}
		if code == "" {
			code = carried
		}

		password, err := getPassword("New password", os.Stdout)
		if err != nil {
			return
		}
		confirm, err := getPassword("Confirm new password", os.Stdout)
		if err != nil {
			common.WipeByteArray(password)
			return
		}

		out := a.auth.ResetPassword(ctx, code, string(password), string(confirm))
		common.WipeByteArray(password)
		common.WipeByteArray(confirm)

		if out == services.OutcomeSignInAgain {
			return
		}

		again, err := getSimpleText(a.reader, "Try again? (y/n)", os.Stdout)
		if err != nil || again != "y" {
			return
		}
	}
}
