package cli

import (
	"context"
	"os"

	"github.com/lvtran/mindbrew/internal/client/services"
	"github.com/lvtran/mindbrew/internal/common"
)

// signUp walks the registration form. All validation lives in the
// orchestrator; a rejected draft simply leaves the user back at the prompt.
func (a *App) signUp(ctx context.Context) {
	var draft services.SignUpDraft
	var err error

	if draft.FullName, err = getSimpleText(a.reader, "Full name", os.Stdout); err != nil {
		return
	}
	if draft.Email, err = getSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return
	}
	if draft.Gender, err = getSimpleText(a.reader, "Gender", os.Stdout); err != nil {
		return
	}
	if draft.Address, err = getSimpleText(a.reader, "Address", os.Stdout); err != nil {
		return
	}
	if draft.Year, err = getSimpleText(a.reader, "Birth year (YYYY)", os.Stdout); err != nil {
		return
	}
	if draft.Month, err = getSimpleText(a.reader, "Birth month (1-12)", os.Stdout); err != nil {
		return
	}
	if draft.Day, err = getSimpleText(a.reader, "Birth day", os.Stdout); err != nil {
		return
	}

	password, err := getPassword("Choose a password", os.Stdout)
	if err != nil {
		return
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return
	}
	defer common.WipeByteArray(confirm)

	draft.Password = string(password)
	draft.ConfirmPassword = string(confirm)

	out := a.auth.SignUp(ctx, draft)
	a.followOutcome(ctx, out)
}
