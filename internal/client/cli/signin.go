package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lvtran/mindbrew/internal/client/services"
	"github.com/lvtran/mindbrew/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// authLoop is the signed-out surface: sign-in plus the flows reachable from
// it. It returns when the session becomes authenticated or the user exits.
func (a *App) authLoop(ctx context.Context) (quit bool) {
	for {
		snap := a.session.Snapshot()
		if Route(snap) != ScreenAuth {
			return false
		}

		fmt.Print("mb (signed out)> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return true
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			fmt.Println("Available commands: signin, signup, forgot, exit")
		case "signin":
			a.signIn(ctx)
		case "signup":
			a.signUp(ctx)
		case "forgot":
			a.forgotPassword(ctx)
		case "exit", "quit":
			return true
		default:
			fmt.Println("Unknown command:", parts[0])
		}
	}
}

// signIn prompts for credentials and authenticates. The orchestrator maps
// every failure to an alert; this screen only follows the outcome.
func (a *App) signIn(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return
	}
	defer common.WipeByteArray(password)

	out := a.auth.SignIn(ctx, email, string(password))
	a.followOutcome(ctx, out)
}

// followOutcome pushes the sub-screen an operation asked for. OutcomeSignedIn
// needs no action here: the session store changed and the caller's loop
// re-routes on its next pass.
func (a *App) followOutcome(ctx context.Context, out services.Outcome) {
	switch out {
	case services.OutcomeVerifyEmail:
		a.verification(ctx)
	case services.OutcomeResetPassword:
		a.resetPassword(ctx)
	}
}
