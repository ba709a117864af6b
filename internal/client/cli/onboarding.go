package cli

import (
	"context"
	"fmt"
	"os"
)

// onboarding shows the first-launch introduction once. Any input moves on to
// sign-in; the durable flag was already written, so the screen never comes
// back on later launches.
func (a *App) onboarding(ctx context.Context) (quit bool) {
	fmt.Println()
	fmt.Println("  mindbrew — coffee, ordered ahead.")
	fmt.Println("  Find cafes near you, build a cart, and skip the line.")
	fmt.Println()

	line, err := GetSimpleText(a.reader, "Press Enter to get started ('exit' to leave)", os.Stdout)
	if err != nil {
		return true
	}
	if line == "exit" || line == "quit" {
		return true
	}

	a.auth.CompleteOnboarding()
	return false
}
