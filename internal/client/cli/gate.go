package cli

import "github.com/lvtran/mindbrew/internal/client/session"

// Screen is one of the three top-level surfaces the gate can route to.
type Screen int

const (
	// ScreenOnboarding: the first-launch introduction.
	ScreenOnboarding Screen = iota
	// ScreenAuth: sign-in and the flows reachable from it.
	ScreenAuth
	// ScreenShop: the authenticated storefront.
	ScreenShop
)

func (s Screen) String() string {
	switch s {
	case ScreenOnboarding:
		return "onboarding"
	case ScreenAuth:
		return "auth"
	case ScreenShop:
		return "shop"
	default:
		return "unknown"
	}
}

// Route picks the surface for a session snapshot. Authentication always wins:
// a signed-in user never sees onboarding, even on a first launch.
func Route(s session.Session) Screen {
	switch {
	case s.LoggedIn:
		return ScreenShop
	case s.FirstLaunch:
		return ScreenOnboarding
	default:
		return ScreenAuth
	}
}
