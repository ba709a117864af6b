// Package services contains the application services of the mindbrew client.
// This file defines the auth orchestrator: startup session recovery, the
// sign-in/sign-up flows, code verification with resend cooldown, password
// recovery, and the mapping of provider failures onto user-facing alerts.
package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lvtran/mindbrew/internal/client/client"
	"github.com/lvtran/mindbrew/internal/client/identity"
	"github.com/lvtran/mindbrew/internal/client/models"
	"github.com/lvtran/mindbrew/internal/client/repositories/metadata"
	"github.com/lvtran/mindbrew/internal/client/session"
	"github.com/lvtran/mindbrew/internal/logging"
)

// State is the orchestrator's position in the auth flow.
type State int

const (
	StateChecking State = iota
	StateFirstLaunch
	StateUnauthenticated
	StateAwaitingVerification
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateFirstLaunch:
		return "first-launch"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAwaitingVerification:
		return "awaiting-verification"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Outcome tells the calling screen where to navigate after an operation.
// Alerts have already been delivered through the Notifier by the time an
// Outcome is returned.
type Outcome int

const (
	// OutcomeNone: stay where you are.
	OutcomeNone Outcome = iota
	// OutcomeSignedIn: the session is established.
	OutcomeSignedIn
	// OutcomeVerifyEmail: go to the verification screen.
	OutcomeVerifyEmail
	// OutcomeResetPassword: go to the reset-password screen.
	OutcomeResetPassword
	// OutcomeSignInAgain: the flow finished; the user must sign in.
	OutcomeSignInAgain
)

// SignUpDraft carries the raw sign-up form values. It lives only in the
// submitting screen's scope and is never persisted.
type SignUpDraft struct {
	FullName        string
	Email           string
	Gender          string
	Address         string
	Day             string
	Month           string
	Year            string
	Password        string
	ConfirmPassword string
}

// AuthService orchestrates authentication against the identity provider and
// records outcomes in the session store. All provider failures are absorbed
// here: mapped to an alert, never returned to screens.
type AuthService struct {
	provider identity.Provider
	session  *session.Store
	meta     metadata.Repository
	api      client.Client // optional profile API, may be nil
	notifier Notifier
	log      logging.Logger
	cooldown time.Duration

	mu      sync.Mutex
	state   State
	verif   *VerificationContext
	pending models.NewUser // profile to create once sign-up is confirmed

	sub       identity.Subscription
	closeOnce sync.Once

	// test seam
	now func() time.Time
}

// NewAuthService wires the orchestrator. api may be nil when no profile API
// is configured.
func NewAuthService(provider identity.Provider, store *session.Store, meta metadata.Repository,
	api client.Client, notifier Notifier, log logging.Logger, cooldown time.Duration) *AuthService {
	return &AuthService{
		provider: provider,
		session:  store,
		meta:     meta,
		api:      api,
		notifier: notifier,
		log:      log,
		cooldown: cooldown,
		state:    StateChecking,
		now:      time.Now,
	}
}

// State returns the orchestrator's current flow state.
func (a *AuthService) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Verification returns a copy of the active verification context, if any.
func (a *AuthService) Verification() (VerificationContext, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.verif == nil {
		return VerificationContext{}, false
	}
	return *a.verif, true
}

// Bootstrap runs the one-time startup sequence: resolve the persisted
// first-launch flag, recover the provider session with a forced refresh, and
// subscribe to sign-in/sign-out events for the rest of the process lifetime.
// A failed session check is not an error; it resolves to the unauthenticated
// branch. Only broken local storage is reported.
func (a *AuthService) Bootstrap(ctx context.Context) error {
	a.setState(StateChecking)

	first, err := a.resolveFirstLaunch(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	a.session.SetFirstLaunch(first)

	sess, err := a.provider.FetchSession(ctx, true)
	if err != nil {
		a.log.Info(ctx, "auth check failed, starting signed out", "err", err)
		a.session.SetAuthState("", false)
		if first {
			a.setState(StateFirstLaunch)
		} else {
			a.setState(StateUnauthenticated)
		}
	} else {
		a.log.Info(ctx, "auth session restored", "sub", sess.SubjectID)
		a.session.SetAuthState(sess.SubjectID, true)
		a.setState(StateAuthenticated)
	}

	a.mu.Lock()
	a.sub = a.provider.Subscribe(a.onAuthEvent())
	a.mu.Unlock()

	return nil
}

// resolveFirstLaunch reads the durable launch flag, writing it on the very
// first run. The stored value decides the onboarding branch; this is a
// deliberate choice, see DESIGN.md.
func (a *AuthService) resolveFirstLaunch(ctx context.Context) (bool, error) {
	v, err := a.meta.Get(ctx, metadata.KeyHasLaunched)
	if err != nil {
		return false, err
	}
	if v != nil {
		return false, nil
	}
	if err := a.meta.Set(ctx, metadata.KeyHasLaunched, []byte("true")); err != nil {
		return false, err
	}
	a.log.Info(ctx, "first launch detected, setting flag")
	return true, nil
}

// Close releases the event subscription. Safe to call more than once; only
// the first call cancels.
func (a *AuthService) Close() {
	a.closeOnce.Do(func() {
		a.mu.Lock()
		sub := a.sub
		a.sub = nil
		a.mu.Unlock()
		if sub != nil {
			sub.Cancel()
		}
	})
}

// CompleteOnboarding leaves the first-launch branch. The durable flag was
// already written during Bootstrap; this only updates the live session.
func (a *AuthService) CompleteOnboarding() {
	a.session.SetFirstLaunch(false)
	a.mu.Lock()
	if a.state == StateFirstLaunch {
		a.state = StateUnauthenticated
	}
	a.mu.Unlock()
}

// SignIn authenticates with the provider. Empty fields short-circuit before
// any network call and leave the session untouched.
func (a *AuthService) SignIn(ctx context.Context, email, password string) Outcome {
	if email == "" || password == "" {
		a.notifier.Notify("Please enter both email and password.")
		return OutcomeNone
	}

	res, err := a.provider.SignIn(ctx, email, password)
	if err != nil {
		a.log.Error(ctx, "sign in failed", "err", err)
		a.notifier.Notify(signInMessage(err))
		return OutcomeNone
	}

	if res.IsSignedIn {
		user := email
		if sess, err := a.provider.FetchSession(ctx, false); err == nil {
			user = sess.SubjectID
		}
		a.session.SetAuthState(user, true)
		a.setState(StateAuthenticated)
		return OutcomeSignedIn
	}

	switch res.Step {
	case identity.StepDone:
		a.log.Debug(ctx, "already signed in, nothing to do")
		return OutcomeNone
	case identity.StepConfirmSignUp:
		a.notifier.Notify("Please verify your email to continue.")
		a.beginVerification(PurposeSignUp, email)
		return OutcomeVerifyEmail
	case identity.StepResetPassword:
		a.notifier.Notify("You need to reset your password.")
		a.beginVerification(PurposeRecovery, email)
		return OutcomeResetPassword
	default:
		a.log.Warn(ctx, "unhandled sign in step", "step", res.RawStep)
		a.notifier.Notify("Additional verification is required to complete sign in. Please contact support via support@mindbrew.app.")
		return OutcomeNone
	}
}

// SignUp validates the draft locally, then registers the account. On success
// the flow moves to email verification; the user is not signed in.
func (a *AuthService) SignUp(ctx context.Context, draft SignUpDraft) Outcome {
	name := strings.TrimSpace(draft.FullName)
	email := strings.ToLower(strings.TrimSpace(draft.Email))
	gender := strings.TrimSpace(draft.Gender)
	address := strings.TrimSpace(draft.Address)
	d := digitsOnly(draft.Day)
	m := digitsOnly(draft.Month)
	y := digitsOnly(draft.Year)

	switch {
	case name == "":
		a.notifier.Notify("Please enter your full name.")
		return OutcomeNone
	case !isValidEmail(email):
		a.notifier.Notify("Please enter a valid email.")
		return OutcomeNone
	case gender == "":
		a.notifier.Notify("Please select your gender.")
		return OutcomeNone
	case address == "":
		a.notifier.Notify("Please enter your address.")
		return OutcomeNone
	case len(y) != 4 || m == "" || d == "":
		a.notifier.Notify("Please enter a valid date of birth (YYYY-MM-DD).")
		return OutcomeNone
	}

	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)
	year, _ := strconv.Atoi(y)
	if month < 1 || month > 12 {
		a.notifier.Notify("Month must be 1-12.")
		return OutcomeNone
	}
	if max := daysInMonth(month, year); day < 1 || day > max {
		a.notifier.Notify(fmt.Sprintf("Day must be 1-%d.", max))
		return OutcomeNone
	}

	if draft.Password == "" {
		a.notifier.Notify("Please enter a password to create your account.")
		return OutcomeNone
	}

	attrs := identity.UserAttributes{
		Name:      name,
		Gender:    gender,
		Address:   address,
		Birthdate: fmt.Sprintf("%04d-%02d-%02d", year, month, day),
	}

	res, err := a.provider.SignUp(ctx, email, draft.Password, attrs)
	if err != nil {
		a.log.Error(ctx, "sign up failed", "err", err)
		a.notifier.Notify(signUpMessage(err))
		return OutcomeNone
	}

	a.log.Info(ctx, "sign up accepted", "destination", res.Destination)
	a.mu.Lock()
	a.pending = models.NewUser{Name: name, Email: email, Location: address}
	a.mu.Unlock()

	a.notifier.Notify("We've sent you a verification code. Please check your email.")
	a.beginVerification(PurposeSignUp, email)
	return OutcomeVerifyEmail
}

// SubmitVerificationCode completes a verification attempt. For sign-up the
// provider confirms the code and the flow ends at the sign-in screen. For
// recovery the code is only checked for shape and carried to the reset step,
// because the provider confirms a recovery code solely together with the new
// password.
func (a *AuthService) SubmitVerificationCode(ctx context.Context, code string) Outcome {
	code = strings.TrimSpace(code)
	if len(code) < 4 {
		a.notifier.Notify("Please enter the verification code.")
		return OutcomeNone
	}

	a.mu.Lock()
	verif := a.verif
	a.mu.Unlock()
	if verif == nil || verif.Email == "" {
		a.log.Error(ctx, "verification submitted without a target email")
		a.notifier.Notify("Something went wrong. Please go back and try again.")
		return OutcomeNone
	}

	if verif.Purpose == PurposeRecovery {
		a.mu.Lock()
		a.verif.Code = code
		a.mu.Unlock()
		return OutcomeResetPassword
	}

	if err := a.provider.ConfirmSignUp(ctx, verif.Email, code); err != nil {
		a.log.Error(ctx, "confirm sign up failed", "err", err)
		a.notifier.Notify(verifyMessage(err))
		return OutcomeNone
	}

	a.createPendingProfile(ctx)

	a.notifier.Notify("Email verified. Please sign in.")
	a.endVerification()
	return OutcomeSignInAgain
}

// ResendCode requests a fresh code. It is a strict no-op while the cooldown
// runs or while a resend is already in flight, so an eligible press causes
// exactly one provider call. The cooldown restarts only after success.
func (a *AuthService) ResendCode(ctx context.Context) {
	a.mu.Lock()
	if a.verif == nil || a.verif.Email == "" {
		a.mu.Unlock()
		a.notifier.Notify("Missing email. Please go back and enter your email again.")
		return
	}
	if a.cooldownRemainingLocked() > 0 || a.verif.resending {
		a.mu.Unlock()
		return
	}
	a.verif.resending = true
	email := a.verif.Email
	purpose := a.verif.Purpose
	a.mu.Unlock()

	var err error
	if purpose == PurposeSignUp {
		err = a.provider.ResendSignUpCode(ctx, email)
	} else {
		// recovery codes are re-sent by starting another reset
		_, err = a.provider.ResetPassword(ctx, email)
	}

	a.mu.Lock()
	if a.verif != nil {
		a.verif.resending = false
		if err == nil {
			a.verif.cooldownUntil = a.now().Add(a.cooldown)
		}
	}
	a.mu.Unlock()

	if err != nil {
		a.log.Error(ctx, "resend failed", "err", err)
		a.notifier.Notify(resendMessage(err))
		return
	}
	a.notifier.Notify("A new verification code has been sent.")
}

// CooldownRemaining reports whole time units left before resend becomes
// eligible again.
func (a *AuthService) CooldownRemaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cooldownRemainingLocked()
}

func (a *AuthService) cooldownRemainingLocked() int {
	if a.verif == nil {
		return 0
	}
	left := a.verif.cooldownUntil.Sub(a.now())
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

// ForgotPassword starts the recovery flow by sending a code.
func (a *AuthService) ForgotPassword(ctx context.Context, email string) Outcome {
	email = strings.ToLower(strings.TrimSpace(email))
	if !isValidEmail(email) {
		a.notifier.Notify("Enter a valid email.")
		return OutcomeNone
	}

	if _, err := a.provider.ResetPassword(ctx, email); err != nil {
		a.log.Error(ctx, "forgot password failed", "err", err)
		a.notifier.Notify("Could not send reset code. Please try again.")
		return OutcomeNone
	}

	a.beginVerification(PurposeRecovery, email)
	return OutcomeVerifyEmail
}

// ResetPassword confirms the recovery code together with the new password.
// Each local check independently rejects without a provider call. Success
// terminates the flow at the sign-in screen; no session is established.
func (a *AuthService) ResetPassword(ctx context.Context, code, newPassword, confirmPassword string) Outcome {
	a.mu.Lock()
	var email string
	if a.verif != nil {
		email = a.verif.Email
	}
	a.mu.Unlock()

	if email == "" {
		a.notifier.Notify("Missing email for password reset. Please restart the recovery flow.")
		return OutcomeNone
	}

	code = strings.TrimSpace(code)
	if code == "" {
		a.notifier.Notify("Please enter the verification code from your email.")
		return OutcomeNone
	}
	if len(newPassword) < 8 {
		a.notifier.Notify("Password must be at least 8 characters.")
		return OutcomeNone
	}
	if newPassword != confirmPassword {
		a.notifier.Notify("Passwords do not match.")
		return OutcomeNone
	}

	if err := a.provider.ConfirmResetPassword(ctx, email, code, newPassword); err != nil {
		a.log.Error(ctx, "confirm reset password failed", "err", err)
		a.notifier.Notify(resetMessage(err))
		return OutcomeNone
	}

	a.notifier.Notify("Your password has been reset. Please sign in.")
	a.endVerification()
	return OutcomeSignInAgain
}

// SignOut ends the provider session. The session store is updated through
// the provider's sign-out event.
func (a *AuthService) SignOut(ctx context.Context) {
	if err := a.provider.SignOut(ctx); err != nil {
		a.log.Error(ctx, "sign out failed", "err", err)
		a.notifier.Notify("Could not sign out. Please try again.")
		return
	}
	a.setState(StateUnauthenticated)
}

func (a *AuthService) beginVerification(purpose Purpose, email string) {
	a.mu.Lock()
	a.state = StateAwaitingVerification
	a.verif = &VerificationContext{
		Purpose:       purpose,
		Email:         email,
		cooldownUntil: a.now().Add(a.cooldown),
	}
	a.mu.Unlock()
}

func (a *AuthService) endVerification() {
	a.mu.Lock()
	a.verif = nil
	a.state = StateUnauthenticated
	a.mu.Unlock()
}

func (a *AuthService) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}

// createPendingProfile registers the profile collected at sign-up with the
// storefront API. Best effort: a failure is logged, never surfaced, and the
// auth flow proceeds regardless.
func (a *AuthService) createPendingProfile(ctx context.Context) {
	a.mu.Lock()
	user := a.pending
	a.pending = models.NewUser{}
	a.mu.Unlock()

	if a.api == nil || user.Email == "" {
		return
	}
	if err := a.api.CreateUser(ctx, user); err != nil {
		a.log.Warn(ctx, "profile creation failed", "err", err)
	}
}

// onAuthEvent reacts to the provider's event channel: a sign-in re-fetches
// the session, a sign-out clears it regardless of prior state.
func (a *AuthService) onAuthEvent() func(identity.Event) {
	return func(e identity.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		switch e.Kind {
		case identity.EventSignedIn:
			user := ""
			if sess, err := a.provider.FetchSession(ctx, false); err == nil {
				user = sess.SubjectID
			}
			a.session.SetAuthState(user, true)
			a.setState(StateAuthenticated)
		case identity.EventSignedOut:
			a.session.SetAuthState("", false)
			a.setState(StateUnauthenticated)
		}
	}
}
