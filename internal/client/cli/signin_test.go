package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lvtran/mindbrew/internal/client/identity"
	"github.com/lvtran/mindbrew/internal/client/services"
	"github.com/lvtran/mindbrew/internal/client/session"
	"github.com/lvtran/mindbrew/internal/logging"
)

type scriptedProvider struct {
	identity.Provider // panic on anything not scripted

	signInResult identity.SignInResult
	signInErr    error
	confirmErr   error
	lastUser     string
	lastPass     string
	lastCode     string
}

func (p *scriptedProvider) SignIn(_ context.Context, username, password string) (identity.SignInResult, error) {
	p.lastUser, p.lastPass = username, password
	return p.signInResult, p.signInErr
}

func (p *scriptedProvider) ConfirmSignUp(_ context.Context, username, code string) error {
	p.lastUser, p.lastCode = username, code
	return p.confirmErr
}

func (p *scriptedProvider) FetchSession(_ context.Context, _ bool) (identity.Session, error) {
	return identity.Session{SubjectID: "sub-1"}, nil
}

type nopMeta struct{}

func (nopMeta) Get(_ context.Context, _ string) ([]byte, error) { return nil, nil }
func (nopMeta) Set(_ context.Context, _ string, _ []byte) error { return nil }
func (nopMeta) Delete(_ context.Context, _ string) error        { return nil }

func newTestApp(t *testing.T, p identity.Provider, input string) (*App, *session.Store) {
	t.Helper()
	store := session.New()
	store.SetFirstLaunch(false)
	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	auth := services.NewAuthService(p, store, nopMeta{}, nil,
		services.NotifierFunc(func(string) {}), log, 30*time.Second)
	return &App{
		log:     log,
		auth:    auth,
		session: store,
		reader:  bufio.NewReader(strings.NewReader(input)),
	}, store
}

func withStubbedInput(t *testing.T, texts []string, password string) {
	t.Helper()
	oldText, oldPass := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = oldText, oldPass })

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		s := texts[i]
		i++
		return s, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func TestSignInScreenSuccess(t *testing.T) {
	p := &scriptedProvider{signInResult: identity.SignInResult{IsSignedIn: true}}
	app, store := newTestApp(t, p, "")
	withStubbedInput(t, []string{"lena@example.com"}, "hunter2hunter2")

	app.signIn(context.Background())

	require.Equal(t, "lena@example.com", p.lastUser)
	require.Equal(t, "hunter2hunter2", p.lastPass)
	snap := store.Snapshot()
	require.True(t, snap.LoggedIn)
	require.Equal(t, "sub-1", snap.User)
	require.Equal(t, ScreenShop, Route(snap))
}

func TestSignInScreenUnconfirmedRunsVerification(t *testing.T) {
	p := &scriptedProvider{signInResult: identity.SignInResult{Step: identity.StepConfirmSignUp}}
	app, store := newTestApp(t, p, "")
	// verification screen consumes the remaining scripted lines
	withStubbedInput(t, []string{"lena@example.com", "123456"}, "hunter2hunter2")

	app.signIn(context.Background())

	require.Equal(t, "lena@example.com", p.lastUser)
	require.Equal(t, "123456", p.lastCode)
	require.False(t, store.Snapshot().LoggedIn)
	require.Equal(t, ScreenAuth, Route(store.Snapshot()))
}

func TestAuthLoopExit(t *testing.T) {
	p := &scriptedProvider{}
	app, _ := newTestApp(t, p, "help\nexit\n")

	quit := app.authLoop(context.Background())

	require.True(t, quit)
}
