package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"github.com/lvtran/mindbrew/internal/client/repositories/metadata"
	"github.com/lvtran/mindbrew/internal/logging"
)

// cognitoAPI is the slice of the Cognito IDP client this provider uses.
// *cip.Client satisfies it; tests substitute a fake.
type cognitoAPI interface {
	SignUp(ctx context.Context, in *cip.SignUpInput, opts ...func(*cip.Options)) (*cip.SignUpOutput, error)
	InitiateAuth(ctx context.Context, in *cip.InitiateAuthInput, opts ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
	ConfirmSignUp(ctx context.Context, in *cip.ConfirmSignUpInput, opts ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error)
	ResendConfirmationCode(ctx context.Context, in *cip.ResendConfirmationCodeInput, opts ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error)
	ForgotPassword(ctx context.Context, in *cip.ForgotPasswordInput, opts ...func(*cip.Options)) (*cip.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, in *cip.ConfirmForgotPasswordInput, opts ...func(*cip.Options)) (*cip.ConfirmForgotPasswordOutput, error)
	GlobalSignOut(ctx context.Context, in *cip.GlobalSignOutInput, opts ...func(*cip.Options)) (*cip.GlobalSignOutOutput, error)
}

type tokenSet struct {
	idToken      string
	accessToken  string
	refreshToken string
}

// CognitoProvider implements Provider against an AWS Cognito user pool using
// the USER_PASSWORD_AUTH and REFRESH_TOKEN_AUTH flows. Tokens are cached in
// memory and persisted through the metadata repository so sessions survive
// restarts. Sign-in/sign-out events are synthesized client-side, from the
// provider's own successful SignIn/SignOut calls.
type CognitoProvider struct {
	api      cognitoAPI
	clientID string
	meta     metadata.Repository
	hub      *Hub
	log      logging.Logger

	mu     sync.Mutex
	tok    tokenSet
	loaded bool

	// test seam
	now func() time.Time
}

// NewCognitoProvider builds a provider for the given user-pool app client.
// The pool allows unauthenticated app-client calls, so credentials are
// anonymous.
func NewCognitoProvider(ctx context.Context, region, clientID string, meta metadata.Repository, log logging.Logger) (*CognitoProvider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	api := cip.NewFromConfig(awsCfg, func(o *cip.Options) {
		o.Credentials = aws.AnonymousCredentials{}
	})

	return newCognitoProvider(api, clientID, meta, log), nil
}

func newCognitoProvider(api cognitoAPI, clientID string, meta metadata.Repository, log logging.Logger) *CognitoProvider {
	return &CognitoProvider{
		api:      api,
		clientID: clientID,
		meta:     meta,
		hub:      NewHub(),
		log:      log,
		now:      time.Now,
	}
}

func (p *CognitoProvider) Subscribe(fn func(Event)) Subscription {
	return p.hub.Subscribe(fn)
}

func (p *CognitoProvider) SignUp(ctx context.Context, username, password string, attrs UserAttributes) (SignUpResult, error) {
	in := &cip.SignUpInput{
		ClientId: aws.String(p.clientID),
		Username: aws.String(username),
		Password: aws.String(password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(username)},
			{Name: aws.String("name"), Value: aws.String(attrs.Name)},
			{Name: aws.String("gender"), Value: aws.String(attrs.Gender)},
			{Name: aws.String("address"), Value: aws.String(attrs.Address)},
			{Name: aws.String("birthdate"), Value: aws.String(attrs.Birthdate)},
		},
	}

	out, err := p.api.SignUp(ctx, in)
	if err != nil {
		return SignUpResult{}, mapError("sign up", err)
	}

	res := SignUpResult{Step: StepConfirmSignUp}
	if out.UserConfirmed {
		res.Step = StepDone
	}
	if out.CodeDeliveryDetails != nil && out.CodeDeliveryDetails.Destination != nil {
		res.Destination = *out.CodeDeliveryDetails.Destination
	}
	return res, nil
}

// SignIn authenticates with USER_PASSWORD_AUTH. Unconfirmed-user and
// reset-required failures are not surfaced as errors; they become pending
// next steps, matching how the rest of the flow treats them.
func (p *CognitoProvider) SignIn(ctx context.Context, username, password string) (SignInResult, error) {
	out, err := p.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(p.clientID),
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	})
	if err != nil {
		mapped := mapError("sign in", err)
		switch KindOf(mapped) {
		case KindUserNotConfirmed:
			return SignInResult{Step: StepConfirmSignUp}, nil
		}
		var prr *types.PasswordResetRequiredException
		if errors.As(err, &prr) {
			return SignInResult{Step: StepResetPassword}, nil
		}
		return SignInResult{}, mapped
	}

	if out.AuthenticationResult != nil {
		if err := p.storeAuthResult(ctx, out.AuthenticationResult); err != nil {
			return SignInResult{}, fmt.Errorf("sign in: %w", err)
		}
		p.hub.Emit(Event{Kind: EventSignedIn})
		return SignInResult{IsSignedIn: true, Step: StepDone}, nil
	}

	// The pool asked for a challenge this client does not drive.
	return SignInResult{Step: StepUnknown, RawStep: string(out.ChallengeName)}, nil
}

func (p *CognitoProvider) ConfirmSignUp(ctx context.Context, username, code string) error {
	_, err := p.api.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(p.clientID),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
	})
	if err != nil {
		return mapError("confirm sign up", err)
	}
	return nil
}

func (p *CognitoProvider) ResendSignUpCode(ctx context.Context, username string) error {
	_, err := p.api.ResendConfirmationCode(ctx, &cip.ResendConfirmationCodeInput{
		ClientId: aws.String(p.clientID),
		Username: aws.String(username),
	})
	if err != nil {
		return mapError("resend sign up code", err)
	}
	return nil
}

func (p *CognitoProvider) ResetPassword(ctx context.Context, username string) (ResetPasswordResult, error) {
	out, err := p.api.ForgotPassword(ctx, &cip.ForgotPasswordInput{
		ClientId: aws.String(p.clientID),
		Username: aws.String(username),
	})
	if err != nil {
		return ResetPasswordResult{}, mapError("reset password", err)
	}

	res := ResetPasswordResult{Step: StepResetPassword}
	if out.CodeDeliveryDetails != nil && out.CodeDeliveryDetails.Destination != nil {
		res.Destination = *out.CodeDeliveryDetails.Destination
	}
	return res, nil
}

func (p *CognitoProvider) ConfirmResetPassword(ctx context.Context, username, code, newPassword string) error {
	_, err := p.api.ConfirmForgotPassword(ctx, &cip.ConfirmForgotPasswordInput{
		ClientId:         aws.String(p.clientID),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
	})
	if err != nil {
		return mapError("confirm reset password", err)
	}
	return nil
}

func (p *CognitoProvider) FetchSession(ctx context.Context, forceRefresh bool) (Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.loadTokensLocked(ctx); err != nil {
		return Session{}, err
	}

	if p.tok.idToken == "" && p.tok.refreshToken == "" {
		return Session{}, ErrNoSession
	}

	if !forceRefresh && p.tok.idToken != "" {
		if sub, exp, err := decodeIDToken(p.tok.idToken); err == nil && p.now().Before(exp) {
			return Session{SubjectID: sub, ExpiresAt: exp}, nil
		}
	}

	if p.tok.refreshToken == "" {
		return Session{}, ErrNoSession
	}

	out, err := p.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeRefreshTokenAuth,
		ClientId: aws.String(p.clientID),
		AuthParameters: map[string]string{
			"REFRESH_TOKEN": p.tok.refreshToken,
		},
	})
	if err != nil {
		return Session{}, mapError("fetch session", err)
	}
	if out.AuthenticationResult == nil {
		return Session{}, ErrNoSession
	}

	if err := p.storeAuthResultLocked(ctx, out.AuthenticationResult); err != nil {
		return Session{}, fmt.Errorf("fetch session: %w", err)
	}

	sub, exp, err := decodeIDToken(p.tok.idToken)
	if err != nil {
		return Session{}, fmt.Errorf("fetch session: %w", err)
	}
	return Session{SubjectID: sub, ExpiresAt: exp}, nil
}

// SignOut revokes the session server-side on a best-effort basis, wipes the
// local token cache, and notifies subscribers.
func (p *CognitoProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	if err := p.loadTokensLocked(ctx); err != nil {
		p.mu.Unlock()
		return err
	}

	if p.tok.accessToken != "" {
		if _, err := p.api.GlobalSignOut(ctx, &cip.GlobalSignOutInput{
			AccessToken: aws.String(p.tok.accessToken),
		}); err != nil {
			p.log.Warn(ctx, "global sign out failed, clearing local session anyway", "err", err)
		}
	}

	p.tok = tokenSet{}
	for _, key := range []string{metadata.KeyIDToken, metadata.KeyAccessToken, metadata.KeyRefreshToken} {
		if err := p.meta.Delete(ctx, key); err != nil {
			p.mu.Unlock()
			return fmt.Errorf("sign out: %w", err)
		}
	}
	p.mu.Unlock()

	p.hub.Emit(Event{Kind: EventSignedOut})
	return nil
}

func (p *CognitoProvider) loadTokensLocked(ctx context.Context) error {
	if p.loaded {
		return nil
	}
	for key, dst := range map[string]*string{
		metadata.KeyIDToken:      &p.tok.idToken,
		metadata.KeyAccessToken:  &p.tok.accessToken,
		metadata.KeyRefreshToken: &p.tok.refreshToken,
	} {
		v, err := p.meta.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("load tokens: %w", err)
		}
		if v != nil {
			*dst = string(v)
		}
	}
	p.loaded = true
	return nil
}

func (p *CognitoProvider) storeAuthResult(ctx context.Context, ar *types.AuthenticationResultType) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.storeAuthResultLocked(ctx, ar)
}

// storeAuthResultLocked updates the cache and the durable copy. A refresh
// response omits the refresh token; the previous one stays valid.
func (p *CognitoProvider) storeAuthResultLocked(ctx context.Context, ar *types.AuthenticationResultType) error {
	p.loaded = true
	set := func(key string, raw *string, dst *string) error {
		if raw == nil {
			return nil
		}
		*dst = *raw
		if err := p.meta.Set(ctx, key, []byte(*raw)); err != nil {
			return fmt.Errorf("persist %s: %w", key, err)
		}
		return nil
	}
	if err := set(metadata.KeyIDToken, ar.IdToken, &p.tok.idToken); err != nil {
		return err
	}
	if err := set(metadata.KeyAccessToken, ar.AccessToken, &p.tok.accessToken); err != nil {
		return err
	}
	return set(metadata.KeyRefreshToken, ar.RefreshToken, &p.tok.refreshToken)
}

// mapError folds a Cognito SDK error into the closed Kind set. Typed
// exceptions are matched first; anything else with a smithy error code is
// matched by code, and the rest is KindUnknown.
func mapError(op string, err error) error {
	kind := KindUnknown

	var (
		userNotFound     *types.UserNotFoundException
		notAuthorized    *types.NotAuthorizedException
		userNotConfirmed *types.UserNotConfirmedException
		usernameExists   *types.UsernameExistsException
		codeMismatch     *types.CodeMismatchException
		expiredCode      *types.ExpiredCodeException
		tooManyRequests  *types.TooManyRequestsException
		limitExceeded    *types.LimitExceededException
		invalidPassword  *types.InvalidPasswordException
		invalidParameter *types.InvalidParameterException
	)

	switch {
	case errors.As(err, &userNotFound):
		kind = KindUserNotFound
	case errors.As(err, &notAuthorized):
		kind = KindNotAuthorized
	case errors.As(err, &userNotConfirmed):
		kind = KindUserNotConfirmed
	case errors.As(err, &usernameExists):
		kind = KindUsernameExists
	case errors.As(err, &codeMismatch):
		kind = KindCodeMismatch
	case errors.As(err, &expiredCode):
		kind = KindCodeExpired
	case errors.As(err, &tooManyRequests), errors.As(err, &limitExceeded):
		kind = KindTooManyRequests
	case errors.As(err, &invalidPassword):
		kind = KindWeakPassword
	case errors.As(err, &invalidParameter):
		kind = KindInvalidParameter
	default:
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case "UserNotFoundException":
				kind = KindUserNotFound
			case "NotAuthorizedException":
				kind = KindNotAuthorized
			case "UserNotConfirmedException":
				kind = KindUserNotConfirmed
			case "UsernameExistsException":
				kind = KindUsernameExists
			case "CodeMismatchException":
				kind = KindCodeMismatch
			case "ExpiredCodeException":
				kind = KindCodeExpired
			case "TooManyRequestsException", "LimitExceededException":
				kind = KindTooManyRequests
			case "InvalidPasswordException":
				kind = KindWeakPassword
			case "InvalidParameterException":
				kind = KindInvalidParameter
			}
		}
	}

	return &Error{Kind: kind, Op: op, Err: err}
}
