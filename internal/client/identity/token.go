package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lvtran/mindbrew/internal/common"
)

// decodeIDToken extracts the subject id and expiry from a raw JWT without
// verifying the signature. The provider issued and signed the token; this
// client only needs the claims for display and expiry checks.
func decodeIDToken(raw string) (sub string, exp time.Time, err error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err = parser.ParseUnverified(raw, claims); err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	sub, err = claims.GetSubject()
	if err != nil || sub == "" {
		return "", time.Time{}, fmt.Errorf("%w: missing sub claim", common.ErrInvalidToken)
	}

	numExp, err := claims.GetExpirationTime()
	if err != nil || numExp == nil {
		return "", time.Time{}, fmt.Errorf("%w: missing exp claim", common.ErrInvalidToken)
	}

	return sub, numExp.Time, nil
}
