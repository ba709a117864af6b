// Package common contains shared helpers and sentinel errors used across
// mindbrew client components. Callers should use errors.Is to match these
// values.
package common

import "errors"

// ErrInvalidToken marks an identity token that cannot be decoded or is
// missing required claims.
var ErrInvalidToken = errors.New("invalid token")
