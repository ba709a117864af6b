// Package cli provides the interactive mindbrew command-line client.
//
// It wires configuration, local storage, the identity provider, and the
// storefront API into a screen loop gated by the session store. Typical flow:
// restore the session on startup, route to onboarding / sign-in / shop
// depending on the outcome, and execute user commands.
//
// Key features:
//   - Sign in / Sign up with email verification
//   - Password recovery (code plus new password)
//   - Browse cafes and drinks, manage a cart
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
package cli
