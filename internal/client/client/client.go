// Package client is the gateway to the downstream storefront REST API:
// catalog listings and user-profile creation. Authentication lives elsewhere
// (the identity package); these endpoints are public JSON.
package client

import (
	"context"

	"github.com/lvtran/mindbrew/internal/client/models"
)

// Client defines the storefront API operations used by the app.
//
// All methods honor context cancellation/timeouts.
type Client interface {
	ListStores(ctx context.Context) ([]models.Store, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	CreateUser(ctx context.Context, user models.NewUser) error
	Close() error
}
