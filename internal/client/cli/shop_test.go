package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvtran/mindbrew/internal/client/cart"
	"github.com/lvtran/mindbrew/internal/client/models"
	"github.com/lvtran/mindbrew/internal/client/session"
)

func newShopApp(input string) *App {
	store := session.New()
	store.SetFirstLaunch(false)
	store.SetAuthState("sub-1", true)
	return &App{
		cart:    cart.New(),
		session: store,
		reader:  bufio.NewReader(strings.NewReader(input)),
	}
}

func TestShopLoopDecrement(t *testing.T) {
	app := newShopApp("dec latte-1\nexit\n")
	latte := models.Item{ID: "latte-1", Name: "Latte", Price: 4.5}
	app.cart.Add(latte)
	app.cart.Add(latte)

	quit := app.shopLoop(context.Background())

	require.True(t, quit)
	lines := app.cart.Items()
	require.Len(t, lines, 1)
	require.Equal(t, 1, lines[0].Quantity)
}

func TestShopLoopDecrementDropsLastUnit(t *testing.T) {
	app := newShopApp("dec latte-1\nexit\n")
	app.cart.Add(models.Item{ID: "latte-1", Name: "Latte", Price: 4.5})

	quit := app.shopLoop(context.Background())

	require.True(t, quit)
	require.Empty(t, app.cart.Items())
}

func TestShopLoopDecUsage(t *testing.T) {
	app := newShopApp("dec\nexit\n")
	app.cart.Add(models.Item{ID: "latte-1", Name: "Latte", Price: 4.5})

	quit := app.shopLoop(context.Background())

	require.True(t, quit)
	require.Len(t, app.cart.Items(), 1, "bare dec must not touch the cart")
}
