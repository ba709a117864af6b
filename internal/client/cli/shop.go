package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lvtran/mindbrew/internal/client/models"
)

// shopLoop is the authenticated storefront: browse cafes and drinks, manage
// the cart. It returns when the user signs out (the session event re-routes
// the outer loop) or exits.
func (a *App) shopLoop(ctx context.Context) (quit bool) {
	for {
		snap := a.session.Snapshot()
		if Route(snap) != ScreenShop {
			return false
		}

		fmt.Printf("mb (%s)> ", snap.User)
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return true
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Available commands: stores, items, menu <store-id>, add <item-id>, dec <item-id>, remove <item-id>, cart, checkout, signout, exit")
		case "stores":
			a.listStores(ctx)
		case "items":
			a.listItems(ctx, "")
		case "menu":
			if len(args) == 0 {
				fmt.Println("Usage: menu <store-id>")
				continue
			}
			a.listItems(ctx, args[0])
		case "add":
			if len(args) == 0 {
				fmt.Println("Usage: add <item-id>")
				continue
			}
			a.addToCart(ctx, args[0])
		case "dec":
			if len(args) == 0 {
				fmt.Println("Usage: dec <item-id>")
				continue
			}
			a.cart.Decrement(args[0])
			a.showCart()
		case "remove":
			if len(args) == 0 {
				fmt.Println("Usage: remove <item-id>")
				continue
			}
			a.cart.Remove(args[0])
			a.showCart()
		case "cart":
			a.showCart()
		case "checkout":
			a.checkout()
		case "signout":
			a.auth.SignOut(ctx)
			a.cart.Clear()
		case "exit", "quit":
			return true
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) listStores(ctx context.Context) {
	stores, err := a.catalog.Stores(ctx)
	if err != nil {
		a.log.Error(ctx, "listing stores", "err", err)
		fmt.Println("Could not load cafes. Please try again.")
		return
	}
	for _, s := range stores {
		fmt.Printf("  %-12s %-24s %-10s %.1f\n", s.ID, s.Name, s.Type, s.Rating)
	}
}

func (a *App) listItems(ctx context.Context, storeID string) {
	var (
		items []models.Item
		err   error
	)
	if storeID == "" {
		items, err = a.catalog.Items(ctx)
	} else {
		items, err = a.catalog.ItemsForStore(ctx, storeID)
	}
	if err != nil {
		a.log.Error(ctx, "listing items", "err", err)
		fmt.Println("Could not load the menu. Please try again.")
		return
	}
	if len(items) == 0 {
		fmt.Println("Nothing here yet.")
		return
	}
	for _, it := range items {
		fmt.Printf("  %-12s %-24s $%.2f  %s\n", it.ID, it.Name, it.Price, it.ShortDesc)
	}
}

func (a *App) addToCart(ctx context.Context, itemID string) {
	items, err := a.catalog.Items(ctx)
	if err != nil {
		a.log.Error(ctx, "loading items for cart", "err", err)
		fmt.Println("Could not load the menu. Please try again.")
		return
	}
	for _, it := range items {
		if it.ID == itemID {
			a.cart.Add(it)
			fmt.Printf("Added %s.\n", it.Name)
			return
		}
	}
	fmt.Println("No such item:", itemID)
}

func (a *App) showCart() {
	lines := a.cart.Items()
	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}
	for _, l := range lines {
		fmt.Printf("  %dx %-24s $%.2f\n", l.Quantity, l.Name, l.Price*float64(l.Quantity))
	}
	fmt.Printf("  Total: $%.2f\n", a.cart.Total())
}

func (a *App) checkout() {
	if len(a.cart.Items()) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}
	draft := a.cart.CheckoutDraft()
	fmt.Printf("Order %s drafted: %d line(s), $%.2f. Payment is not wired up yet.\n",
		draft.ID, len(draft.Lines), draft.Total)
	a.cart.Clear()
}
