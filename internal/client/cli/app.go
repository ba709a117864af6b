package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/lvtran/mindbrew/internal/client/cart"
	"github.com/lvtran/mindbrew/internal/client/client"
	"github.com/lvtran/mindbrew/internal/client/config"
	"github.com/lvtran/mindbrew/internal/client/identity"
	"github.com/lvtran/mindbrew/internal/client/repositories/metadata"
	"github.com/lvtran/mindbrew/internal/client/services"
	"github.com/lvtran/mindbrew/internal/client/session"
	"github.com/lvtran/mindbrew/internal/client/storage"
	"github.com/lvtran/mindbrew/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	api     client.Client
	auth    *services.AuthService
	catalog *services.CatalogService
	cart    *cart.Store
	session *session.Store
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening local storage: %w", err)
	}

	meta := metadata.NewSQLiteMetadataRepository(db)

	provider, err := identity.NewCognitoProvider(ctx, cfg.AuthRegion, cfg.AuthClientID, meta, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing identity provider: %w", err)
	}

	api := client.NewRESTClient(cfg.APIBaseURL)
	store := session.New()

	notifier := services.NotifierFunc(func(msg string) {
		fmt.Println("[!]", msg)
	})

	auth := services.NewAuthService(provider, store, meta, api, notifier, log, cfg.ResendCooldown)

	return &App{
		config:  cfg,
		log:     log,
		db:      db,
		api:     api,
		auth:    auth,
		catalog: services.NewCatalogService(api, log),
		cart:    cart.New(),
		session: store,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session and drives the screen loop until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Println("Welcome to mindbrew (type 'help' for commands)")

	if err := a.auth.Bootstrap(ctx); err != nil {
		return err
	}

	for {
		var quit bool
		switch Route(a.session.Snapshot()) {
		case ScreenOnboarding:
			quit = a.onboarding(ctx)
		case ScreenAuth:
			quit = a.authLoop(ctx)
		case ScreenShop:
			quit = a.shopLoop(ctx)
		}
		if quit {
			fmt.Println("Bye!")
			return nil
		}
	}
}

func (a *App) Close() {
	a.auth.Close()
	if a.api != nil {
		a.api.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}
