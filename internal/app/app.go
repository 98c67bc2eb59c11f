package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/client"
	carthandler "storefront/internal/handlers/cart"
	"storefront/internal/handlers/catalog"
	"storefront/internal/handlers/dashboard"
	"storefront/internal/handlers/favorites"
	"storefront/internal/handlers/orders"
	"storefront/internal/handlers/session"
	cartservice "storefront/internal/service/cart"
	categoryservice "storefront/internal/service/category"
	checkoutservice "storefront/internal/service/checkout"
	favoriteservice "storefront/internal/service/favorite"
	healthservice "storefront/internal/service/health"
	orderservice "storefront/internal/service/order"
	productservice "storefront/internal/service/product"
	userservice "storefront/internal/service/user"
	"storefront/internal/state"
	"storefront/pkg/config"
	"storefront/pkg/lib/logger/sl"

	"golang.org/x/sync/errgroup"
)

// App wires every adapter and handler around one shared Store.
type App struct {
	log    *slog.Logger
	cartId int
	health *healthservice.HealthService

	Store     *state.Store
	Catalog   *catalog.Handler
	Session   *session.Handler
	Favorites *favorites.Handler
	Cart      *carthandler.Handler
	Orders    *orders.Handler
	Dashboard *dashboard.Handler
}

func New(log *slog.Logger, cfg *config.Config) *App {
	api := client.New(log, cfg.API.BaseURL, cfg.API.Timeout)

	products := productservice.New(log, api)
	categories := categoryservice.New(log, api)
	users := userservice.New(log, api)
	favs := favoriteservice.New(log, api)
	carts := cartservice.New(log, api)
	checkout := checkoutservice.New(log, api)
	orderHistory := orderservice.New(log, api)

	store := state.NewStore()
	if cfg.Session.Token != "" {
		store.Token.Set(cfg.Session.Token)
	}

	return &App{
		log:    log,
		cartId: cfg.Session.CartID,
		health: healthservice.New(log, api),

		Store:     store,
		Catalog:   catalog.New(log, products, categories),
		Session:   session.New(log, users, store),
		Favorites: favorites.New(log, favs, carts, store),
		Cart:      carthandler.New(log, carts, checkout, store),
		Orders:    orders.New(log, orderHistory, store),
		Dashboard: dashboard.New(log, users, products, categories, store),
	}
}

// Run performs the startup sequence: health probe, session restore, then
// the cart and favorites loads side by side. Only a canceled ctx fails it;
// other failures leave the affected slice in its empty state.
func (a *App) Run(ctx context.Context) error {
	const op = "app.Run"
	log := a.log.With("op", op)

	health, err := a.health.Check(ctx)
	if err != nil {
		log.Warn("Health check failed", sl.Err(err))
	}
	log.Info(healthservice.Status(health))

	if err := a.Session.Restore(ctx); err != nil {
		log.Warn("Session not restored", sl.Err(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.Cart.Load(gctx, a.cartId); err != nil {
			log.Warn("Cart not loaded", sl.Err(err))
		}
		return nil
	})
	g.Go(func() error {
		if err := a.Favorites.Load(gctx); err != nil {
			log.Warn("Favorites not loaded", sl.Err(err))
		}
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("Storefront ready",
		"signed_in", a.Store.SignedIn(),
		"cart_id", a.Store.ShoppingCart.Get().Id,
		"favorites", len(a.Store.Favorites.Get()),
	)

	return nil
}

// Shutdown reports why the app stopped. A canceled context is the normal way out.
func (a *App) Shutdown(cause error) {
	if cause == nil || errors.Is(cause, context.Canceled) {
		a.log.Info("Storefront stopped")
		return
	}
	a.log.Error("Storefront stopped", sl.Err(cause))
}
