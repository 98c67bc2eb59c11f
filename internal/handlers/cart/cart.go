package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/handlers"
	"storefront/internal/models"
	serviceerrors "storefront/internal/service"
	"storefront/internal/state"
	"storefront/pkg/lib/logger/sl"
)

type CartService interface {
	CreateGuest(ctx context.Context) (models.ShoppingCart, error)
	Get(ctx context.Context, params models.CartParams) (models.ShoppingCart, error)
	AddProduct(ctx context.Context, params models.AddToCartParams) (models.ShoppingCart, error)
	RemoveProduct(ctx context.Context, params models.RemoveFromCartParams) (models.ShoppingCart, error)
	UpdateQuantity(ctx context.Context, params models.UpdateQuantityParams) (models.ShoppingCart, error)
}

type CheckoutService interface {
	CreateSession(ctx context.Context, params models.CheckoutParams) (models.CheckoutSession, error)
}

type Handler struct {
	log      *slog.Logger
	carts    CartService
	checkout CheckoutService
	store    *state.Store
}

func New(log *slog.Logger, carts CartService, checkout CheckoutService, store *state.Store) *Handler {
	return &Handler{
		log:      log,
		carts:    carts,
		checkout: checkout,
		store:    store,
	}
}

// Load fetches the cart with the given id. Without an id, or when a guest
// cart is gone on the server, a new guest cart is created instead. The API
// has no lookup of a cart by user, so a signed-in user without an id also
// starts from a guest cart.
func (h *Handler) Load(ctx context.Context, cartId int) error {
	const op = "handlers.cart.Load"
	log := h.log.With("op", op, "cart_id", cartId)

	ticket := h.store.ShoppingCart.Begin()

	if cartId == 0 {
		return h.createGuest(ctx, op, ticket)
	}

	token := h.store.Token.Get()
	cart, err := h.carts.Get(ctx, models.CartParams{Token: token, ShoppingId: cartId})
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
	if err != nil {
		if errors.Is(err, serviceerrors.ErrNotFound) && token == "" {
			log.Info("Guest cart missing, creating a new one")
			return h.createGuest(ctx, op, ticket)
		}
		log.Warn("Cart unavailable", sl.Err(err))
		h.store.ShoppingCart.Commit(ticket, models.ShoppingCart{})
		return fmt.Errorf("%s: %w", op, handlers.Surface(h.store, err))
	}

	h.store.ShoppingCart.Commit(ticket, cart)

	return nil
}

func (h *Handler) createGuest(ctx context.Context, op string, ticket state.Ticket) error {
	cart, err := h.carts.CreateGuest(ctx)
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
	if err != nil {
		h.log.Warn("Failed to create guest cart", "op", op, sl.Err(err))
		return fmt.Errorf("%s: %w", op, handlers.Surface(h.store, err))
	}

	h.store.ShoppingCart.Commit(ticket, cart)

	return nil
}

func (h *Handler) Add(ctx context.Context, productId, quantity int) error {
	const op = "handlers.cart.Add"

	cartId := h.store.ShoppingCart.Get().Id
	if cartId == 0 {
		return fmt.Errorf("%s: %w", op, handlers.ErrNoCart)
	}

	return h.apply(ctx, op, func() (models.ShoppingCart, error) {
		return h.carts.AddProduct(ctx, models.AddToCartParams{
			Token:      h.store.Token.Get(),
			ShoppingId: cartId,
			ProductId:  productId,
			Quantity:   quantity,
		})
	})
}

func (h *Handler) Remove(ctx context.Context, cartProductId int) error {
	const op = "handlers.cart.Remove"

	if h.store.ShoppingCart.Get().Id == 0 {
		return fmt.Errorf("%s: %w", op, handlers.ErrNoCart)
	}

	return h.apply(ctx, op, func() (models.ShoppingCart, error) {
		return h.carts.RemoveProduct(ctx, models.RemoveFromCartParams{
			Token:         h.store.Token.Get(),
			CartProductId: cartProductId,
		})
	})
}

func (h *Handler) UpdateQuantity(ctx context.Context, cartProductId, quantity int) error {
	const op = "handlers.cart.UpdateQuantity"

	cartId := h.store.ShoppingCart.Get().Id
	if cartId == 0 {
		return fmt.Errorf("%s: %w", op, handlers.ErrNoCart)
	}

	return h.apply(ctx, op, func() (models.ShoppingCart, error) {
		return h.carts.UpdateQuantity(ctx, models.UpdateQuantityParams{
			Token:         h.store.Token.Get(),
			ShoppingId:    cartId,
			CartProductId: cartProductId,
			Quantity:      quantity,
		})
	})
}

// apply runs a cart mutation and stores the cart the server sent back,
// unless a newer cart write started meanwhile.
func (h *Handler) apply(ctx context.Context, op string, call func() (models.ShoppingCart, error)) error {
	log := h.log.With("op", op)

	ticket := h.store.ShoppingCart.Begin()
	cart, err := call()
	if err != nil {
		log.Warn("Cart update failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, handlers.Surface(h.store, err))
	}
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}

	h.store.ShoppingCart.Commit(ticket, cart)

	return nil
}

// Checkout opens a payment session for the current cart contents. The caller
// redirects to the returned URL.
func (h *Handler) Checkout(ctx context.Context) (models.CheckoutSession, error) {
	const op = "handlers.cart.Checkout"
	log := h.log.With("op", op)

	cart := h.store.ShoppingCart.Get()
	if cart.Id == 0 || len(cart.Products) == 0 {
		return models.CheckoutSession{}, fmt.Errorf("%s: %w", op, handlers.ErrNoCart)
	}

	session, err := h.checkout.CreateSession(ctx, models.CheckoutParams{
		Token:      h.store.Token.Get(),
		ShoppingId: cart.Id,
		Products:   cart.Products,
	})
	if err != nil {
		log.Warn("Checkout failed", sl.Err(err))
		return models.CheckoutSession{}, fmt.Errorf("%s: %w", op, handlers.Surface(h.store, err))
	}

	log.Info("Checkout session created", "cart_id", cart.Id, "session_id", session.Id)

	return session, nil
}

// Total renders the current cart sum, e.g. "$41.97".
func (h *Handler) Total() string {
	return models.FormatPrice(h.store.ShoppingCart.Get().Total())
}
