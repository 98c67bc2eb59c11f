package cartservice

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/client"
	"storefront/internal/models"
	"storefront/internal/routes"
	serviceerrors "storefront/internal/service"
	"storefront/internal/service/adapter"
)

const (
	MsgCreateGuestFailed    = "Failed to create guest shopping cart"
	MsgAddProductFailed     = "Failed to add product to cart"
	MsgRemoveProductFailed  = "Failed to remove product from cart"
	MsgUpdateQuantityFailed = "Failed to update cart quantity"
)

type Transport interface {
	Do(ctx context.Context, req client.Request, out any) (bool, error)
}

// CartService talks to /api/shopping_cart. Every call works for guests
// (no token) and signed-in users alike.
type CartService struct {
	log       *slog.Logger
	transport Transport
}

func New(log *slog.Logger, transport Transport) *CartService {
	return &CartService{
		log:       log,
		transport: transport,
	}
}

// POST /api/shopping_cart/guest
func (c *CartService) CreateGuest(ctx context.Context) (models.ShoppingCart, error) {
	const op = "service.cart.CreateGuest"
	log := c.log.With("op", op)

	var cart models.ShoppingCart
	empty, err := c.transport.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   routes.GuestCart,
	}, &cart)
	if err != nil {
		adapter.LogFailure(log, "Failed to create guest cart", err)
		return models.ShoppingCart{}, fmt.Errorf("%s: %w", op, err)
	}
	if empty {
		log.Warn("Guest cart response was empty")
		return models.ShoppingCart{}, fmt.Errorf("%s: %w", op, serviceerrors.NewBusinessError(MsgCreateGuestFailed, nil))
	}

	return cart, nil
}

// GET /api/shopping_cart/{id}
func (c *CartService) Get(ctx context.Context, params models.CartParams) (models.ShoppingCart, error) {
	const op = "service.cart.Get"
	log := c.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.ShoppingCart{}, err
	}

	var cart models.ShoppingCart
	empty, err := c.transport.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   routes.ShoppingCart(params.ShoppingId),
		Token:  params.Token,
	}, &cart)
	if err != nil {
		adapter.LogFailure(log, "Failed to get cart", err)
		return models.ShoppingCart{}, fmt.Errorf("%s: %w", op, err)
	}
	if empty {
		log.Warn("cart not found", "cart_id", params.ShoppingId)
		return models.ShoppingCart{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
	}

	return cart, nil
}

// POST /api/shopping_cart/{id}
func (c *CartService) AddProduct(ctx context.Context, params models.AddToCartParams) (models.ShoppingCart, error) {
	const op = "service.cart.AddProduct"

	if err := adapter.Validate(op, params); err != nil {
		return models.ShoppingCart{}, err
	}

	body := struct {
		ProductId int `json:"productId"`
		Quantity  int `json:"quantity"`
	}{
		ProductId: params.ProductId,
		Quantity:  params.Quantity,
	}

	return c.mutate(ctx, op, client.Request{
		Method: http.MethodPost,
		Path:   routes.ShoppingCart(params.ShoppingId),
		Token:  params.Token,
		Body:   body,
	}, MsgAddProductFailed)
}

// DELETE /api/shopping_cart/products/{cartProductId}
func (c *CartService) RemoveProduct(ctx context.Context, params models.RemoveFromCartParams) (models.ShoppingCart, error) {
	const op = "service.cart.RemoveProduct"

	if err := adapter.Validate(op, params); err != nil {
		return models.ShoppingCart{}, err
	}

	return c.mutate(ctx, op, client.Request{
		Method: http.MethodDelete,
		Path:   routes.CartProduct(params.CartProductId),
		Token:  params.Token,
	}, MsgRemoveProductFailed)
}

// PATCH /api/shopping_cart/{id}
func (c *CartService) UpdateQuantity(ctx context.Context, params models.UpdateQuantityParams) (models.ShoppingCart, error) {
	const op = "service.cart.UpdateQuantity"

	if err := adapter.Validate(op, params); err != nil {
		return models.ShoppingCart{}, err
	}

	body := struct {
		CartProductId int `json:"cartProductId"`
		Quantity      int `json:"quantity"`
	}{
		CartProductId: params.CartProductId,
		Quantity:      params.Quantity,
	}

	return c.mutate(ctx, op, client.Request{
		Method: http.MethodPatch,
		Path:   routes.ShoppingCart(params.ShoppingId),
		Token:  params.Token,
		Body:   body,
	}, MsgUpdateQuantityFailed)
}

// mutate runs a cart mutation; a 2xx without a cart is a business failure.
func (c *CartService) mutate(ctx context.Context, op string, req client.Request, failMsg string) (models.ShoppingCart, error) {
	log := c.log.With("op", op)

	var cart models.ShoppingCart
	empty, err := c.transport.Do(ctx, req, &cart)
	if err != nil {
		adapter.LogFailure(log, failMsg, err)
		return models.ShoppingCart{}, fmt.Errorf("%s: %w", op, err)
	}
	if empty {
		log.Warn("Cart mutation returned no cart")
		return models.ShoppingCart{}, fmt.Errorf("%s: %w", op, serviceerrors.NewBusinessError(failMsg, nil))
	}

	return cart, nil
}
