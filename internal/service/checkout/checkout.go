package checkoutservice

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

const MsgCheckoutFailed = "Failed to start checkout"

type Transport interface {
	Do(ctx context.Context, req client.Request, out any) (bool, error)
}

type CheckoutService struct {
	log       *slog.Logger
	transport Transport
}

func New(log *slog.Logger, transport Transport) *CheckoutService {
	return &CheckoutService{
		log:       log,
		transport: transport,
	}
}

// CreateSession opens a payment session for the cart. It is not idempotent;
// callers must not submit twice.
// POST /api/stripe/create-checkout-session
func (c *CheckoutService) CreateSession(ctx context.Context, params models.CheckoutParams) (models.CheckoutSession, error) {
	const op = "service.checkout.CreateSession"
	log := c.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.CheckoutSession{}, err
	}

	body := struct {
		ShoppingId int                  `json:"shoppingId"`
		Products   []models.CartProduct `json:"products"`
	}{
		ShoppingId: params.ShoppingId,
		Products:   params.Products,
	}

	var session models.CheckoutSession
	if _, err := c.transport.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   routes.Checkout,
		Token:  params.Token,
		Body:   body,
	}, &session); err != nil {
		adapter.LogFailure(log, MsgCheckoutFailed, err)
		return models.CheckoutSession{}, fmt.Errorf("%s: %w", op, err)
	}

	if session.URL == "" {
		log.Warn("Checkout session without redirect url", "cart_id", params.ShoppingId)
		return models.CheckoutSession{}, fmt.Errorf("%s: %w", op, serviceerrors.NewBusinessError(MsgCheckoutFailed, nil))
	}

	return session, nil
}
