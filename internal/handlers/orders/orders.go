package orders

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/handlers"
	"storefront/internal/models"
	"storefront/internal/state"
	"storefront/pkg/lib/logger/sl"
)

type OrderService interface {
	ListByUser(ctx context.Context, params models.OrdersParams) ([]models.Order, error)
}

type Handler struct {
	log    *slog.Logger
	orders OrderService
	store  *state.Store
}

func New(log *slog.Logger, orders OrderService, store *state.Store) *Handler {
	return &Handler{
		log:    log,
		orders: orders,
		store:  store,
	}
}

// History lists the signed-in user's past orders, newest as the server sends them.
func (h *Handler) History(ctx context.Context) ([]models.Order, error) {
	const op = "handlers.orders.History"
	log := h.log.With("op", op)

	if !h.store.SignedIn() {
		return []models.Order{}, fmt.Errorf("%s: %w", op, handlers.ErrSignedOut)
	}
	if h.store.User.Get().Id == 0 {
		return []models.Order{}, fmt.Errorf("%s: %w", op, handlers.ErrNotRestored)
	}

	list, err := h.orders.ListByUser(ctx, models.OrdersParams{
		Token:  h.store.Token.Get(),
		UserId: h.store.User.Get().Id,
	})
	if err != nil {
		log.Warn("Order history unavailable", sl.Err(err))
		return []models.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	if list == nil {
		list = []models.Order{}
	}

	return list, nil
}
