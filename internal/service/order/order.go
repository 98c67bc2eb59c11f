package orderservice

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/client"
	"storefront/internal/models"
	"storefront/internal/routes"
	"storefront/internal/service/adapter"
)

type Transport interface {
	Do(ctx context.Context, req client.Request, out any) (bool, error)
}

type OrderService struct {
	log       *slog.Logger
	transport Transport
}

func New(log *slog.Logger, transport Transport) *OrderService {
	return &OrderService{
		log:       log,
		transport: transport,
	}
}

// GET /api/orders/users/{userId}
func (o *OrderService) ListByUser(ctx context.Context, params models.OrdersParams) ([]models.Order, error) {
	const op = "service.order.ListByUser"
	log := o.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return nil, err
	}

	var orders []models.Order
	if _, err := o.transport.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   routes.UserOrders(params.UserId),
		Token:  params.Token,
	}, &orders); err != nil {
		adapter.LogFailure(log, "Failed to list orders", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}
