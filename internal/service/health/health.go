package healthservice

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

const (
	StatusUp   = "api is up! :D"
	StatusDown = "api is down :/"
)

type Transport interface {
	Do(ctx context.Context, req client.Request, out any) (bool, error)
}

type HealthService struct {
	log       *slog.Logger
	transport Transport
}

func New(log *slog.Logger, transport Transport) *HealthService {
	return &HealthService{
		log:       log,
		transport: transport,
	}
}

// Check reports an unhealthy API alongside the error when the call fails.
func (h *HealthService) Check(ctx context.Context) (models.Health, error) {
	const op = "service.health.Check"
	log := h.log.With("op", op)

	var health models.Health
	if _, err := h.transport.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   routes.Health,
	}, &health); err != nil {
		adapter.LogFailure(log, "Health check failed", err)
		return models.Health{Healthy: false}, fmt.Errorf("%s: %w", op, err)
	}

	return health, nil
}

func Status(h models.Health) string {
	if h.Healthy {
		return StatusUp
	}
	return StatusDown
}
