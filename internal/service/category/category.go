package categoryservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/client"
	"storefront/internal/models"
	"storefront/internal/routes"
	serviceerrors "storefront/internal/service"
	"storefront/internal/service/adapter"
	"storefront/pkg/lib/logger/sl"
)

const MsgDeleteFailed = "Failed to delete category"

type Transport interface {
	Do(ctx context.Context, req client.Request, out any) (bool, error)
}

type CategoryService struct {
	log       *slog.Logger
	transport Transport
}

func New(log *slog.Logger, transport Transport) *CategoryService {
	return &CategoryService{
		log:       log,
		transport: transport,
	}
}

// GET /api/categories
func (c *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	const op = "service.category.List"
	log := c.log.With("op", op)

	var categories []models.Category
	if _, err := c.transport.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   routes.Categories,
	}, &categories); err != nil {
		adapter.LogFailure(log, "Failed to list categories", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("Categories loaded", "count", len(categories))

	return categories, nil
}

// POST /api/categories
func (c *CategoryService) Create(ctx context.Context, params models.CreateCategoryParams) (models.Category, error) {
	const op = "service.category.Create"
	log := c.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.Category{}, err
	}

	body := struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}{
		Name:        params.Name,
		Description: params.Description,
	}

	var category models.Category
	if _, err := c.transport.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   routes.Categories,
		Token:  params.Token,
		Body:   body,
	}, &category); err != nil {
		adapter.LogFailure(log, "Failed to create category", err)
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// PATCH /api/categories/{id}
func (c *CategoryService) Update(ctx context.Context, params models.UpdateCategoryParams) (models.Category, error) {
	const op = "service.category.Update"
	log := c.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.Category{}, err
	}

	var category models.Category
	if _, err := c.transport.Do(ctx, client.Request{
		Method: http.MethodPatch,
		Path:   routes.Category(params.CategoryId),
		Token:  params.Token,
		Body:   params.Fields,
	}, &category); err != nil {
		adapter.LogFailure(log, "Failed to update category", err)
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// Delete is strict: a non-2xx response or an empty 2xx both raise
// MsgDeleteFailed as a business error.
// DELETE /api/categories/{id}
func (c *CategoryService) Delete(ctx context.Context, params models.DeleteCategoryParams) (models.Category, error) {
	const op = "service.category.Delete"
	log := c.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.Category{}, err
	}

	var category models.Category
	empty, err := c.transport.Do(ctx, client.Request{
		Method: http.MethodDelete,
		Path:   routes.Category(params.CategoryId),
		Token:  params.Token,
	}, &category)
	if err != nil {
		var statusErr *serviceerrors.StatusError
		if !errors.As(err, &statusErr) {
			adapter.LogFailure(log, MsgDeleteFailed, err)
			return models.Category{}, fmt.Errorf("%s: %w", op, err)
		}
		log.Error(MsgDeleteFailed, sl.Err(err), "category_id", params.CategoryId)
		return models.Category{}, fmt.Errorf("%s: %w", op, serviceerrors.NewBusinessError(MsgDeleteFailed, err))
	}
	if empty {
		log.Warn("Delete returned no category", "category_id", params.CategoryId)
		return models.Category{}, fmt.Errorf("%s: %w", op, serviceerrors.NewBusinessError(MsgDeleteFailed, nil))
	}

	return category, nil
}
