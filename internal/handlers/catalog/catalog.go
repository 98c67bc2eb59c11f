// Package catalog serves the product listing and detail views. Results are
// view-local and returned to the caller rather than stored.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"storefront/internal/models"
	"storefront/pkg/lib/logger/sl"
)

type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, params models.ProductParams) (models.Product, error)
	ListImages(ctx context.Context, params models.ProductParams) ([]models.Image, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
}

// Filter narrows a product listing. Zero fields match everything.
type Filter struct {
	CategoryId      int
	AnimalType      string
	IncludeInactive bool
}

func (f Filter) match(p models.Product) bool {
	if !f.IncludeInactive && !p.IsActive {
		return false
	}
	if f.CategoryId != 0 && p.CategoryId != f.CategoryId {
		return false
	}
	if f.AnimalType != "" && !strings.EqualFold(p.AnimalType, f.AnimalType) {
		return false
	}
	return true
}

type Handler struct {
	log        *slog.Logger
	products   ProductService
	categories CategoryService
}

func New(log *slog.Logger, products ProductService, categories CategoryService) *Handler {
	return &Handler{
		log:        log,
		products:   products,
		categories: categories,
	}
}

// Products returns the listing narrowed by filter. On failure the listing is
// empty and the error is returned alongside it.
func (h *Handler) Products(ctx context.Context, filter Filter) ([]models.Product, error) {
	const op = "handlers.catalog.Products"
	log := h.log.With("op", op)

	all, err := h.products.List(ctx)
	if err != nil {
		log.Warn("Products unavailable", sl.Err(err))
		return []models.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]models.Product, 0, len(all))
	for _, p := range all {
		if filter.match(p) {
			out = append(out, p)
		}
	}

	return out, nil
}

func (h *Handler) Product(ctx context.Context, productId int) (models.Product, error) {
	const op = "handlers.catalog.Product"
	log := h.log.With("op", op, "product_id", productId)

	product, err := h.products.Get(ctx, models.ProductParams{ProductId: productId})
	if err != nil {
		log.Warn("Product unavailable", sl.Err(err))
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	return product, nil
}

func (h *Handler) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "handlers.catalog.Categories"
	log := h.log.With("op", op)

	categories, err := h.categories.List(ctx)
	if err != nil {
		log.Warn("Categories unavailable", sl.Err(err))
		return []models.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	if categories == nil {
		categories = []models.Category{}
	}

	return categories, nil
}

func (h *Handler) Images(ctx context.Context, productId int) ([]models.Image, error) {
	const op = "handlers.catalog.Images"
	log := h.log.With("op", op, "product_id", productId)

	images, err := h.products.ListImages(ctx, models.ProductParams{ProductId: productId})
	if err != nil {
		log.Warn("Images unavailable", sl.Err(err))
		return []models.Image{}, fmt.Errorf("%s: %w", op, err)
	}
	if images == nil {
		images = []models.Image{}
	}

	return images, nil
}
