package productservice

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
	MsgCreateFailed = "Failed to create product"
	MsgUpdateFailed = "Failed to update product"
)

type Transport interface {
	Do(ctx context.Context, req client.Request, out any) (bool, error)
}

type ProductService struct {
	log       *slog.Logger
	transport Transport
}

func New(log *slog.Logger, transport Transport) *ProductService {
	return &ProductService{
		log:       log,
		transport: transport,
	}
}

// GET /api/products
func (p *ProductService) List(ctx context.Context) ([]models.Product, error) {
	const op = "service.product.List"
	log := p.log.With("op", op)

	var products []models.Product
	if _, err := p.transport.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   routes.Products,
	}, &products); err != nil {
		adapter.LogFailure(log, "Failed to list products", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return products, nil
}

// GET /api/products/{id}
func (p *ProductService) Get(ctx context.Context, params models.ProductParams) (models.Product, error) {
	const op = "service.product.Get"
	log := p.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	empty, err := p.transport.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   routes.Product(params.ProductId),
	}, &product)
	if err != nil {
		adapter.LogFailure(log, "Failed to get product", err)
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	if empty {
		log.Warn("product not found", "product_id", params.ProductId)
		return models.Product{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
	}

	return product, nil
}

// POST /api/products
func (p *ProductService) Create(ctx context.Context, params models.CreateProductParams) (models.Product, error) {
	const op = "service.product.Create"
	log := p.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	empty, err := p.transport.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   routes.Products,
		Token:  params.Token,
		Body:   params.Product,
	}, &product)
	if err != nil {
		adapter.LogFailure(log, MsgCreateFailed, err)
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	if empty {
		log.Warn("Create returned no product")
		return models.Product{}, fmt.Errorf("%s: %w", op, serviceerrors.NewBusinessError(MsgCreateFailed, nil))
	}

	return product, nil
}

// PATCH /api/products/{id}
func (p *ProductService) Update(ctx context.Context, params models.UpdateProductParams) (models.Product, error) {
	const op = "service.product.Update"
	log := p.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	empty, err := p.transport.Do(ctx, client.Request{
		Method: http.MethodPatch,
		Path:   routes.Product(params.ProductId),
		Token:  params.Token,
		Body:   params.Fields,
	}, &product)
	if err != nil {
		adapter.LogFailure(log, MsgUpdateFailed, err)
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	if empty {
		log.Warn("Update returned no product", "product_id", params.ProductId)
		return models.Product{}, fmt.Errorf("%s: %w", op, serviceerrors.NewBusinessError(MsgUpdateFailed, nil))
	}

	return product, nil
}

// Deactivate soft-deletes a product: PATCH /api/products/{id}/active
func (p *ProductService) Deactivate(ctx context.Context, params models.DeactivateProductParams) (models.Product, error) {
	const op = "service.product.Deactivate"
	log := p.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if _, err := p.transport.Do(ctx, client.Request{
		Method: http.MethodPatch,
		Path:   routes.ProductActive(params.ProductId),
		Token:  params.Token,
		Body:   map[string]bool{"isActive": false},
	}, &product); err != nil {
		adapter.LogFailure(log, "Failed to deactivate product", err)
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	return product, nil
}

// GET /api/images/product/{id}
func (p *ProductService) ListImages(ctx context.Context, params models.ProductParams) ([]models.Image, error) {
	const op = "service.product.ListImages"
	log := p.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return nil, err
	}

	var images []models.Image
	if _, err := p.transport.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   routes.ProductImages(params.ProductId),
	}, &images); err != nil {
		adapter.LogFailure(log, "Failed to list images", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

// POST /api/images/product/{id}
func (p *ProductService) AttachImage(ctx context.Context, params models.AttachImageParams) (models.Image, error) {
	const op = "service.product.AttachImage"
	log := p.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.Image{}, err
	}

	var image models.Image
	if _, err := p.transport.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   routes.ProductImages(params.ProductId),
		Token:  params.Token,
		Body:   map[string]string{"url": params.URL},
	}, &image); err != nil {
		adapter.LogFailure(log, "Failed to attach image", err)
		return models.Image{}, fmt.Errorf("%s: %w", op, err)
	}

	return image, nil
}
