// Package dashboard holds the admin views. Every call checks the admin flag
// first and sends nothing for other sessions.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/handlers"
	"storefront/internal/models"
	"storefront/internal/state"
	"storefront/pkg/lib/logger/sl"
)

type UserService interface {
	List(ctx context.Context, params models.TokenParams) ([]models.User, error)
	Delete(ctx context.Context, params models.UserParams) (models.User, error)
	UpdateRole(ctx context.Context, params models.UpdateRoleParams) (models.User, error)
}

type ProductService interface {
	Create(ctx context.Context, params models.CreateProductParams) (models.Product, error)
	Update(ctx context.Context, params models.UpdateProductParams) (models.Product, error)
	Deactivate(ctx context.Context, params models.DeactivateProductParams) (models.Product, error)
	AttachImage(ctx context.Context, params models.AttachImageParams) (models.Image, error)
}

type CategoryService interface {
	Create(ctx context.Context, params models.CreateCategoryParams) (models.Category, error)
	Update(ctx context.Context, params models.UpdateCategoryParams) (models.Category, error)
	Delete(ctx context.Context, params models.DeleteCategoryParams) (models.Category, error)
}

type Handler struct {
	log        *slog.Logger
	users      UserService
	products   ProductService
	categories CategoryService
	store      *state.Store
}

func New(log *slog.Logger, users UserService, products ProductService, categories CategoryService, store *state.Store) *Handler {
	return &Handler{
		log:        log,
		users:      users,
		products:   products,
		categories: categories,
		store:      store,
	}
}

func (h *Handler) authorize(op string) (string, error) {
	if !h.store.SignedIn() {
		return "", fmt.Errorf("%s: %w", op, handlers.ErrSignedOut)
	}
	if !h.store.IsAdmin.Get() {
		return "", fmt.Errorf("%s: %w", op, handlers.ErrForbidden)
	}
	return h.store.Token.Get(), nil
}

// fail logs err, surfaces it to the user and wraps it with op.
func (h *Handler) fail(op, msg string, err error) error {
	h.log.Warn(msg, "op", op, sl.Err(err))
	return fmt.Errorf("%s: %w", op, handlers.Surface(h.store, err))
}

func (h *Handler) Users(ctx context.Context) ([]models.User, error) {
	const op = "handlers.dashboard.Users"

	token, err := h.authorize(op)
	if err != nil {
		return []models.User{}, err
	}

	users, err := h.users.List(ctx, models.TokenParams{Token: token})
	if err != nil {
		return []models.User{}, h.fail(op, "Users unavailable", err)
	}
	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

func (h *Handler) DeleteUser(ctx context.Context, userId int) error {
	const op = "handlers.dashboard.DeleteUser"

	token, err := h.authorize(op)
	if err != nil {
		return err
	}

	if _, err := h.users.Delete(ctx, models.UserParams{Token: token, UserId: userId}); err != nil {
		return h.fail(op, "Failed to delete user", err)
	}

	h.log.Info("User deleted", "op", op, "user_id", userId)

	return nil
}

// SetRole grants or revokes admin rights. Changing the signed-in user's own
// role also updates the session's admin flag.
func (h *Handler) SetRole(ctx context.Context, userId int, isAdmin bool) (models.User, error) {
	const op = "handlers.dashboard.SetRole"

	token, err := h.authorize(op)
	if err != nil {
		return models.User{}, err
	}

	user, err := h.users.UpdateRole(ctx, models.UpdateRoleParams{Token: token, UserId: userId, IsAdmin: isAdmin})
	if err != nil {
		return models.User{}, h.fail(op, "Failed to update role", err)
	}
	if ctx.Err() != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, ctx.Err())
	}

	if h.store.User.Get().Id == user.Id {
		h.store.SignIn(token, user)
	}

	return user, nil
}

func (h *Handler) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	const op = "handlers.dashboard.CreateProduct"

	token, err := h.authorize(op)
	if err != nil {
		return models.Product{}, err
	}

	product, err := h.products.Create(ctx, models.CreateProductParams{Token: token, Product: input})
	if err != nil {
		return models.Product{}, h.fail(op, "Failed to create product", err)
	}

	return product, nil
}

func (h *Handler) UpdateProduct(ctx context.Context, productId int, fields models.ProductPatch) (models.Product, error) {
	const op = "handlers.dashboard.UpdateProduct"

	token, err := h.authorize(op)
	if err != nil {
		return models.Product{}, err
	}

	product, err := h.products.Update(ctx, models.UpdateProductParams{Token: token, ProductId: productId, Fields: fields})
	if err != nil {
		return models.Product{}, h.fail(op, "Failed to update product", err)
	}

	return product, nil
}

func (h *Handler) DeactivateProduct(ctx context.Context, productId int) (models.Product, error) {
	const op = "handlers.dashboard.DeactivateProduct"

	token, err := h.authorize(op)
	if err != nil {
		return models.Product{}, err
	}

	product, err := h.products.Deactivate(ctx, models.DeactivateProductParams{Token: token, ProductId: productId})
	if err != nil {
		return models.Product{}, h.fail(op, "Failed to deactivate product", err)
	}

	return product, nil
}

func (h *Handler) AttachImage(ctx context.Context, productId int, url string) (models.Image, error) {
	const op = "handlers.dashboard.AttachImage"

	token, err := h.authorize(op)
	if err != nil {
		return models.Image{}, err
	}

	image, err := h.products.AttachImage(ctx, models.AttachImageParams{Token: token, ProductId: productId, URL: url})
	if err != nil {
		return models.Image{}, h.fail(op, "Failed to attach image", err)
	}

	return image, nil
}

func (h *Handler) CreateCategory(ctx context.Context, name, description string) (models.Category, error) {
	const op = "handlers.dashboard.CreateCategory"

	token, err := h.authorize(op)
	if err != nil {
		return models.Category{}, err
	}

	category, err := h.categories.Create(ctx, models.CreateCategoryParams{Token: token, Name: name, Description: description})
	if err != nil {
		return models.Category{}, h.fail(op, "Failed to create category", err)
	}

	return category, nil
}

func (h *Handler) UpdateCategory(ctx context.Context, categoryId int, fields models.CategoryPatch) (models.Category, error) {
	const op = "handlers.dashboard.UpdateCategory"

	token, err := h.authorize(op)
	if err != nil {
		return models.Category{}, err
	}

	category, err := h.categories.Update(ctx, models.UpdateCategoryParams{Token: token, CategoryId: categoryId, Fields: fields})
	if err != nil {
		return models.Category{}, h.fail(op, "Failed to update category", err)
	}

	return category, nil
}

func (h *Handler) DeleteCategory(ctx context.Context, categoryId int) error {
	const op = "handlers.dashboard.DeleteCategory"

	token, err := h.authorize(op)
	if err != nil {
		return err
	}

	if _, err := h.categories.Delete(ctx, models.DeleteCategoryParams{Token: token, CategoryId: categoryId}); err != nil {
		return h.fail(op, "Failed to delete category", err)
	}

	return nil
}
