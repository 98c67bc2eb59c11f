package mocks

import (
	"context"

	"storefront/internal/models"

	"github.com/stretchr/testify/mock"
)

type FavoriteService struct {
	mock.Mock
}

func (m *FavoriteService) ListByUser(ctx context.Context, params models.FavoritesParams) ([]models.Favorite, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]models.Favorite), args.Error(1)
}
func (m *FavoriteService) Add(ctx context.Context, params models.AddFavoriteParams) (models.Favorite, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(models.Favorite), args.Error(1)
}
func (m *FavoriteService) Remove(ctx context.Context, params models.RemoveFavoriteParams) (models.Favorite, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(models.Favorite), args.Error(1)
}

type CartService struct {
	mock.Mock
}

func (m *CartService) AddProduct(ctx context.Context, params models.AddToCartParams) (models.ShoppingCart, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(models.ShoppingCart), args.Error(1)
}
