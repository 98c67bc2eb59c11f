package mocks

import (
	"context"

	"storefront/internal/models"

	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) CreateGuest(ctx context.Context) (models.ShoppingCart, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.ShoppingCart), args.Error(1)
}
func (m *CartService) Get(ctx context.Context, params models.CartParams) (models.ShoppingCart, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(models.ShoppingCart), args.Error(1)
}
func (m *CartService) AddProduct(ctx context.Context, params models.AddToCartParams) (models.ShoppingCart, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(models.ShoppingCart), args.Error(1)
}
func (m *CartService) RemoveProduct(ctx context.Context, params models.RemoveFromCartParams) (models.ShoppingCart, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(models.ShoppingCart), args.Error(1)
}
func (m *CartService) UpdateQuantity(ctx context.Context, params models.UpdateQuantityParams) (models.ShoppingCart, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(models.ShoppingCart), args.Error(1)
}

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) CreateSession(ctx context.Context, params models.CheckoutParams) (models.CheckoutSession, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(models.CheckoutSession), args.Error(1)
}
