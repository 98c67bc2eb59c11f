package mocks

import (
	"context"

	"storefront/internal/models"

	"github.com/stretchr/testify/mock"
)

type UserService struct {
	mock.Mock
}

func (m *UserService) Register(ctx context.Context, params models.RegisterParams) (models.AuthResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(models.AuthResult), args.Error(1)
}
func (m *UserService) Login(ctx context.Context, params models.LoginParams) (models.AuthResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(models.AuthResult), args.Error(1)
}
func (m *UserService) Me(ctx context.Context, params models.TokenParams) (models.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(models.User), args.Error(1)
}
