package userservice

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
	MsgRegisterFailed = "Failed to register"
	MsgLoginFailed    = "Failed to log in"
)

type Transport interface {
	Do(ctx context.Context, req client.Request, out any) (bool, error)
}

type UserService struct {
	log       *slog.Logger
	transport Transport
}

func New(log *slog.Logger, transport Transport) *UserService {
	return &UserService{
		log:       log,
		transport: transport,
	}
}

// POST /api/users/register
func (u *UserService) Register(ctx context.Context, params models.RegisterParams) (models.AuthResult, error) {
	const op = "service.user.Register"

	if err := adapter.Validate(op, params); err != nil {
		return models.AuthResult{}, err
	}

	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Name:     params.Name,
		Email:    params.Email,
		Password: params.Password,
	}

	return u.authenticate(ctx, op, routes.Register, body, MsgRegisterFailed)
}

// POST /api/users/login
func (u *UserService) Login(ctx context.Context, params models.LoginParams) (models.AuthResult, error) {
	const op = "service.user.Login"

	if err := adapter.Validate(op, params); err != nil {
		return models.AuthResult{}, err
	}

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Email:    params.Email,
		Password: params.Password,
	}

	return u.authenticate(ctx, op, routes.Login, body, MsgLoginFailed)
}

// authenticate treats a 2xx without a token as a rejected attempt and
// surfaces the server's message when it sent one.
func (u *UserService) authenticate(ctx context.Context, op, path string, body any, failMsg string) (models.AuthResult, error) {
	log := u.log.With("op", op)

	var result models.AuthResult
	if _, err := u.transport.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	}, &result); err != nil {
		adapter.LogFailure(log, failMsg, err)
		return models.AuthResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if result.Token == "" {
		msg := failMsg
		if result.Message != "" {
			msg = result.Message
		}
		log.Warn("No token issued", "message", result.Message)
		return models.AuthResult{}, fmt.Errorf("%s: %w", op, serviceerrors.NewBusinessError(msg, nil))
	}

	return result, nil
}

// GET /api/users/me
func (u *UserService) Me(ctx context.Context, params models.TokenParams) (models.User, error) {
	const op = "service.user.Me"
	log := u.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.User{}, err
	}

	var user models.User
	empty, err := u.transport.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   routes.Me,
		Token:  params.Token,
	}, &user)
	if err != nil {
		adapter.LogFailure(log, "Failed to get current user", err)
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if empty {
		return models.User{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrUnauthorized)
	}

	return user, nil
}

// GET /api/users
func (u *UserService) List(ctx context.Context, params models.TokenParams) ([]models.User, error) {
	const op = "service.user.List"
	log := u.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return nil, err
	}

	var users []models.User
	if _, err := u.transport.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   routes.Users,
		Token:  params.Token,
	}, &users); err != nil {
		adapter.LogFailure(log, "Failed to list users", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// GET /api/users/{id}
func (u *UserService) Get(ctx context.Context, params models.UserParams) (models.User, error) {
	const op = "service.user.Get"
	log := u.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.User{}, err
	}

	var user models.User
	empty, err := u.transport.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   routes.User(params.UserId),
		Token:  params.Token,
	}, &user)
	if err != nil {
		adapter.LogFailure(log, "Failed to get user", err)
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if empty {
		log.Warn("user not found", "user_id", params.UserId)
		return models.User{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
	}

	return user, nil
}

// DELETE /api/users/{id}
func (u *UserService) Delete(ctx context.Context, params models.UserParams) (models.User, error) {
	const op = "service.user.Delete"
	log := u.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.User{}, err
	}

	var user models.User
	if _, err := u.transport.Do(ctx, client.Request{
		Method: http.MethodDelete,
		Path:   routes.User(params.UserId),
		Token:  params.Token,
	}, &user); err != nil {
		adapter.LogFailure(log, "Failed to delete user", err)
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateRole grants or revokes admin rights: PATCH /api/users/{id}
func (u *UserService) UpdateRole(ctx context.Context, params models.UpdateRoleParams) (models.User, error) {
	const op = "service.user.UpdateRole"
	log := u.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.User{}, err
	}

	var user models.User
	if _, err := u.transport.Do(ctx, client.Request{
		Method: http.MethodPatch,
		Path:   routes.User(params.UserId),
		Token:  params.Token,
		Body:   map[string]bool{"isAdmin": params.IsAdmin},
	}, &user); err != nil {
		adapter.LogFailure(log, "Failed to update user role", err)
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
