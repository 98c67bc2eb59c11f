package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/handlers"
	"storefront/internal/models"
	serviceerrors "storefront/internal/service"
	"storefront/internal/state"
	"storefront/pkg/lib/logger/sl"
)

type UserService interface {
	Register(ctx context.Context, params models.RegisterParams) (models.AuthResult, error)
	Login(ctx context.Context, params models.LoginParams) (models.AuthResult, error)
	Me(ctx context.Context, params models.TokenParams) (models.User, error)
}

type Handler struct {
	log   *slog.Logger
	users UserService
	store *state.Store
	now   func() time.Time
}

func New(log *slog.Logger, users UserService, store *state.Store) *Handler {
	return &Handler{
		log:   log,
		users: users,
		store: store,
		now:   time.Now,
	}
}

func (h *Handler) Login(ctx context.Context, email, password string) error {
	const op = "handlers.session.Login"
	log := h.log.With("op", op)

	result, err := h.users.Login(ctx, models.LoginParams{Email: email, Password: password})
	if err != nil {
		log.Warn("Login failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, handlers.Surface(h.store, err))
	}
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}

	h.store.SignIn(result.Token, result.User)
	log.Info("Signed in", "user_id", result.User.Id)

	return nil
}

func (h *Handler) Register(ctx context.Context, name, email, password string) error {
	const op = "handlers.session.Register"
	log := h.log.With("op", op)

	result, err := h.users.Register(ctx, models.RegisterParams{Name: name, Email: email, Password: password})
	if err != nil {
		log.Warn("Registration failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, handlers.Surface(h.store, err))
	}
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}

	h.store.SignIn(result.Token, result.User)
	log.Info("Registered", "user_id", result.User.Id)

	return nil
}

// Restore revalidates a stored token against /users/me. A token the server
// rejects, or a JWT already past its exp, ends the session. Any other
// failure keeps the token so a later call can retry.
func (h *Handler) Restore(ctx context.Context) error {
	const op = "handlers.session.Restore"
	log := h.log.With("op", op)

	token := h.store.Token.Get()
	if token == "" {
		return nil
	}

	if err := state.CheckToken(token, h.now()); err != nil {
		log.Info("Stored token expired")
		h.store.SignOut()
		return fmt.Errorf("%s: %w", op, err)
	}

	user, err := h.users.Me(ctx, models.TokenParams{Token: token})
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if errors.Is(err, serviceerrors.ErrUnauthorized) {
			log.Info("Stored token rejected")
			h.store.SignOut()
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}

	h.store.SignIn(token, user)

	return nil
}

func (h *Handler) Logout() {
	h.store.SignOut()
}
