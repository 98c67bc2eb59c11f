package session

import (
	"context"
	"testing"
	"time"

	"storefront/internal/handlers/session/mocks"
	"storefront/internal/models"
	serviceerrors "storefront/internal/service"
	"storefront/internal/state"
	"storefront/pkg/lib/logger/slogdiscard"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestHandler(users *mocks.UserService, store *state.Store) *Handler {
	h := New(slogdiscard.NewDiscardLogger(), users, store)
	h.now = func() time.Time { return now }
	return h
}

func jwtToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := new(mocks.UserService)
		store := state.NewStore()
		users.On("Login", mock.Anything, models.LoginParams{Email: "a@b.co", Password: "pw"}).
			Return(models.AuthResult{Token: "tok", User: models.User{Id: 1, IsAdmin: true}}, nil)

		err := newTestHandler(users, store).Login(context.Background(), "a@b.co", "pw")
		require.NoError(t, err)

		assert.Equal(t, "tok", store.Token.Get())
		assert.True(t, store.IsAdmin.Get())
		assert.Equal(t, 1, store.User.Get().Id)
		users.AssertExpectations(t)
	})

	t.Run("Rejected", func(t *testing.T) {
		users := new(mocks.UserService)
		store := state.NewStore()
		users.On("Login", mock.Anything, mock.Anything).
			Return(models.AuthResult{}, serviceerrors.NewBusinessError("Username or password is incorrect", nil))

		err := newTestHandler(users, store).Login(context.Background(), "a@b.co", "bad")
		assert.Equal(t, serviceerrors.KindBusiness, serviceerrors.KindOf(err))
		assert.Equal(t, "Username or password is incorrect", store.Alert.Get())
		assert.False(t, store.SignedIn())
	})

	t.Run("Canceled view keeps state", func(t *testing.T) {
		users := new(mocks.UserService)
		store := state.NewStore()
		ctx, cancel := context.WithCancel(context.Background())
		users.On("Login", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { cancel() }).
			Return(models.AuthResult{Token: "tok"}, nil)

		err := newTestHandler(users, store).Login(ctx, "a@b.co", "pw")
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, store.SignedIn())
	})
}

func TestRegister(t *testing.T) {
	users := new(mocks.UserService)
	store := state.NewStore()
	users.On("Register", mock.Anything, models.RegisterParams{Name: "Ann", Email: "ann@example.com", Password: "longenough"}).
		Return(models.AuthResult{Token: "new", User: models.User{Id: 5}}, nil)

	err := newTestHandler(users, store).Register(context.Background(), "Ann", "ann@example.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, "new", store.Token.Get())
	assert.False(t, store.IsAdmin.Get())
}

func TestRestore(t *testing.T) {
	t.Run("No token", func(t *testing.T) {
		users := new(mocks.UserService)
		assert.NoError(t, newTestHandler(users, state.NewStore()).Restore(context.Background()))
		users.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
	})

	t.Run("Valid token", func(t *testing.T) {
		users := new(mocks.UserService)
		store := state.NewStore()
		token := jwtToken(t, now.Add(time.Hour))
		store.Token.Set(token)
		users.On("Me", mock.Anything, models.TokenParams{Token: token}).Return(models.User{Id: 2, IsAdmin: true}, nil)

		require.NoError(t, newTestHandler(users, store).Restore(context.Background()))
		assert.True(t, store.IsAdmin.Get())
		assert.Equal(t, 2, store.User.Get().Id)
	})

	t.Run("Expired token", func(t *testing.T) {
		users := new(mocks.UserService)
		store := state.NewStore()
		store.Token.Set(jwtToken(t, now.Add(-time.Minute)))

		err := newTestHandler(users, store).Restore(context.Background())
		assert.ErrorIs(t, err, state.ErrTokenExpired)
		assert.False(t, store.SignedIn())
		users.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
	})

	t.Run("Rejected token", func(t *testing.T) {
		users := new(mocks.UserService)
		store := state.NewStore()
		store.Token.Set("opaque")
		users.On("Me", mock.Anything, mock.Anything).Return(models.User{}, &serviceerrors.StatusError{Code: 401})

		err := newTestHandler(users, store).Restore(context.Background())
		assert.ErrorIs(t, err, serviceerrors.ErrUnauthorized)
		assert.False(t, store.SignedIn())
	})

	t.Run("Server down keeps token", func(t *testing.T) {
		users := new(mocks.UserService)
		store := state.NewStore()
		store.Token.Set("opaque")
		users.On("Me", mock.Anything, mock.Anything).Return(models.User{}, &serviceerrors.StatusError{Code: 503})

		err := newTestHandler(users, store).Restore(context.Background())
		assert.ErrorIs(t, err, serviceerrors.ErrUnavailable)
		assert.Equal(t, "opaque", store.Token.Get())
	})
}

func TestLogout(t *testing.T) {
	store := state.NewStore()
	store.SignIn("tok", models.User{Id: 1, IsAdmin: true})

	newTestHandler(new(mocks.UserService), store).Logout()
	assert.False(t, store.SignedIn())
	assert.False(t, store.IsAdmin.Get())
}
