package state_test

import (
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/state"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(links []state.NavLink) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Title)
	}
	return out
}

func TestStore_NavLinks(t *testing.T) {
	s := state.NewStore()
	assert.Equal(t, []string{"Products", "Login", "Cart"}, titles(s.NavLinks()))

	s.SignIn("tok", models.User{Id: 1})
	assert.Equal(t, []string{"Products", "Favorites", "Orders", "Account", "Cart"}, titles(s.NavLinks()))

	s.SignIn("tok", models.User{Id: 1, IsAdmin: true})
	assert.Equal(t, []string{"Products", "Favorites", "Orders", "Account", "Dashboard", "Cart"}, titles(s.NavLinks()))
}

func TestStore_SignOut(t *testing.T) {
	userId := 1

	t.Run("Drops user cart", func(t *testing.T) {
		s := state.NewStore()
		s.SignIn("tok", models.User{Id: userId, IsAdmin: true})
		s.Favorites.Set([]models.Favorite{{Id: 1}})
		s.ShoppingCart.Set(models.ShoppingCart{Id: 3, UserId: &userId})

		s.SignOut()

		assert.False(t, s.SignedIn())
		assert.False(t, s.IsAdmin.Get())
		assert.Empty(t, s.Favorites.Get())
		assert.Equal(t, models.ShoppingCart{}, s.ShoppingCart.Get())
	})

	t.Run("Keeps guest cart", func(t *testing.T) {
		s := state.NewStore()
		s.ShoppingCart.Set(models.ShoppingCart{Id: 8})

		s.SignOut()

		assert.Equal(t, 8, s.ShoppingCart.Get().Id)
	})
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  1,
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	exp, ok := state.TokenExpiry(signedToken(t, now.Add(time.Hour)))
	assert.True(t, ok)
	assert.Equal(t, now.Add(time.Hour).Unix(), exp.Unix())

	_, ok = state.TokenExpiry("opaque-session-id")
	assert.False(t, ok)

	assert.NoError(t, state.CheckToken(signedToken(t, now.Add(time.Hour)), now))
	assert.ErrorIs(t, state.CheckToken(signedToken(t, now.Add(-time.Hour)), now), state.ErrTokenExpired)
	assert.NoError(t, state.CheckToken("opaque-session-id", now))
}
