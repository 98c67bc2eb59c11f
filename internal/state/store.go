package state

import (
	"errors"
	"time"

	"storefront/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Store is the state shared by every view. An empty Token means a guest.
type Store struct {
	Token        *Atom[string]
	User         *Atom[models.User]
	IsAdmin      *Atom[bool]
	Favorites    *Atom[[]models.Favorite]
	ShoppingCart *Atom[models.ShoppingCart]
	// Alert holds the last message to show the user; "" hides it.
	Alert *Atom[string]
}

func NewStore() *Store {
	return &Store{
		Token:        NewAtom(""),
		User:         NewAtom(models.User{}),
		IsAdmin:      NewAtom(false),
		Favorites:    NewAtom([]models.Favorite{}),
		ShoppingCart: NewAtom(models.ShoppingCart{}),
		Alert:        NewAtom(""),
	}
}

func (s *Store) SignedIn() bool {
	return s.Token.Get() != ""
}

// SignIn stores a session. The admin flag always follows the user record.
func (s *Store) SignIn(token string, user models.User) {
	s.Token.Set(token)
	s.User.Set(user)
	s.IsAdmin.Set(user.IsAdmin)
}

// SignOut drops everything tied to the account. The cart is kept only if it
// is a guest cart.
func (s *Store) SignOut() {
	s.Token.Set("")
	s.User.Set(models.User{})
	s.IsAdmin.Set(false)
	s.Favorites.Set([]models.Favorite{})
	s.ShoppingCart.Update(func(c models.ShoppingCart) models.ShoppingCart {
		if c.IsGuest() {
			return c
		}
		return models.ShoppingCart{}
	})
}

type NavLink struct {
	Title string
	Path  string
}

// NavLinks lists the navigation entries visible for the current session.
func (s *Store) NavLinks() []NavLink {
	links := []NavLink{{Title: "Products", Path: "/products"}}

	if s.SignedIn() {
		links = append(links,
			NavLink{Title: "Favorites", Path: "/favorites"},
			NavLink{Title: "Orders", Path: "/order-history"},
			NavLink{Title: "Account", Path: "/account"},
		)
		if s.IsAdmin.Get() {
			links = append(links, NavLink{Title: "Dashboard", Path: "/dashboard"})
		}
	} else {
		links = append(links, NavLink{Title: "Login", Path: "/login"})
	}

	return append(links, NavLink{Title: "Cart", Path: "/cart"})
}

// TokenExpiry reads the exp claim without verifying the signature; the
// server remains the authority. Opaque tokens report ok=false.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

var ErrTokenExpired = errors.New("session token expired")

// CheckToken fails for a JWT whose exp is before now.
func CheckToken(token string, now time.Time) error {
	exp, ok := TokenExpiry(token)
	if ok && !now.Before(exp) {
		return ErrTokenExpired
	}
	return nil
}
