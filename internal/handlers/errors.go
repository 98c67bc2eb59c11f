package handlers

import (
	"errors"

	serviceerrors "storefront/internal/service"
	"storefront/internal/state"
)

var (
	ErrSignedOut = errors.New("sign in required")
	ErrForbidden = errors.New("admin only")
	ErrNoCart    = errors.New("no active shopping cart")

	// ErrNotRestored means a token is held but the user behind it was never loaded.
	ErrNotRestored = errors.New("session not restored")
)

// Surface shows business failures to the user through the alert slice.
// Unavailable data is left to render as an empty state.
func Surface(store *state.Store, err error) error {
	if msg := serviceerrors.UserMessage(err); msg != "" {
		store.Alert.Set(msg)
	}
	return err
}
