package favorites

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/handlers"
	"storefront/internal/models"
	"storefront/internal/state"
	"storefront/pkg/lib/logger/sl"
)

const EmptyMessage = "No Favorites! Go Heart Something!"

type FavoriteService interface {
	ListByUser(ctx context.Context, params models.FavoritesParams) ([]models.Favorite, error)
	Add(ctx context.Context, params models.AddFavoriteParams) (models.Favorite, error)
	Remove(ctx context.Context, params models.RemoveFavoriteParams) (models.Favorite, error)
}

type CartService interface {
	AddProduct(ctx context.Context, params models.AddToCartParams) (models.ShoppingCart, error)
}

type Handler struct {
	log       *slog.Logger
	favorites FavoriteService
	cart      CartService
	store     *state.Store
}

func New(log *slog.Logger, favorites FavoriteService, cart CartService, store *state.Store) *Handler {
	return &Handler{
		log:       log,
		favorites: favorites,
		cart:      cart,
		store:     store,
	}
}

// Load replaces the favorites slice with the server's list. When the list
// is unavailable the slice is emptied.
func (h *Handler) Load(ctx context.Context) error {
	const op = "handlers.favorites.Load"
	log := h.log.With("op", op)

	if !h.store.SignedIn() {
		h.store.Favorites.Set([]models.Favorite{})
		return nil
	}
	if h.store.User.Get().Id == 0 {
		h.store.Favorites.Set([]models.Favorite{})
		return fmt.Errorf("%s: %w", op, handlers.ErrNotRestored)
	}

	ticket := h.store.Favorites.Begin()
	list, err := h.favorites.ListByUser(ctx, models.FavoritesParams{
		Token:  h.store.Token.Get(),
		UserId: h.store.User.Get().Id,
	})
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
	if err != nil {
		log.Warn("Favorites unavailable", sl.Err(err))
		h.store.Favorites.Commit(ticket, []models.Favorite{})
		return fmt.Errorf("%s: %w", op, handlers.Surface(h.store, err))
	}

	if list == nil {
		list = []models.Favorite{}
	}
	h.store.Favorites.Commit(ticket, list)

	return nil
}

func (h *Handler) Add(ctx context.Context, productId int) error {
	const op = "handlers.favorites.Add"
	log := h.log.With("op", op)

	if !h.store.SignedIn() {
		return fmt.Errorf("%s: %w", op, handlers.ErrSignedOut)
	}
	if h.store.User.Get().Id == 0 {
		return fmt.Errorf("%s: %w", op, handlers.ErrNotRestored)
	}

	favorite, err := h.favorites.Add(ctx, models.AddFavoriteParams{
		Token:     h.store.Token.Get(),
		UserId:    h.store.User.Get().Id,
		ProductId: productId,
	})
	if err != nil {
		log.Warn("Failed to add favorite", sl.Err(err))
		return fmt.Errorf("%s: %w", op, handlers.Surface(h.store, err))
	}
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}

	h.store.Favorites.Update(func(list []models.Favorite) []models.Favorite {
		out := make([]models.Favorite, 0, len(list)+1)
		out = append(out, list...)
		return append(out, favorite)
	})

	return nil
}

// Remove deletes a favorite and, only once the server confirmed it, drops
// it from the local list without refetching.
func (h *Handler) Remove(ctx context.Context, favoriteId int) error {
	const op = "handlers.favorites.Remove"
	log := h.log.With("op", op)

	if !h.store.SignedIn() {
		return fmt.Errorf("%s: %w", op, handlers.ErrSignedOut)
	}

	if _, err := h.favorites.Remove(ctx, models.RemoveFavoriteParams{
		Token:      h.store.Token.Get(),
		FavoriteId: favoriteId,
	}); err != nil {
		log.Warn("Failed to remove favorite", sl.Err(err), "favorite_id", favoriteId)
		return fmt.Errorf("%s: %w", op, handlers.Surface(h.store, err))
	}
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}

	h.store.Favorites.Update(func(list []models.Favorite) []models.Favorite {
		return Without(list, favoriteId)
	})

	return nil
}

// AddToCart puts one unit of the product into the active cart.
func (h *Handler) AddToCart(ctx context.Context, productId int) error {
	const op = "handlers.favorites.AddToCart"
	log := h.log.With("op", op)

	cartId := h.store.ShoppingCart.Get().Id
	if cartId == 0 {
		return fmt.Errorf("%s: %w", op, handlers.ErrNoCart)
	}

	ticket := h.store.ShoppingCart.Begin()
	cart, err := h.cart.AddProduct(ctx, models.AddToCartParams{
		Token:      h.store.Token.Get(),
		ShoppingId: cartId,
		ProductId:  productId,
		Quantity:   1,
	})
	if err != nil {
		log.Warn("Failed to add favorite to cart", sl.Err(err))
		return fmt.Errorf("%s: %w", op, handlers.Surface(h.store, err))
	}
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}

	h.store.ShoppingCart.Commit(ticket, cart)

	return nil
}

// Message is the empty-state text for the favorites view, or "" when the
// list has entries.
func (h *Handler) Message() string {
	if len(h.store.Favorites.Get()) == 0 {
		return EmptyMessage
	}
	return ""
}

// Without returns a copy of list minus the favorite with the given id.
func Without(list []models.Favorite, favoriteId int) []models.Favorite {
	out := make([]models.Favorite, 0, len(list))
	for _, f := range list {
		if f.Id != favoriteId {
			out = append(out, f)
		}
	}
	return out
}
