package favorites_test

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/handlers"
	"storefront/internal/handlers/favorites"
	"storefront/internal/handlers/favorites/mocks"
	"storefront/internal/models"
	serviceerrors "storefront/internal/service"
	favoriteservice "storefront/internal/service/favorite"
	"storefront/internal/service/servicetest"
	"storefront/internal/state"
	"storefront/pkg/lib/logger/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signedInStore() *state.Store {
	store := state.NewStore()
	store.SignIn("tok", models.User{Id: 2})
	return store
}

func TestRemove_AgainstServer(t *testing.T) {
	srv := servicetest.NewServer(t, http.StatusOK, `{"id":1}`)
	log := slogdiscard.NewDiscardLogger()

	store := signedInStore()
	store.Favorites.Set([]models.Favorite{{Id: 1, ProductId: 10}, {Id: 2, ProductId: 20}})

	h := favorites.New(log, favoriteservice.New(log, srv.Client()), new(mocks.CartService), store)
	require.NoError(t, h.Remove(context.Background(), 1))

	assert.Equal(t, []models.Favorite{{Id: 2, ProductId: 20}}, store.Favorites.Get())

	calls := srv.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodDelete, calls[0].Method)
	assert.Equal(t, "/api/favorites/remove/1", calls[0].Path)
	assert.Equal(t, "Bearer tok", calls[0].Authorization)
}

func TestRemove(t *testing.T) {
	initial := []models.Favorite{{Id: 1}, {Id: 2}}

	tests := []struct {
		name      string
		err       error
		wantList  []models.Favorite
		wantAlert string
	}{
		{
			name:     "Success filters locally",
			wantList: []models.Favorite{{Id: 2}},
		},
		{
			name:     "Unavailable keeps list",
			err:      &serviceerrors.StatusError{Code: 500},
			wantList: initial,
		},
		{
			name:      "Business error is surfaced",
			err:       serviceerrors.NewBusinessError("Could not remove favorite", nil),
			wantList:  initial,
			wantAlert: "Could not remove favorite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.FavoriteService)
			svc.On("Remove", mock.Anything, models.RemoveFavoriteParams{Token: "tok", FavoriteId: 1}).
				Return(models.Favorite{}, tt.err)

			store := signedInStore()
			store.Favorites.Set(initial)

			h := favorites.New(slogdiscard.NewDiscardLogger(), svc, new(mocks.CartService), store)
			err := h.Remove(context.Background(), 1)

			if tt.err != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantList, store.Favorites.Get())
			assert.Equal(t, tt.wantAlert, store.Alert.Get())
			svc.AssertExpectations(t)
		})
	}
}

func TestRemove_SignedOut(t *testing.T) {
	svc := new(mocks.FavoriteService)
	h := favorites.New(slogdiscard.NewDiscardLogger(), svc, new(mocks.CartService), state.NewStore())

	err := h.Remove(context.Background(), 1)
	assert.ErrorIs(t, err, handlers.ErrSignedOut)
	svc.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestLoad(t *testing.T) {
	t.Run("Signed in", func(t *testing.T) {
		svc := new(mocks.FavoriteService)
		svc.On("ListByUser", mock.Anything, models.FavoritesParams{Token: "tok", UserId: 2}).
			Return([]models.Favorite{{Id: 5}}, nil)

		store := signedInStore()
		h := favorites.New(slogdiscard.NewDiscardLogger(), svc, new(mocks.CartService), store)

		require.NoError(t, h.Load(context.Background()))
		assert.Equal(t, []models.Favorite{{Id: 5}}, store.Favorites.Get())
	})

	t.Run("Unavailable shows empty state", func(t *testing.T) {
		svc := new(mocks.FavoriteService)
		svc.On("ListByUser", mock.Anything, mock.Anything).
			Return([]models.Favorite(nil), &serviceerrors.StatusError{Code: 502})

		store := signedInStore()
		store.Favorites.Set([]models.Favorite{{Id: 9}})
		h := favorites.New(slogdiscard.NewDiscardLogger(), svc, new(mocks.CartService), store)

		assert.Error(t, h.Load(context.Background()))
		assert.Empty(t, store.Favorites.Get())
		assert.Empty(t, store.Alert.Get())
	})

	t.Run("Guest", func(t *testing.T) {
		svc := new(mocks.FavoriteService)
		store := state.NewStore()
		h := favorites.New(slogdiscard.NewDiscardLogger(), svc, new(mocks.CartService), store)

		require.NoError(t, h.Load(context.Background()))
		assert.Empty(t, store.Favorites.Get())
		svc.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	})

	t.Run("Result after unmount is discarded", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		svc := new(mocks.FavoriteService)
		svc.On("ListByUser", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { cancel() }).
			Return([]models.Favorite{{Id: 5}}, nil)

		store := signedInStore()
		store.Favorites.Set([]models.Favorite{{Id: 1}})
		h := favorites.New(slogdiscard.NewDiscardLogger(), svc, new(mocks.CartService), store)

		assert.ErrorIs(t, h.Load(ctx), context.Canceled)
		assert.Equal(t, []models.Favorite{{Id: 1}}, store.Favorites.Get())
	})
}

func TestAdd(t *testing.T) {
	svc := new(mocks.FavoriteService)
	svc.On("Add", mock.Anything, models.AddFavoriteParams{Token: "tok", UserId: 2, ProductId: 7}).
		Return(models.Favorite{Id: 3, ProductId: 7}, nil)

	store := signedInStore()
	store.Favorites.Set([]models.Favorite{{Id: 1}})
	h := favorites.New(slogdiscard.NewDiscardLogger(), svc, new(mocks.CartService), store)

	require.NoError(t, h.Add(context.Background(), 7))
	assert.Equal(t, []models.Favorite{{Id: 1}, {Id: 3, ProductId: 7}}, store.Favorites.Get())
}

func TestAdd_EmptyResponseNotAppended(t *testing.T) {
	srv := servicetest.NewServer(t, http.StatusOK, "")
	log := slogdiscard.NewDiscardLogger()

	store := signedInStore()
	store.Favorites.Set([]models.Favorite{{Id: 1, ProductId: 5}})

	h := favorites.New(log, favoriteservice.New(log, srv.Client()), new(mocks.CartService), store)
	err := h.Add(context.Background(), 7)

	assert.Equal(t, serviceerrors.KindBusiness, serviceerrors.KindOf(err))
	assert.Equal(t, []models.Favorite{{Id: 1, ProductId: 5}}, store.Favorites.Get())
	assert.Equal(t, favoriteservice.MsgAddFailed, store.Alert.Get())
	require.Len(t, srv.Calls(), 1)
}

func TestSessionNotRestored(t *testing.T) {
	svc := new(mocks.FavoriteService)
	store := state.NewStore()
	store.Token.Set("tok")
	store.Favorites.Set([]models.Favorite{{Id: 1}})

	h := favorites.New(slogdiscard.NewDiscardLogger(), svc, new(mocks.CartService), store)

	assert.ErrorIs(t, h.Load(context.Background()), handlers.ErrNotRestored)
	assert.Empty(t, store.Favorites.Get())
	assert.ErrorIs(t, h.Add(context.Background(), 7), handlers.ErrNotRestored)
	svc.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestMessage(t *testing.T) {
	store := signedInStore()
	h := favorites.New(slogdiscard.NewDiscardLogger(), new(mocks.FavoriteService), new(mocks.CartService), store)

	assert.Equal(t, "No Favorites! Go Heart Something!", h.Message())

	store.Favorites.Set([]models.Favorite{{Id: 1}})
	assert.Empty(t, h.Message())
}

func TestAddToCart(t *testing.T) {
	t.Run("Uses active cart and quantity one", func(t *testing.T) {
		cartSvc := new(mocks.CartService)
		cartSvc.On("AddProduct", mock.Anything, models.AddToCartParams{Token: "tok", ShoppingId: 4, ProductId: 7, Quantity: 1}).
			Return(models.ShoppingCart{Id: 4, Products: []models.CartProduct{{ProductId: 7, Quantity: 1}}}, nil)

		store := signedInStore()
		store.ShoppingCart.Set(models.ShoppingCart{Id: 4})
		h := favorites.New(slogdiscard.NewDiscardLogger(), new(mocks.FavoriteService), cartSvc, store)

		require.NoError(t, h.AddToCart(context.Background(), 7))
		assert.Len(t, store.ShoppingCart.Get().Products, 1)
		cartSvc.AssertExpectations(t)
	})

	t.Run("No cart", func(t *testing.T) {
		cartSvc := new(mocks.CartService)
		h := favorites.New(slogdiscard.NewDiscardLogger(), new(mocks.FavoriteService), cartSvc, signedInStore())

		assert.ErrorIs(t, h.AddToCart(context.Background(), 7), handlers.ErrNoCart)
		cartSvc.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
	})
}

func TestWithout(t *testing.T) {
	list := []models.Favorite{{Id: 1}, {Id: 2}}
	assert.Equal(t, []models.Favorite{{Id: 2}}, favorites.Without(list, 1))
	assert.Len(t, list, 2)
}
