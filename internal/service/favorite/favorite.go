package favoriteservice

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

const MsgAddFailed = "Failed to add favorite"

type Transport interface {
	Do(ctx context.Context, req client.Request, out any) (bool, error)
}

type FavoriteService struct {
	log       *slog.Logger
	transport Transport
}

func New(log *slog.Logger, transport Transport) *FavoriteService {
	return &FavoriteService{
		log:       log,
		transport: transport,
	}
}

// GET /api/favorites/{userId}
func (f *FavoriteService) ListByUser(ctx context.Context, params models.FavoritesParams) ([]models.Favorite, error) {
	const op = "service.favorite.ListByUser"
	log := f.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return nil, err
	}

	var favorites []models.Favorite
	if _, err := f.transport.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   routes.UserFavorites(params.UserId),
		Token:  params.Token,
	}, &favorites); err != nil {
		adapter.LogFailure(log, "Failed to list favorites", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return favorites, nil
}

// POST /api/favorites
func (f *FavoriteService) Add(ctx context.Context, params models.AddFavoriteParams) (models.Favorite, error) {
	const op = "service.favorite.Add"
	log := f.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.Favorite{}, err
	}

	body := struct {
		UserId    int `json:"userId"`
		ProductId int `json:"productId"`
	}{
		UserId:    params.UserId,
		ProductId: params.ProductId,
	}

	var favorite models.Favorite
	empty, err := f.transport.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   routes.Favorites,
		Token:  params.Token,
		Body:   body,
	}, &favorite)
	if err != nil {
		adapter.LogFailure(log, MsgAddFailed, err)
		return models.Favorite{}, fmt.Errorf("%s: %w", op, err)
	}
	if empty || favorite.Id == 0 {
		log.Warn("Add returned no favorite", "product_id", params.ProductId)
		return models.Favorite{}, fmt.Errorf("%s: %w", op, serviceerrors.NewBusinessError(MsgAddFailed, nil))
	}

	return favorite, nil
}

// Remove deletes by favorite id, not product id.
// DELETE /api/favorites/remove/{favoriteId}
func (f *FavoriteService) Remove(ctx context.Context, params models.RemoveFavoriteParams) (models.Favorite, error) {
	const op = "service.favorite.Remove"
	log := f.log.With("op", op)

	if err := adapter.Validate(op, params); err != nil {
		return models.Favorite{}, err
	}

	var favorite models.Favorite
	if _, err := f.transport.Do(ctx, client.Request{
		Method: http.MethodDelete,
		Path:   routes.RemoveFavorite(params.FavoriteId),
		Token:  params.Token,
	}, &favorite); err != nil {
		adapter.LogFailure(log, "Failed to remove favorite", err)
		return models.Favorite{}, fmt.Errorf("%s: %w", op, err)
	}

	return favorite, nil
}
