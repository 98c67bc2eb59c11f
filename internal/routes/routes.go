// Package routes lists the REST endpoints the storefront talks to.
package routes

import (
	"storefront/pkg/lib/urlpath"
)

const (
	Health     = "/api/health"
	Products   = "/api/products"
	Categories = "/api/categories"
	Users      = "/api/users"
	Register   = "/api/users/register"
	Login      = "/api/users/login"
	Me         = "/api/users/me"
	Favorites  = "/api/favorites"
	GuestCart  = "/api/shopping_cart/guest"
	Checkout   = "/api/stripe/create-checkout-session"
)

// GET|PATCH /api/products/{id}
func Product(id int) string {
	return must("api", "products", urlpath.ID(id))
}

// PATCH /api/products/{id}/active
func ProductActive(id int) string {
	return must("api", "products", urlpath.ID(id), "active")
}

// GET|POST /api/images/product/{id}
func ProductImages(id int) string {
	return must("api", "images", "product", urlpath.ID(id))
}

// PATCH|DELETE /api/categories/{id}
func Category(id int) string {
	return must("api", "categories", urlpath.ID(id))
}

// GET|PATCH|DELETE /api/users/{id}
func User(id int) string {
	return must("api", "users", urlpath.ID(id))
}

// GET /api/favorites/{userId}
func UserFavorites(userId int) string {
	return must("api", "favorites", urlpath.ID(userId))
}

// DELETE /api/favorites/remove/{favoriteId}
func RemoveFavorite(favoriteId int) string {
	return must("api", "favorites", "remove", urlpath.ID(favoriteId))
}

// GET|POST|PATCH /api/shopping_cart/{id}
func ShoppingCart(id int) string {
	return must("api", "shopping_cart", urlpath.ID(id))
}

// DELETE /api/shopping_cart/products/{cartProductId}
func CartProduct(cartProductId int) string {
	return must("api", "shopping_cart", "products", urlpath.ID(cartProductId))
}

// GET /api/orders/users/{userId}
func UserOrders(userId int) string {
	return must("api", "orders", "users", urlpath.ID(userId))
}

// Segments here are constants or formatted ints, never empty.
func must(segments ...string) string {
	p, err := urlpath.Join(segments...)
	if err != nil {
		panic(err)
	}
	return p
}
