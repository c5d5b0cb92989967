package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/cart-tracker/docs"
	"github.com/rogerio-castellano/cart-tracker/internal/cart"
	"github.com/rogerio-castellano/cart-tracker/internal/http/handlers"
)

// NewRouter builds the cart API. Every cart route runs inside the CartScope
// middleware; handlers reached outside it fail with cart.ErrNotInScope.
func NewRouter(store *cart.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	r.Group(func(r chi.Router) {
		r.Use(CartScope(store))
		r.Get("/cart", handlers.GetCartHandler)
		r.Post("/cart/items", handlers.AddToCartHandler)
		r.Post("/cart/items/{id}/increment", handlers.IncrementItemHandler)
		r.Post("/cart/items/{id}/decrement", handlers.DecrementItemHandler)
	})

	r.Get("/catalog/products", handlers.CatalogProductsHandler)
	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
