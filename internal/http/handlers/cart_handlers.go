package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/cart-tracker/internal/cart"
)

// GetCartHandler godoc
// @Summary Current cart snapshot
// @Description Items in the cart, sorted ascending by title
// @Tags cart
// @Produce json
// @Success 200 {object} CartResult
// @Failure 500 {string} string "Internal error"
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	store, err := storeFromRequest(r)
	if err != nil {
		logrus.WithError(err).Error("cart handler mounted outside cart scope")
		http.Error(w, "cart unavailable", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, cartResult(store.Items())); err != nil {
		logrus.WithError(err).Error("failed to encode cart response")
	}
}

// AddToCartHandler godoc
// @Summary Add a product to the cart
// @Description Inserts the product with quantity 1, or bumps an existing entry by 1
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddToCartRequest true "Product to add"
// @Success 200 {object} CartResult
// @Failure 400 {array} CartValidationError
// @Failure 500 {string} string "Internal error"
// @Router /cart/items [post]
func AddToCartHandler(w http.ResponseWriter, r *http.Request) {
	store, err := storeFromRequest(r)
	if err != nil {
		logrus.WithError(err).Error("cart handler mounted outside cart scope")
		http.Error(w, "cart unavailable", http.StatusInternalServerError)
		return
	}

	var req AddToCartRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateAddToCart(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	item := cart.Item{
		ID:       req.ID,
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Price:    req.Price,
	}
	if err := store.AddToCart(r.Context(), item); err != nil {
		logrus.WithError(err).WithField("id", req.ID).Error("could not add item to cart")
		http.Error(w, "could not add item to cart", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, cartResult(store.Items())); err != nil {
		logrus.WithError(err).Error("failed to encode cart response")
	}
}

// IncrementItemHandler godoc
// @Summary Increment an item's quantity
// @Description Raises the quantity by exactly 1; unknown IDs leave the cart unchanged
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} CartResult
// @Failure 500 {string} string "Internal error"
// @Router /cart/items/{id}/increment [post]
func IncrementItemHandler(w http.ResponseWriter, r *http.Request) {
	adjustItemQuantity(w, r, +1)
}

// DecrementItemHandler godoc
// @Summary Decrement an item's quantity
// @Description Lowers the quantity by 1, never below 1; unknown IDs leave the cart unchanged
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} CartResult
// @Failure 500 {string} string "Internal error"
// @Router /cart/items/{id}/decrement [post]
func DecrementItemHandler(w http.ResponseWriter, r *http.Request) {
	adjustItemQuantity(w, r, -1)
}

func adjustItemQuantity(w http.ResponseWriter, r *http.Request, delta int) {
	store, err := storeFromRequest(r)
	if err != nil {
		logrus.WithError(err).Error("cart handler mounted outside cart scope")
		http.Error(w, "cart unavailable", http.StatusInternalServerError)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}

	if delta > 0 {
		err = store.Increment(r.Context(), id)
	} else {
		err = store.Decrement(r.Context(), id)
	}
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("could not adjust item quantity")
		http.Error(w, "could not adjust item quantity", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, cartResult(store.Items())); err != nil {
		logrus.WithError(err).Error("failed to encode cart response")
	}
}
