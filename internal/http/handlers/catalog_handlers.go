package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// CatalogProductsHandler godoc
// @Summary List catalog products
// @Description Proxies the product list from the configured catalog backend
// @Tags catalog
// @Produce json
// @Success 200 {array} CatalogProduct
// @Failure 502 {string} string "Catalog unavailable"
// @Router /catalog/products [get]
func CatalogProductsHandler(w http.ResponseWriter, r *http.Request) {
	if catalogClient == nil {
		http.Error(w, "catalog not configured", http.StatusServiceUnavailable)
		return
	}

	var products []CatalogProduct
	if err := catalogClient.GetJSON(r.Context(), "/products", &products); err != nil {
		logrus.WithError(err).Error("catalog request failed")
		http.Error(w, "could not fetch catalog", http.StatusBadGateway)
		return
	}

	if err := writeJSON(w, http.StatusOK, products); err != nil {
		logrus.WithError(err).Error("failed to encode catalog response")
	}
}
