package handlers

import (
	"github.com/rogerio-castellano/cart-tracker/internal/apiclient"
)

var catalogClient *apiclient.Client

func SetCatalogClient(c *apiclient.Client) {
	catalogClient = c
}
