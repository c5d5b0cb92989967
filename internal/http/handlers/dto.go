package handlers

// AddToCartRequest carries a catalog product into the cart. Quantity is not
// accepted from the client; it always starts at 1.
type AddToCartRequest struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
}

type CartItemResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CartResult struct {
	Items []CartItemResponse `json:"items"`
}

// CatalogProduct mirrors the product shape served by the catalog backend.
type CatalogProduct struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
}
