package handlers

import (
	"strings"
)

type CartValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateAddToCart(req AddToCartRequest) []CartValidationError {
	errs := []CartValidationError{}
	if strings.TrimSpace(req.ID) == "" {
		errs = append(errs, CartValidationError{Field: "Id", Description: "Id is required"})
	}
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, CartValidationError{Field: "Title", Description: "Title is required"})
	}
	if req.Price < 0 {
		errs = append(errs, CartValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	return errs
}
