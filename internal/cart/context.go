package cart

import (
	"context"
	"errors"
)

type contextKey string

const storeKey = contextKey("cart_store")

// ErrNotInScope is returned when FromContext is called on a context that was
// never passed through WithStore. It indicates a wiring bug, not a runtime
// condition.
var ErrNotInScope = errors.New("cart: store accessed outside its provider scope")

// WithStore returns a context carrying the cart store handle.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey, s)
}

// FromContext retrieves the cart store installed by WithStore.
func FromContext(ctx context.Context) (*Store, error) {
	s, ok := ctx.Value(storeKey).(*Store)
	if !ok {
		return nil, ErrNotInScope
	}
	return s, nil
}
