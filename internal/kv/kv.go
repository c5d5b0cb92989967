package kv

import (
	"context"
	"encoding/json"
	"errors"
)

// Store defines the key-value capability the cart persists through.
// Values are JSON-encoded records; Merge performs a shallow JSON object
// merge where incoming fields win.
type Store interface {
	Keys(ctx context.Context) ([]string, error)
	GetMany(ctx context.Context, keys []string) (map[string]string, error)
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Merge(ctx context.Context, key, value string) error
}

// ErrKeyNotFound is returned when a key is absent from the store.
var ErrKeyNotFound = errors.New("key not found")

// mergeJSON merges two JSON objects one level deep. Fields in next replace
// fields in prev; either side failing to decode is treated as empty.
func mergeJSON(prev, next string) (string, error) {
	merged := map[string]json.RawMessage{}
	json.Unmarshal([]byte(prev), &merged)

	incoming := map[string]json.RawMessage{}
	json.Unmarshal([]byte(next), &incoming)
	for k, v := range incoming {
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
