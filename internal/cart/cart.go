package cart

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/rogerio-castellano/cart-tracker/internal/kv"
)

// Item represents a product held in the cart. The zero Quantity only occurs
// transiently on input; every persisted record carries Quantity >= 1.
type Item struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Store owns the in-memory cart snapshot and persists one record per item
// under its ID. Mutations are serialized: the snapshot is only republished
// after the backing write has completed.
type Store struct {
	mu    sync.Mutex
	kv    kv.Store
	items []Item
}

// NewStore creates a Store over the given key-value backend. Call Load to
// populate the snapshot from persisted records.
func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

// Load reads every persisted record and publishes the initial snapshot.
// Records that fail to decode contribute a zero-valued item.
func (s *Store) Load(ctx context.Context) error {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		return err
	}

	values, err := s.kv.GetMany(ctx, keys)
	if err != nil {
		return err
	}

	items := make([]Item, 0, len(values))
	for _, v := range values {
		var item Item
		json.Unmarshal([]byte(v), &item)
		items = append(items, item)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.publish(items)
	return nil
}

// AddToCart inserts the item with quantity 1, or bumps the quantity of an
// already-carted item by 1. The incoming item's quantity is ignored.
func (s *Store) AddToCart(ctx context.Context, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, found, err := s.fetch(ctx, item.ID)
	if err != nil {
		return err
	}

	if found {
		item.Quantity = existing.Quantity + 1
		if err := s.persistMerge(ctx, item); err != nil {
			return err
		}
	} else {
		item.Quantity = 1
		if err := s.persistSet(ctx, item); err != nil {
			return err
		}
	}

	items := s.snapshotCopy()
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	s.publish(items)
	return nil
}

// Increment raises the quantity of the identified item by 1. Unknown IDs are
// a no-op.
func (s *Store) Increment(ctx context.Context, id string) error {
	return s.adjust(ctx, id, +1)
}

// Decrement lowers the quantity of the identified item by 1, never below 1.
// Unknown IDs are a no-op.
func (s *Store) Decrement(ctx context.Context, id string) error {
	return s.adjust(ctx, id, -1)
}

func (s *Store) adjust(ctx context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, found, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if item.Quantity+delta < 1 {
		return nil
	}

	item.Quantity += delta
	if err := s.persistMerge(ctx, item); err != nil {
		return err
	}

	items := s.snapshotCopy()
	for i := range items {
		if items[i].ID == id {
			items[i] = item
			break
		}
	}
	s.publish(items)
	return nil
}

// Items returns a copy of the current snapshot, sorted ascending by title.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotCopy()
}

func (s *Store) fetch(ctx context.Context, id string) (Item, bool, error) {
	value, err := s.kv.Get(ctx, id)
	if err == kv.ErrKeyNotFound {
		return Item{}, false, nil
	}
	if err != nil {
		return Item{}, false, err
	}

	var item Item
	json.Unmarshal([]byte(value), &item)
	return item, true, nil
}

func (s *Store) persistSet(ctx context.Context, item Item) error {
	value, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, item.ID, string(value))
}

func (s *Store) persistMerge(ctx context.Context, item Item) error {
	value, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return s.kv.Merge(ctx, item.ID, string(value))
}

func (s *Store) snapshotCopy() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// publish sorts and installs the new snapshot. Callers hold s.mu.
func (s *Store) publish(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Title < items[j].Title
	})
	s.items = items
}
