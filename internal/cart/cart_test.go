package cart

import (
	"context"
	"testing"

	"github.com/rogerio-castellano/cart-tracker/internal/kv"
)

func newTestStore(t *testing.T) (*Store, *kv.InMemoryStore) {
	t.Helper()
	backend := kv.NewInMemoryStore()
	s := NewStore(backend)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return s, backend
}

func shoe() Item {
	return Item{ID: "p1", Title: "Shoe", ImageURL: "http://img/shoe.png", Price: 10}
}

func belt() Item {
	return Item{ID: "p2", Title: "Belt", ImageURL: "http://img/belt.png", Price: 5}
}

func TestAddToCart_NewItemStartsAtOne(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.AddToCart(ctx, shoe()); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", items[0].Quantity)
	}
}

func TestAddToCart_RepeatedAddsAccumulateQuantity(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	const adds = 5
	for range adds {
		if err := s.AddToCart(ctx, shoe()); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != adds {
		t.Errorf("expected quantity %d, got %d", adds, items[0].Quantity)
	}
}

func TestAddToCart_DoubleAddScenario(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, shoe())
	s.AddToCart(ctx, shoe())

	items := s.Items()
	if len(items) != 1 || items[0].ID != "p1" || items[0].Quantity != 2 {
		t.Errorf("expected [{p1 quantity:2}], got %+v", items)
	}
}

func TestSnapshot_SortedByTitle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, shoe())
	s.AddToCart(ctx, belt())

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "Belt" || items[1].Title != "Shoe" {
		t.Errorf("expected [Belt Shoe], got [%s %s]", items[0].Title, items[1].Title)
	}
}

func TestSnapshot_SortedAfterEveryMutation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, shoe())
	s.AddToCart(ctx, belt())
	s.Increment(ctx, "p1")
	s.AddToCart(ctx, Item{ID: "p3", Title: "Anorak", Price: 99})
	s.Decrement(ctx, "p1")

	items := s.Items()
	for i := 1; i < len(items); i++ {
		if items[i-1].Title > items[i].Title {
			t.Fatalf("snapshot out of order at %d: %q > %q", i, items[i-1].Title, items[i].Title)
		}
	}
}

func TestIncrement_AddsExactlyOne(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, shoe())
	if err := s.Increment(ctx, "p1"); err != nil {
		t.Fatalf("increment failed: %v", err)
	}

	if got := s.Items()[0].Quantity; got != 2 {
		t.Errorf("expected quantity 2, got %d", got)
	}
}

func TestIncrement_UnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, shoe())
	if err := s.Increment(ctx, "missing"); err != nil {
		t.Fatalf("increment failed: %v", err)
	}

	items := s.Items()
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Errorf("expected snapshot unchanged, got %+v", items)
	}
}

func TestDecrement_NeverBelowOne(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, shoe())
	for range 3 {
		if err := s.Decrement(ctx, "p1"); err != nil {
			t.Fatalf("decrement failed: %v", err)
		}
	}

	if got := s.Items()[0].Quantity; got != 1 {
		t.Errorf("expected quantity floored at 1, got %d", got)
	}
}

func TestDecrement_UnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, shoe())
	before := s.Items()

	if err := s.Decrement(ctx, "missing"); err != nil {
		t.Fatalf("decrement failed: %v", err)
	}

	after := s.Items()
	if len(after) != len(before) || after[0] != before[0] {
		t.Errorf("expected snapshot unchanged, before %+v after %+v", before, after)
	}
}

func TestIncrementThenDecrement_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, shoe())
	s.AddToCart(ctx, shoe())

	s.Increment(ctx, "p1")
	s.Decrement(ctx, "p1")

	if got := s.Items()[0].Quantity; got != 2 {
		t.Errorf("expected quantity back at 2, got %d", got)
	}
}

func TestLoad_ReadsPersistedRecords(t *testing.T) {
	backend := kv.NewInMemoryStore()
	ctx := context.Background()
	backend.Set(ctx, "p1", `{"id":"p1","title":"Shoe","price":10,"quantity":3}`)
	backend.Set(ctx, "p2", `{"id":"p2","title":"Belt","price":5,"quantity":1}`)

	s := NewStore(backend)
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "Belt" || items[1].Title != "Shoe" {
		t.Errorf("expected [Belt Shoe], got %+v", items)
	}
	if items[1].Quantity != 3 {
		t.Errorf("expected Shoe quantity 3, got %d", items[1].Quantity)
	}
}

func TestLoad_EmptyStorePublishesEmptySnapshot(t *testing.T) {
	s, _ := newTestStore(t)

	if items := s.Items(); len(items) != 0 {
		t.Errorf("expected empty snapshot, got %+v", items)
	}
}

func TestLoad_MalformedEntryBecomesZeroRecord(t *testing.T) {
	backend := kv.NewInMemoryStore()
	ctx := context.Background()
	backend.Set(ctx, "p1", `{not json`)
	backend.Set(ctx, "p2", `{"id":"p2","title":"Belt","price":5,"quantity":1}`)

	s := NewStore(backend)
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	// zero-valued record sorts before "Belt"
	if items[0] != (Item{}) {
		t.Errorf("expected zero record for malformed entry, got %+v", items[0])
	}
}

func TestAddToCart_PersistsBeforePublishing(t *testing.T) {
	s, backend := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, shoe())

	value, err := backend.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("expected persisted record: %v", err)
	}
	if value == "" {
		t.Fatal("expected non-empty persisted record")
	}

	s2 := NewStore(backend)
	if err := s2.Load(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	items := s2.Items()
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Errorf("expected persisted quantity 1, got %+v", items)
	}
}
