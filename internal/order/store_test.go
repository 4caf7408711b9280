package order

import (
	"context"
	"strings"
	"testing"
	"time"

	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	value, ok := f.data[key]
	if !ok {
		return "", goredis.Nil
	}
	return value, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeKV) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeKV) OrdersKey() string           { return "cantina:orders" }
func (f *fakeKV) OrderHistoryKey() string     { return "cantina:orderHistory" }
func (f *fakeKV) CatalogKey(...string) string { return "cantina:catalog" }

func newTestStore(t *testing.T) (*Store, *fakeKV) {
	t.Helper()
	kv := newFakeKV()
	store, err := NewStore(kv)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	store.now = fixedClock(1700000000000)
	return store, kv
}

func TestStoreAppendAndList(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	orders, err := store.ListActive(ctx)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty ledger, got %d", len(orders))
	}

	order := store.NewOrder([]LineItem{{ID: "order_1_1", Name: "Copa Tequila", Price: 120}}, 120)
	if order.ID != 1700000000000 {
		t.Fatalf("unexpected order id %d", order.ID)
	}
	if !strings.Contains(order.Date, ", ") {
		t.Fatalf("expected formatted date, got %q", order.Date)
	}

	if err := store.Append(ctx, order); err != nil {
		t.Fatalf("append: %v", err)
	}

	orders, err = store.ListActive(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 || orders[0].Total != 120 {
		t.Fatalf("unexpected ledger %+v", orders)
	}
	if orders[0].Items[0].Name != "Copa Tequila" {
		t.Fatalf("items must round-trip, got %+v", orders[0].Items)
	}
}

func TestStoreDeleteMovesToHistory(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	order := store.NewOrder(nil, 50)
	if err := store.Append(ctx, order); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := store.Delete(ctx, order.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	active, err := store.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected empty active ledger, got %d", len(active))
	}

	history, err := store.ListHistory(ctx)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	if history[0].DeletedAt == "" {
		t.Fatalf("expected deletion stamp")
	}
}

func TestStoreDeleteUnknownOrder(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	err := store.Delete(ctx, 42)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStoreHistoryOperations(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	first := store.NewOrder(nil, 10)
	second := PersistedOrder{ID: first.ID + 1, Total: 20, Date: first.Date}
	for _, order := range []PersistedOrder{first, second} {
		if err := store.Append(ctx, order); err != nil {
			t.Fatalf("append: %v", err)
		}
		if err := store.Delete(ctx, order.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
	}

	if err := store.DeleteFromHistory(ctx, first.ID); err != nil {
		t.Fatalf("delete from history: %v", err)
	}
	history, err := store.ListHistory(ctx)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(history) != 1 || history[0].ID != second.ID {
		t.Fatalf("unexpected history %+v", history)
	}

	if err := store.ClearHistory(ctx); err != nil {
		t.Fatalf("clear history: %v", err)
	}
	history, err = store.ListHistory(ctx)
	if err != nil {
		t.Fatalf("list cleared history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected cleared history, got %+v", history)
	}
}
