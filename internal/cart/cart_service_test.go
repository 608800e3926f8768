package cart_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go-garment-store/internal/backend"
	"go-garment-store/internal/cart"
	"go-garment-store/internal/storage"

	"github.com/stretchr/testify/assert"
)

// ==================== FAKE BACKEND ====================

type fakeBackend struct {
	OrderItemListFn   func(ctx context.Context, token string) ([]backend.OrderItemRow, error)
	AddOrderItemFn    func(ctx context.Context, token string, req backend.AddItemRequest) error
	AddQuantityFn     func(ctx context.Context, token, orderID string, quantity int) error
	RemoveOrderItemFn func(ctx context.Context, token, orderID string) error
}

func (f *fakeBackend) OrderItemList(ctx context.Context, token string) ([]backend.OrderItemRow, error) {
	if f.OrderItemListFn == nil {
		return nil, nil
	}
	return f.OrderItemListFn(ctx, token)
}
func (f *fakeBackend) AddOrderItem(ctx context.Context, token string, req backend.AddItemRequest) error {
	if f.AddOrderItemFn == nil {
		return nil
	}
	return f.AddOrderItemFn(ctx, token, req)
}
func (f *fakeBackend) AddQuantity(ctx context.Context, token, orderID string, quantity int) error {
	if f.AddQuantityFn == nil {
		return nil
	}
	return f.AddQuantityFn(ctx, token, orderID, quantity)
}
func (f *fakeBackend) RemoveOrderItem(ctx context.Context, token, orderID string) error {
	if f.RemoveOrderItemFn == nil {
		return nil
	}
	return f.RemoveOrderItemFn(ctx, token, orderID)
}

func newCartService(b cart.Backend, store storage.Store) cart.Service {
	return cart.NewService(b, store, nil, nil)
}

// seedGuestCart mengisi cart tamu lewat jalur AddItem biasa.
func seedGuestCart(t *testing.T, svc cart.Service, sess cart.Session, n int, price string) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.AddItem(context.Background(), sess, cart.AddItemRequest{
			Name:     "Kaos Polos",
			Price:    price,
			Quantity: 1,
		})
		assert.NoError(t, err)
	}
}

// ==================== TEST CASES ====================

func TestCartService_Reconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("success_authenticated_server_cart_wins", func(t *testing.T) {
		store := storage.NewMemory()
		be := &fakeBackend{}
		svc := newCartService(be, store)
		sess := cart.Session{ID: "user-1", Token: "tok"}

		// Dua item lokal yang seharusnya kalah oleh list server.
		guest := cart.Session{ID: "user-1"}
		seedGuestCart(t, svc, guest, 2, "150000")

		be.OrderItemListFn = func(ctx context.Context, token string) ([]backend.OrderItemRow, error) {
			assert.Equal(t, "tok", token)
			return []backend.OrderItemRow{
				{
					OrderID:  json.Number("11"),
					Name:     "Kemeja Flanel",
					Price:    backend.FlexString("Rp 200.000"),
					Quantity: 1,
				},
			}, nil
		}

		view, err := svc.Reconcile(ctx, sess)
		assert.NoError(t, err)
		assert.Len(t, view.Items, 1)
		assert.Equal(t, "backend-11", view.Items[0].CartID)
		assert.Equal(t, int64(200000), view.Items[0].Price)
		assert.Equal(t, int64(200000), view.Total)
		assert.True(t, view.Selection["backend-11"])
	})

	t.Run("success_guest_uses_local_cart", func(t *testing.T) {
		store := storage.NewMemory()
		svc := newCartService(&fakeBackend{}, store)
		sess := cart.Session{ID: "guest-1"}

		seedGuestCart(t, svc, sess, 2, "150000")

		view, err := svc.Reconcile(ctx, sess)
		assert.NoError(t, err)
		assert.Len(t, view.Items, 2)
		assert.Equal(t, int64(300000), view.Total)
		for _, it := range view.Items {
			assert.True(t, strings.HasPrefix(it.CartID, "local-"))
			assert.True(t, view.Selection[it.CartID])
		}
	})

	t.Run("success_fetch_failure_falls_back_to_local", func(t *testing.T) {
		store := storage.NewMemory()
		be := &fakeBackend{
			OrderItemListFn: func(ctx context.Context, token string) ([]backend.OrderItemRow, error) {
				return nil, errors.New("upstream down")
			},
		}
		svc := newCartService(be, store)
		sess := cart.Session{ID: "user-2", Token: "tok"}

		seedGuestCart(t, svc, cart.Session{ID: "user-2"}, 1, "50000")

		// Kegagalan fetch tidak boleh jadi error untuk user.
		view, err := svc.Reconcile(ctx, sess)
		assert.NoError(t, err)
		assert.Len(t, view.Items, 1)
		assert.Equal(t, int64(50000), view.Total)
	})

	t.Run("success_row_without_id_gets_temp_prefix", func(t *testing.T) {
		be := &fakeBackend{
			OrderItemListFn: func(ctx context.Context, token string) ([]backend.OrderItemRow, error) {
				return []backend.OrderItemRow{
					{Name: "Jaket", Price: backend.FlexString("100000"), Quantity: 1},
					{OrderID: json.Number("5"), Name: "Topi", Price: backend.FlexString("25000"), Quantity: 2},
				}, nil
			},
		}
		svc := newCartService(be, storage.NewMemory())

		view, err := svc.Reconcile(ctx, cart.Session{ID: "user-3", Token: "tok"})
		assert.NoError(t, err)
		assert.Equal(t, "backend-temp-0", view.Items[0].CartID)
		assert.Equal(t, "backend-5", view.Items[1].CartID)
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("success_guest_appends_local_item", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())
		sess := cart.Session{ID: "guest-2"}

		view, err := svc.AddItem(ctx, sess, cart.AddItemRequest{
			Name:     "Celana Chino",
			Price:    "Rp 175.000",
			Quantity: 2,
		})
		assert.NoError(t, err)
		assert.Len(t, view.Items, 1)
		assert.True(t, strings.HasPrefix(view.Items[0].CartID, "local-"))
		assert.Equal(t, int64(175000), view.Items[0].Price)
		assert.Equal(t, int64(350000), view.Total)
	})

	t.Run("success_authenticated_delegates_to_backend", func(t *testing.T) {
		added := false
		be := &fakeBackend{
			AddOrderItemFn: func(ctx context.Context, token string, req backend.AddItemRequest) error {
				added = true
				assert.Equal(t, "cat-9", req.CatalogID)
				assert.Equal(t, 3, req.Quantity)
				return nil
			},
			OrderItemListFn: func(ctx context.Context, token string) ([]backend.OrderItemRow, error) {
				return []backend.OrderItemRow{
					{OrderID: json.Number("77"), Name: "Hoodie", Price: backend.FlexString("300000"), Quantity: 3},
				}, nil
			},
		}
		svc := newCartService(be, storage.NewMemory())

		view, err := svc.AddItem(ctx, cart.Session{ID: "user-4", Token: "tok"}, cart.AddItemRequest{
			CatalogID: "cat-9",
			Quantity:  3,
		})
		assert.NoError(t, err)
		assert.True(t, added)
		assert.Len(t, view.Items, 1)
		assert.Equal(t, "backend-77", view.Items[0].CartID)
	})

	t.Run("error_zero_quantity", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())

		_, err := svc.AddItem(ctx, cart.Session{ID: "guest-3"}, cart.AddItemRequest{
			Name:  "Kaos",
			Price: "10000",
		})
		assert.Error(t, err)
		assert.ErrorIs(t, err, cart.ErrInvalidQty)
	})
}

func TestCartService_SetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("success_local_item_persists", func(t *testing.T) {
		store := storage.NewMemory()
		svc := newCartService(&fakeBackend{}, store)
		sess := cart.Session{ID: "guest-4"}
		seedGuestCart(t, svc, sess, 1, "20000")

		view, _ := svc.Reconcile(ctx, sess)
		cartID := view.Items[0].CartID

		view, err := svc.SetQuantity(ctx, sess, cartID, cart.SetQuantityRequest{Quantity: 5})
		assert.NoError(t, err)
		assert.Equal(t, 5, view.Items[0].Quantity)

		// Harus selamat dari reload.
		view, _ = svc.Reconcile(ctx, sess)
		assert.Equal(t, 5, view.Items[0].Quantity)
	})

	t.Run("success_remote_failure_keeps_optimistic_view", func(t *testing.T) {
		be := &fakeBackend{
			OrderItemListFn: func(ctx context.Context, token string) ([]backend.OrderItemRow, error) {
				return []backend.OrderItemRow{
					{OrderID: json.Number("3"), Name: "Sweater", Price: backend.FlexString("90000"), Quantity: 1},
				}, nil
			},
			AddQuantityFn: func(ctx context.Context, token, orderID string, quantity int) error {
				return errors.New("timeout")
			},
		}
		svc := newCartService(be, storage.NewMemory())

		view, err := svc.SetQuantity(ctx, cart.Session{ID: "user-5", Token: "tok"}, "backend-3", cart.SetQuantityRequest{Quantity: 4})
		assert.NoError(t, err)
		assert.Equal(t, 4, view.Items[0].Quantity)
	})

	t.Run("error_item_not_found", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())

		_, err := svc.SetQuantity(ctx, cart.Session{ID: "guest-5"}, "local-nope", cart.SetQuantityRequest{Quantity: 2})
		assert.ErrorIs(t, err, cart.ErrItemNotFound)
	})
}

func TestCartService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("success_selection_key_dropped_with_item", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())
		sess := cart.Session{ID: "guest-6"}
		seedGuestCart(t, svc, sess, 2, "10000")

		view, _ := svc.Reconcile(ctx, sess)
		victim := view.Items[0].CartID

		view, err := svc.Remove(ctx, sess, victim)
		assert.NoError(t, err)
		assert.Len(t, view.Items, 1)
		_, orphan := view.Selection[victim]
		assert.False(t, orphan)
	})

	t.Run("success_backend_item_removed_remotely", func(t *testing.T) {
		removed := ""
		be := &fakeBackend{
			OrderItemListFn: func(ctx context.Context, token string) ([]backend.OrderItemRow, error) {
				return []backend.OrderItemRow{
					{OrderID: json.Number("21"), Name: "Rok", Price: backend.FlexString("80000"), Quantity: 1},
				}, nil
			},
			RemoveOrderItemFn: func(ctx context.Context, token, orderID string) error {
				removed = orderID
				return nil
			},
		}
		svc := newCartService(be, storage.NewMemory())

		view, err := svc.Remove(ctx, cart.Session{ID: "user-6", Token: "tok"}, "backend-21")
		assert.NoError(t, err)
		assert.Equal(t, "21", removed)
		assert.Empty(t, view.Items)
	})

	t.Run("error_item_not_found", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())
		_, err := svc.Remove(ctx, cart.Session{ID: "guest-7"}, "backend-404")
		assert.ErrorIs(t, err, cart.ErrItemNotFound)
	})
}

func TestCartService_Selection(t *testing.T) {
	ctx := context.Background()

	t.Run("success_total_counts_selected_only", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())
		sess := cart.Session{ID: "guest-8"}
		seedGuestCart(t, svc, sess, 3, "10000")

		view, _ := svc.Reconcile(ctx, sess)
		assert.Equal(t, int64(30000), view.Total)

		view, err := svc.Select(ctx, sess, view.Items[0].CartID, false)
		assert.NoError(t, err)
		assert.Equal(t, int64(20000), view.Total)
	})

	t.Run("success_select_all_off_zeroes_total", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())
		sess := cart.Session{ID: "guest-9"}
		seedGuestCart(t, svc, sess, 2, "15000")

		view, err := svc.SelectAll(ctx, sess, false)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), view.Total)
		assert.Len(t, view.Items, 2)
	})

	t.Run("success_view_keeps_persisted_selection", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())
		sess := cart.Session{ID: "guest-15"}
		seedGuestCart(t, svc, sess, 2, "15000")

		view, _ := svc.Reconcile(ctx, sess)
		deselected := view.Items[0].CartID
		_, err := svc.Select(ctx, sess, deselected, false)
		assert.NoError(t, err)

		view, err = svc.View(ctx, sess)
		assert.NoError(t, err)
		assert.False(t, view.Selection[deselected])
		assert.Equal(t, int64(15000), view.Total)
	})

	t.Run("success_reconcile_resets_selection", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())
		sess := cart.Session{ID: "guest-10"}
		seedGuestCart(t, svc, sess, 2, "15000")

		_, err := svc.SelectAll(ctx, sess, false)
		assert.NoError(t, err)

		view, err := svc.Reconcile(ctx, sess)
		assert.NoError(t, err)
		assert.Equal(t, int64(30000), view.Total)
	})

	t.Run("error_select_unknown_item", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())
		_, err := svc.Select(ctx, cart.Session{ID: "guest-11"}, "local-x", true)
		assert.ErrorIs(t, err, cart.ErrItemNotFound)
	})
}

func TestCartService_RemoveLocalItems(t *testing.T) {
	ctx := context.Background()

	t.Run("success_drops_local_only", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())
		sess := cart.Session{ID: "guest-12"}
		seedGuestCart(t, svc, sess, 2, "10000")

		view, _ := svc.Reconcile(ctx, sess)
		ids := []string{view.Items[0].CartID, "backend-99"}

		err := svc.RemoveLocalItems(ctx, sess, ids)
		assert.NoError(t, err)

		view, _ = svc.Reconcile(ctx, sess)
		assert.Len(t, view.Items, 1)
	})

	t.Run("success_noop_without_local_ids", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())
		sess := cart.Session{ID: "guest-13"}
		seedGuestCart(t, svc, sess, 1, "10000")

		err := svc.RemoveLocalItems(ctx, sess, []string{"backend-1", "backend-temp-0"})
		assert.NoError(t, err)

		view, _ := svc.Reconcile(ctx, sess)
		assert.Len(t, view.Items, 1)
	})
}

func TestCartService_Count(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := newCartService(&fakeBackend{}, storage.NewMemory())
		sess := cart.Session{ID: "guest-14"}
		seedGuestCart(t, svc, sess, 3, "5000")

		n, err := svc.Count(ctx, sess)
		assert.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("success_badge_observer_reported", func(t *testing.T) {
		counter := &recordCounter{}
		svc := cart.NewService(&fakeBackend{}, storage.NewMemory(), counter, nil)
		sess := cart.Session{ID: "guest-16"}

		view, err := svc.AddItem(ctx, sess, cart.AddItemRequest{
			Name: "Kaos Polos", Price: "5000", Quantity: 1,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, counter.last())

		_, err = svc.Remove(ctx, sess, view.Items[0].CartID)
		assert.NoError(t, err)
		assert.Equal(t, 0, counter.last())
	})
}

type recordCounter struct {
	counts []int
}

func (r *recordCounter) Set(_ context.Context, _ string, count int) error {
	r.counts = append(r.counts, count)
	return nil
}

func (r *recordCounter) last() int {
	if len(r.counts) == 0 {
		return -1
	}
	return r.counts[len(r.counts)-1]
}
