package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go-garment-store/internal/backend"
	"go-garment-store/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session mengidentifikasi pemilik cart: ID dari user login atau
// X-Session-ID guest, Token kosong berarti guest.
type Session struct {
	ID    string
	Token string
}

// Backend adalah subset client REST yang dipakai cart.
type Backend interface {
	OrderItemList(ctx context.Context, token string) ([]backend.OrderItemRow, error)
	AddOrderItem(ctx context.Context, token string, req backend.AddItemRequest) error
	AddQuantity(ctx context.Context, token, orderID string, quantity int) error
	RemoveOrderItem(ctx context.Context, token, orderID string) error
}

type Service interface {
	Reconcile(ctx context.Context, sess Session) (CartView, error)

	// View membaca cart dengan state seleksi yang tersimpan apa
	// adanya — tidak seperti Reconcile yang me-reset seleksi. Dipakai
	// checkout saat memotret subset terpilih.
	View(ctx context.Context, sess Session) (CartView, error)
	AddItem(ctx context.Context, sess Session, req AddItemRequest) (CartView, error)
	SetQuantity(ctx context.Context, sess Session, cartID string, req SetQuantityRequest) (CartView, error)
	Remove(ctx context.Context, sess Session, cartID string) (CartView, error)
	Select(ctx context.Context, sess Session, cartID string, selected bool) (CartView, error)
	SelectAll(ctx context.Context, sess Session, selected bool) (CartView, error)
	Count(ctx context.Context, sess Session) (int, error)

	// RemoveLocalItems menghapus item local-* yang sudah selesai
	// di-checkout. Dipakai package checkout saat "continue shopping".
	RemoveLocalItems(ctx context.Context, sess Session, cartIDs []string) error
}

type service struct {
	backend  Backend
	store    storage.Store
	counter  Counter
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(b Backend, store storage.Store, counter Counter, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if counter == nil {
		counter = NopCounter{}
	}
	return &service{
		backend:  b,
		store:    store,
		counter:  counter,
		validate: validator.New(),
		logger:   logger.Named("cart.service"),
	}
}

// ========================
// load helpers
// ========================

// loadItems menghasilkan daftar item otoritatif. Dengan token, list
// server menang mutlak; kegagalan fetch tidak di-surface ke user,
// hanya dicatat lalu jatuh ke cart lokal (silent degradation).
func (s *service) loadItems(ctx context.Context, sess Session) []CartItem {
	if sess.Token != "" {
		rows, err := s.backend.OrderItemList(ctx, sess.Token)
		if err == nil {
			return mapRows(rows)
		}
		s.logger.Warn("authenticated cart fetch failed, falling back to local cart",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
	}
	return s.loadLocal(ctx, sess)
}

func mapRows(rows []backend.OrderItemRow) []CartItem {
	items := make([]CartItem, 0, len(rows))
	for i, r := range rows {
		cartID := backendPrefix + OrderIDOf(r)
		if OrderIDOf(r) == "" {
			cartID = fmt.Sprintf("%s%d", backendTempPrefix, i)
		}
		items = append(items, CartItem{
			CartID:   cartID,
			Name:     r.Name,
			Price:    NormalizePrice(r.Price.String()),
			Image:    r.Image,
			Quantity: r.Quantity,
			Size:     r.Size,
			Color:    r.Color,
		})
	}
	return items
}

func (s *service) loadLocal(ctx context.Context, sess Session) []CartItem {
	raw, err := s.store.Get(ctx, storage.CartKey(sess.ID))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("load local cart failed", zap.Error(err))
		}
		return []CartItem{}
	}

	var items []CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("corrupt local cart, resetting", zap.Error(err))
		return []CartItem{}
	}

	// Item lama tanpa cartId diberi id lokal baru lalu dipersist ulang.
	changed := false
	for i := range items {
		if items[i].CartID == "" {
			items[i].CartID = localPrefix + uuid.NewString()
			changed = true
		}
	}
	if changed {
		s.saveLocal(ctx, sess, items)
	}
	return items
}

func (s *service) saveLocal(ctx context.Context, sess Session, items []CartItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		s.logger.Error("marshal local cart failed", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, storage.CartKey(sess.ID), raw, 0); err != nil {
		s.logger.Warn("persist local cart failed", zap.Error(err))
	}
}

func (s *service) loadSelection(ctx context.Context, sess Session, items []CartItem) map[string]bool {
	sel := map[string]bool{}
	raw, err := s.store.Get(ctx, storage.SelectionKey(sess.ID))
	if err == nil {
		_ = json.Unmarshal(raw, &sel)
	}

	// Sinkronkan key dengan item yang ada: item baru default terpilih,
	// key yatim dibuang.
	synced := make(map[string]bool, len(items))
	for _, it := range items {
		if v, ok := sel[it.CartID]; ok {
			synced[it.CartID] = v
		} else {
			synced[it.CartID] = true
		}
	}
	return synced
}

func (s *service) saveSelection(ctx context.Context, sess Session, sel map[string]bool) {
	raw, err := json.Marshal(sel)
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, storage.SelectionKey(sess.ID), raw, 0); err != nil {
		s.logger.Warn("persist selection failed", zap.Error(err))
	}
}

func buildView(items []CartItem, sel map[string]bool) CartView {
	var total int64
	for _, it := range items {
		if sel[it.CartID] {
			total += it.ItemTotal()
		}
	}
	return CartView{
		Items:     items,
		Selection: sel,
		Total:     total,
		Count:     len(items),
	}
}

func (s *service) reportCount(ctx context.Context, sess Session, count int) {
	if err := s.counter.Set(ctx, sess.ID, count); err != nil {
		s.logger.Warn("report cart count failed", zap.Error(err))
	}
}

// ========================
// operations
// ========================

func (s *service) Reconcile(ctx context.Context, sess Session) (CartView, error) {
	items := s.loadItems(ctx, sess)

	// Saat load, semua item mulai dalam keadaan terpilih.
	sel := make(map[string]bool, len(items))
	for _, it := range items {
		sel[it.CartID] = true
	}
	s.saveSelection(ctx, sess, sel)
	s.reportCount(ctx, sess, len(items))

	return buildView(items, sel), nil
}

func (s *service) View(ctx context.Context, sess Session) (CartView, error) {
	items := s.loadItems(ctx, sess)

	// Seleksi tersimpan dipertahankan; hanya disinkronkan dengan item
	// yang masih ada.
	sel := s.loadSelection(ctx, sess, items)
	s.saveSelection(ctx, sess, sel)
	s.reportCount(ctx, sess, len(items))

	return buildView(items, sel), nil
}

func (s *service) AddItem(ctx context.Context, sess Session, req AddItemRequest) (CartView, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartView{}, ErrInvalidQty.WithCause(err)
	}

	if sess.Token != "" {
		err := s.backend.AddOrderItem(ctx, sess.Token, backend.AddItemRequest{
			CatalogID: req.CatalogID,
			Quantity:  req.Quantity,
			Size:      req.Size,
			Color:     req.Color,
		})
		if err != nil {
			return CartView{}, upstreamOrCartErr(err)
		}
		return s.Reconcile(ctx, sess)
	}

	items := s.loadLocal(ctx, sess)
	items = append(items, CartItem{
		CartID:   localPrefix + uuid.NewString(),
		Name:     req.Name,
		Price:    NormalizePrice(req.Price),
		Image:    req.Image,
		Quantity: req.Quantity,
		Size:     req.Size,
		Color:    req.Color,
	})
	s.saveLocal(ctx, sess, items)

	sel := s.loadSelection(ctx, sess, items)
	s.saveSelection(ctx, sess, sel)
	s.reportCount(ctx, sess, len(items))

	return buildView(items, sel), nil
}

func (s *service) SetQuantity(ctx context.Context, sess Session, cartID string, req SetQuantityRequest) (CartView, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartView{}, ErrInvalidQty.WithCause(err)
	}

	items := s.loadItems(ctx, sess)
	idx := indexOf(items, cartID)
	if idx < 0 {
		return CartView{}, ErrItemNotFound
	}

	// Optimistic: view dimutasi dulu, remote menyusul. Kegagalan
	// remote hanya dicatat — tidak ada rollback (inkonsistensi yang
	// memang diterima desain sumbernya).
	items[idx].Quantity = req.Quantity

	switch {
	case strings.HasPrefix(cartID, backendTempPrefix):
		s.logger.Warn("quantity change on backend item without id, remote update skipped",
			zap.String("cart_id", cartID))
	case strings.HasPrefix(cartID, backendPrefix):
		orderID := strings.TrimPrefix(cartID, backendPrefix)
		if err := s.backend.AddQuantity(ctx, sess.Token, orderID, req.Quantity); err != nil {
			s.logger.Warn("remote quantity update failed, optimistic view kept",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
	default:
		s.saveLocal(ctx, sess, items)
	}

	sel := s.loadSelection(ctx, sess, items)
	s.reportCount(ctx, sess, len(items))
	return buildView(items, sel), nil
}

func (s *service) Remove(ctx context.Context, sess Session, cartID string) (CartView, error) {
	items := s.loadItems(ctx, sess)
	idx := indexOf(items, cartID)
	if idx < 0 {
		return CartView{}, ErrItemNotFound
	}

	items = append(items[:idx], items[idx+1:]...)

	switch {
	case strings.HasPrefix(cartID, backendTempPrefix):
		s.logger.Warn("removal of backend item without id, remote delete skipped",
			zap.String("cart_id", cartID))
	case strings.HasPrefix(cartID, backendPrefix):
		orderID := strings.TrimPrefix(cartID, backendPrefix)
		if err := s.backend.RemoveOrderItem(ctx, sess.Token, orderID); err != nil {
			s.logger.Warn("remote item delete failed, optimistic view kept",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
	default:
		s.saveLocal(ctx, sess, items)
	}

	// Key seleksi item yang hilang ikut dibuang — tidak boleh ada
	// entry yatim.
	sel := s.loadSelection(ctx, sess, items)
	s.saveSelection(ctx, sess, sel)
	s.reportCount(ctx, sess, len(items))

	return buildView(items, sel), nil
}

func (s *service) Select(ctx context.Context, sess Session, cartID string, selected bool) (CartView, error) {
	items := s.loadItems(ctx, sess)
	if indexOf(items, cartID) < 0 {
		return CartView{}, ErrItemNotFound
	}

	sel := s.loadSelection(ctx, sess, items)
	sel[cartID] = selected
	s.saveSelection(ctx, sess, sel)

	return buildView(items, sel), nil
}

func (s *service) SelectAll(ctx context.Context, sess Session, selected bool) (CartView, error) {
	items := s.loadItems(ctx, sess)

	sel := make(map[string]bool, len(items))
	for _, it := range items {
		sel[it.CartID] = selected
	}
	s.saveSelection(ctx, sess, sel)

	return buildView(items, sel), nil
}

func (s *service) Count(ctx context.Context, sess Session) (int, error) {
	items := s.loadItems(ctx, sess)
	s.reportCount(ctx, sess, len(items))
	return len(items), nil
}

func (s *service) RemoveLocalItems(ctx context.Context, sess Session, cartIDs []string) error {
	drop := make(map[string]struct{}, len(cartIDs))
	for _, id := range cartIDs {
		if strings.HasPrefix(id, localPrefix) {
			drop[id] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return nil
	}

	items := s.loadLocal(ctx, sess)
	kept := make([]CartItem, 0, len(items))
	for _, it := range items {
		if _, gone := drop[it.CartID]; !gone {
			kept = append(kept, it)
		}
	}
	s.saveLocal(ctx, sess, kept)

	sel := s.loadSelection(ctx, sess, kept)
	s.saveSelection(ctx, sess, sel)
	s.reportCount(ctx, sess, len(kept))
	return nil
}

func indexOf(items []CartItem, cartID string) int {
	for i, it := range items {
		if it.CartID == cartID {
			return i
		}
	}
	return -1
}

func upstreamOrCartErr(err error) error {
	var up *backend.UpstreamError
	if errors.As(err, &up) && up.Message != "" {
		return ErrCartFailed.WithMessage(up.Message)
	}
	return ErrCartFailed.WithCause(err)
}
