package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-garment-store/internal/backend"
	"go-garment-store/internal/cart"
	"go-garment-store/internal/storage"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// draftTTL: draft yang ditinggalkan kadaluarsa sendiri, padanan
// snapshot checkoutItems yang basi di localStorage.
const draftTTL = 24 * time.Hour

// Backend adalah subset client REST yang dipakai checkout.
type Backend interface {
	Checkout(ctx context.Context, token string, req backend.CheckoutRequest) (backend.CheckoutResult, error)
}

// EventPublisher menerbitkan event checkout sukses (fire-and-forget).
type EventPublisher interface {
	CheckoutCompleted(ctx context.Context, ev CheckoutEvent) error
}

type CheckoutEvent struct {
	SessionID      string   `json:"session_id"`
	TransactionIDs []string `json:"transaction_ids"`
	OrderIDs       []string `json:"order_ids"`
	PaymentMethod  string   `json:"payment_method"`
}

type NopPublisher struct{}

func (NopPublisher) CheckoutCompleted(context.Context, CheckoutEvent) error { return nil }

type Service interface {
	Start(ctx context.Context, sess cart.Session) (Draft, error)
	Current(ctx context.Context, sess cart.Session) (Draft, error)
	SubmitShipping(ctx context.Context, sess cart.Session) (Draft, error)
	SelectPayment(ctx context.Context, sess cart.Session, req PaymentRequest) (Draft, error)
	Back(ctx context.Context, sess cart.Session) (Draft, error)
	Submit(ctx context.Context, sess cart.Session) (SubmitResult, error)
	Finish(ctx context.Context, sess cart.Session) error

	SaveProfile(ctx context.Context, sess cart.Session, p Profile) error
}

type service struct {
	backend   Backend
	cartSvc   cart.Service
	store     storage.Store
	publisher EventPublisher
	validate  *validator.Validate
	logger    *zap.Logger
}

type Deps struct {
	Backend   Backend
	CartSvc   cart.Service
	Store     storage.Store
	Publisher EventPublisher
	Logger    *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Backend == nil {
		panic("backend client cannot be nil")
	}
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.Store == nil {
		panic("store cannot be nil")
	}
	if deps.Publisher == nil {
		deps.Publisher = NopPublisher{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		backend:   deps.Backend,
		cartSvc:   deps.CartSvc,
		store:     deps.Store,
		publisher: deps.Publisher,
		validate:  validator.New(),
		logger:    deps.Logger.Named("checkout.service"),
	}
}

// ========================
// draft persistence
// ========================

func (s *service) loadDraft(ctx context.Context, sess cart.Session) (Draft, error) {
	raw, err := s.store.Get(ctx, storage.CheckoutKey(sess.ID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Draft{}, ErrDraftNotFound
		}
		return Draft{}, ErrCheckoutFailed.WithCause(err)
	}

	var d Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return Draft{}, ErrDraftNotFound
	}
	return d, nil
}

func (s *service) saveDraft(ctx context.Context, sess cart.Session, d Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return ErrCheckoutFailed.WithCause(err)
	}
	if err := s.store.Set(ctx, storage.CheckoutKey(sess.ID), raw, draftTTL); err != nil {
		return ErrCheckoutFailed.WithCause(err)
	}
	return nil
}

func (s *service) loadProfile(ctx context.Context, sess cart.Session) Profile {
	raw, err := s.store.Get(ctx, storage.ProfileKey(sess.ID))
	if err != nil {
		return Profile{}
	}
	var p Profile
	_ = json.Unmarshal(raw, &p)
	return p
}

// ========================
// flow
// ========================

// Start memotret item terseleksi dari cart saat user meninggalkan
// halaman cart, lalu membuka step shipping dengan data profil.
func (s *service) Start(ctx context.Context, sess cart.Session) (Draft, error) {
	if sess.Token == "" {
		return Draft{}, ErrLoginRequired
	}

	// View, bukan Reconcile: seleksi yang sudah diatur user di
	// halaman cart tidak boleh di-reset saat memotret subset checkout.
	view, err := s.cartSvc.View(ctx, sess)
	if err != nil {
		return Draft{}, ErrCheckoutFailed.WithCause(err)
	}

	selected := make([]cart.CartItem, 0, len(view.Items))
	for _, it := range view.Items {
		if view.Selection[it.CartID] {
			selected = append(selected, it)
		}
	}
	if len(selected) == 0 {
		return Draft{}, ErrNothingSelected
	}

	profile := s.loadProfile(ctx, sess)

	notes := ""
	if raw, err := s.store.Get(ctx, storage.NotesKey(sess.ID)); err == nil {
		notes = string(raw)
	}

	d := Draft{
		Step:  StepShipping,
		Items: selected,
		Shipping: ShippingInfo{
			FullName: profile.FullName,
			Phone:    profile.Phone,
			Address:  profile.Address,
		},
		Notes: notes,
	}
	if err := s.saveDraft(ctx, sess, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

func (s *service) Current(ctx context.Context, sess cart.Session) (Draft, error) {
	return s.loadDraft(ctx, sess)
}

// SubmitShipping memajukan shipping → payment. Field shipping readonly
// (bersumber dari profil), jadi tidak ada input yang divalidasi di sini.
func (s *service) SubmitShipping(ctx context.Context, sess cart.Session) (Draft, error) {
	d, err := s.loadDraft(ctx, sess)
	if err != nil {
		return Draft{}, err
	}
	if d.Step != StepShipping {
		return Draft{}, ErrWrongStep
	}

	d.Step = StepPayment
	if err := s.saveDraft(ctx, sess, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

func (s *service) SelectPayment(ctx context.Context, sess cart.Session, req PaymentRequest) (Draft, error) {
	if err := s.validate.Struct(req); err != nil {
		return Draft{}, ErrPaymentMethodRequired.WithCause(err)
	}

	d, err := s.loadDraft(ctx, sess)
	if err != nil {
		return Draft{}, err
	}
	if d.Step != StepPayment {
		return Draft{}, ErrWrongStep
	}

	d.PaymentMethod = req.Method
	d.BankChoice = req.BankChoice
	if req.Notes != "" {
		d.Notes = req.Notes
		// Catatan ikut dipersist terpisah ("orderNotes") agar selamat
		// dari draft yang kadaluarsa.
		if err := s.store.Set(ctx, storage.NotesKey(sess.ID), []byte(req.Notes), 0); err != nil {
			s.logger.Warn("persist order notes failed", zap.Error(err))
		}
	}

	if err := s.saveDraft(ctx, sess, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Back mundur satu step tanpa kehilangan data yang sudah diisi.
// Confirmation terminal — tidak bisa mundur dari sana.
func (s *service) Back(ctx context.Context, sess cart.Session) (Draft, error) {
	d, err := s.loadDraft(ctx, sess)
	if err != nil {
		return Draft{}, err
	}

	switch d.Step {
	case StepPayment:
		d.Step = StepShipping
	case StepShipping, StepConfirmation:
		return Draft{}, ErrWrongStep
	}

	if err := s.saveDraft(ctx, sess, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// ResolveOrderIDs mengumpulkan order id dari item terseleksi. Hanya
// item backend-* yang punya id; backend-temp-* dan local-* tidak
// resolve. List kosong wajib membatalkan submit di sisi client.
func ResolveOrderIDs(items []cart.CartItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if strings.HasPrefix(it.CartID, "backend-temp-") {
			continue
		}
		if strings.HasPrefix(it.CartID, "backend-") {
			if id := strings.TrimPrefix(it.CartID, "backend-"); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func mapPaymentMethod(method string) string {
	if method == MethodEwallet {
		return backendMethodEwallet
	}
	return backendMethodTransfer
}

func (s *service) Submit(ctx context.Context, sess cart.Session) (SubmitResult, error) {
	d, err := s.loadDraft(ctx, sess)
	if err != nil {
		return SubmitResult{}, err
	}
	if d.Step != StepPayment {
		return SubmitResult{}, ErrWrongStep
	}
	if d.PaymentMethod == "" {
		return SubmitResult{}, ErrPaymentMethodRequired
	}

	orderIDs := ResolveOrderIDs(d.Items)
	if len(orderIDs) == 0 {
		// Jangan pernah kirim request dengan daftar id kosong.
		return SubmitResult{}, ErrNoOrderIDs
	}

	logger := s.logger.With(zap.String("session_id", sess.ID))

	result, err := s.backend.Checkout(ctx, sess.Token, backend.CheckoutRequest{
		OrderIDs:      orderIDs,
		PaymentMethod: mapPaymentMethod(d.PaymentMethod),
		Type:          orderType,
		Notes:         d.Notes,
	})
	if err != nil {
		logger.Error("checkout submission failed", zap.Error(err))
		// Step tetap di payment supaya user bisa retry manual.
		var up *backend.UpstreamError
		if errors.As(err, &up) && up.Message != "" {
			return SubmitResult{}, ErrCheckoutFailed.WithMessage(up.Message)
		}
		return SubmitResult{}, ErrCheckoutFailed.WithCause(err)
	}

	d.Step = StepConfirmation
	if err := s.saveDraft(ctx, sess, d); err != nil {
		return SubmitResult{}, err
	}

	txIDs := make([]string, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		txIDs = append(txIDs, tx.ID.String())
	}
	if err := s.publisher.CheckoutCompleted(ctx, CheckoutEvent{
		SessionID:      sess.ID,
		TransactionIDs: txIDs,
		OrderIDs:       orderIDs,
		PaymentMethod:  mapPaymentMethod(d.PaymentMethod),
	}); err != nil {
		logger.Warn("publish checkout event failed", zap.Error(err))
	}

	logger.Info("checkout success", zap.Int("transactions", len(result.Transactions)))

	res := SubmitResult{Transactions: result.Transactions}
	switch {
	case len(result.Transactions) == 1:
		res.Redirect = "/payment/" + result.Transactions[0].ID.String()
	case len(result.Transactions) > 1:
		res.Redirect = "/account/orders"
		res.Message = "Pesanan dibuat lebih dari satu transaksi, silakan selesaikan pembayaran per pesanan"
	default:
		res.Redirect = "/"
	}
	if result.Message != "" && res.Message == "" {
		res.Message = result.Message
	}
	return res, nil
}

// Finish adalah "continue shopping" di halaman konfirmasi: snapshot
// checkout dibersihkan, item lokal yang sudah ter-checkout dibuang,
// lalu frontend kembali ke home.
func (s *service) Finish(ctx context.Context, sess cart.Session) error {
	d, err := s.loadDraft(ctx, sess)
	if err != nil {
		return err
	}
	if d.Step != StepConfirmation {
		return ErrWrongStep
	}

	cartIDs := make([]string, 0, len(d.Items))
	for _, it := range d.Items {
		cartIDs = append(cartIDs, it.CartID)
	}
	if err := s.cartSvc.RemoveLocalItems(ctx, sess, cartIDs); err != nil {
		s.logger.Warn("clear checked-out local items failed", zap.Error(err))
	}

	if err := s.store.Remove(ctx, storage.CheckoutKey(sess.ID)); err != nil {
		s.logger.Warn("clear checkout snapshot failed", zap.Error(err))
	}
	if err := s.store.Remove(ctx, storage.NotesKey(sess.ID)); err != nil {
		s.logger.Warn("clear order notes failed", zap.Error(err))
	}
	return nil
}

func (s *service) SaveProfile(ctx context.Context, sess cart.Session, p Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return ErrCheckoutFailed.WithCause(err)
	}
	if err := s.store.Set(ctx, storage.ProfileKey(sess.ID), raw, 0); err != nil {
		return ErrCheckoutFailed.WithCause(err)
	}
	return nil
}
