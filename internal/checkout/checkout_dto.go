package checkout

import (
	"go-garment-store/internal/backend"
	"go-garment-store/internal/cart"
)

// Step adalah posisi flow checkout. Linear ketat:
// shipping → payment → confirmation, tanpa lompat.
type Step string

const (
	StepShipping     Step = "shipping"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// Metode pembayaran di UI dan padanan enum tetap di backend.
const (
	MethodTransfer = "transfer"
	MethodEwallet  = "ewallet"

	backendMethodTransfer = "Transfer_Bank"
	backendMethodEwallet  = "E_Wallet"

	// Semua checkout storefront bertipe katalog; item custom punya
	// jalur sendiri di backend.
	orderType = "katalog"
)

// ShippingInfo di-prefill dari snapshot profil dan readonly di flow
// ini — keputusan produk, bukan bug.
type ShippingInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Notes    string `json:"notes,omitempty"`
}

// Draft adalah snapshot "checkoutItems": subset cart terseleksi pada
// saat user meninggalkan halaman cart, plus pilihan yang sudah
// diisi. Hidup di store dengan TTL; dikonsumsi saat submit sukses.
type Draft struct {
	Step          Step            `json:"step"`
	Items         []cart.CartItem `json:"items"`
	Shipping      ShippingInfo    `json:"shipping"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	BankChoice    string          `json:"bankChoice,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

type PaymentRequest struct {
	Method     string `json:"method" validate:"required,oneof=transfer ewallet"`
	BankChoice string `json:"bankChoice,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// SubmitResult membawa keputusan redirect pasca order dibuat:
// satu transaksi → halaman pembayarannya; lebih dari satu → daftar
// pesanan di akun dengan pesan informatif; selain itu fallback home.
type SubmitResult struct {
	Redirect     string                `json:"redirect"`
	Message      string                `json:"message,omitempty"`
	Transactions []backend.Transaction `json:"transactions"`
}

// Profile adalah snapshot profil user yang disimpan per session —
// padanan key localStorage "user" di frontend lama.
type Profile struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
