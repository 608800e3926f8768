package backend

import (
	"encoding/json"
	"strings"
)

// FlexString menerima token JSON string maupun angka. Backend kadang
// mengirim harga sebagai angka, kadang sebagai string terformat
// ("Rp 150.000"), tergantung endpoint.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(strings.TrimSpace(string(b)))
	return nil
}

func (f FlexString) String() string { return string(f) }

type CatalogItem struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"nama_katalog"`
	Price       FlexString  `json:"price"`
	Image       string      `json:"gambar"`
	Description string      `json:"deskripsi"`
	Sizes       []string    `json:"size,omitempty"`
	Colors      []string    `json:"colors,omitempty"`
	Stock       int         `json:"stok"`
}

type OrderRef struct {
	ID json.Number `json:"id"`
}

// OrderItemRow adalah baris itemlist dari backend. Bentuknya heterogen:
// id order bisa muncul di order.id, order_id, orderId, atau id,
// tergantung umur record. Probing prioritasnya ada di package checkout.
type OrderItemRow struct {
	ID       json.Number `json:"id"`
	OrderID  json.Number `json:"order_id"`
	OrderIDx json.Number `json:"orderId"`
	Order    *OrderRef   `json:"order"`

	Name     string     `json:"nama_katalog"`
	Price    FlexString `json:"price"`
	Image    string     `json:"gambar"`
	Quantity int        `json:"jumlah"`
	Size     string     `json:"size,omitempty"`
	Color    string     `json:"color,omitempty"`
}

type AddItemRequest struct {
	CatalogID string `json:"catalog_id"`
	Quantity  int    `json:"jumlah"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type OrderRow struct {
	ID         json.Number `json:"id"`
	Status     string      `json:"status"`
	Name       string      `json:"nama_katalog"`
	Price      FlexString  `json:"price"`
	Quantity   int         `json:"jumlah"`
	Size       string      `json:"size,omitempty"`
	Color      string      `json:"color,omitempty"`
	CustomNote string      `json:"catatan,omitempty"`
}

type CheckoutRequest struct {
	OrderIDs      []string `json:"order_ids"`
	PaymentMethod string   `json:"payment_method"`
	Type          string   `json:"type"`
	Notes         string   `json:"catatan,omitempty"`
}

type CheckoutResult struct {
	Transactions []Transaction `json:"transactions"`
	Message      string        `json:"-"`
}

type Transaction struct {
	ID          json.Number `json:"id"`
	Status      string      `json:"status"`
	Total       FlexString  `json:"total_harga"`
	PaymentType string      `json:"payment_type,omitempty"`
	ProofURL    string      `json:"bukti_pembayaran,omitempty"`
	ExpiredAt   string      `json:"expired_at,omitempty"`
	Orders      []OrderRow  `json:"orders,omitempty"`
}

type User struct {
	ID      json.Number `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone,omitempty"`
	Address string      `json:"address,omitempty"`
	Role    string      `json:"role,omitempty"`
	// Koordinat untuk peta sebaran customer di back office.
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

type FinanceReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Type      string `json:"type,omitempty"`
}

type FinanceEntry struct {
	ID          json.Number `json:"id"`
	Date        string      `json:"tanggal"`
	Description string      `json:"keterangan"`
	Type        string      `json:"jenis"` // pemasukan | pengeluaran
	Amount      FlexString  `json:"nominal"`
}

type Review struct {
	ID        json.Number `json:"id"`
	UserName  string      `json:"user_name"`
	CatalogID json.Number `json:"catalog_id"`
	Rating    int         `json:"rating"`
	Comment   string      `json:"komentar"`
	CreatedAt string      `json:"created_at,omitempty"`
}

type ReviewRequest struct {
	CatalogID string `json:"catalog_id"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Comment   string `json:"komentar"`
}
