package cart

import (
	"strconv"
	"strings"

	"go-garment-store/internal/backend"
)

// NormalizePrice mengubah harga mentah dari backend menjadi integer
// satuan terkecil. Backend kadang mengirim "Rp 150.000" atau
// "150,000"; semua rune non-digit dibuang sebelum parse. Hasil parse
// yang tidak valid menjadi 0, bukan error — total cart tidak boleh
// terkontaminasi NaN/parse failure.
func NormalizePrice(raw string) int64 {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// OrderIDOf melakukan probing id order dari baris itemlist yang
// bentuknya heterogen, urutan prioritas: order.id → order_id →
// orderId → id. String kosong berarti tidak ada id yang resolve.
func OrderIDOf(row backend.OrderItemRow) string {
	if row.Order != nil && row.Order.ID.String() != "" {
		return row.Order.ID.String()
	}
	if row.OrderID.String() != "" {
		return row.OrderID.String()
	}
	if row.OrderIDx.String() != "" {
		return row.OrderIDx.String()
	}
	return row.ID.String()
}
