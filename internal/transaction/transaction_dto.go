package transaction

import "go-garment-store/internal/backend"

// Vocabulary status transaksi milik backend. Service ini hanya
// membaca dan menampilkannya — transisi status bukan milik sini,
// admin cuma mengirim keputusan approve/reject.
const (
	StatusMenungguKonfirmasi = "Menunggu_Konfirmasi"
	StatusDiproses           = "Diproses"
	StatusDitolak            = "Ditolak"
	StatusSelesai            = "Selesai"

	// Varian legacy yang masih mungkin muncul di data lama.
	StatusPending            = "pending"
	StatusMenungguPembayaran = "menunggu_pembayaran"
)

var statusLabels = map[string]string{
	StatusMenungguKonfirmasi: "Menunggu Konfirmasi",
	StatusDiproses:           "Diproses",
	StatusDitolak:            "Ditolak",
	StatusSelesai:            "Selesai",
	StatusPending:            "Menunggu Pembayaran",
	StatusMenungguPembayaran: "Menunggu Pembayaran",
}

// DisplayStatus memberi label tampilan; status tak dikenal ditampilkan
// apa adanya.
func DisplayStatus(raw string) string {
	if label, ok := statusLabels[raw]; ok {
		return label
	}
	return raw
}

type TransactionView struct {
	backend.Transaction
	StatusLabel string `json:"statusLabel"`
}

type VerifyRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}
