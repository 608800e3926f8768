package proof

import "strings"

// StatusMode adalah klasifikasi tertutup dari status transaksi bebas
// milik backend, untuk menentukan tampilan halaman bukti bayar.
type StatusMode string

const (
	ModeVerified      StatusMode = "verified"
	ModeExpired       StatusMode = "expired"
	ModeRejected      StatusMode = "rejected"
	ModePendingUpload StatusMode = "pending_upload"
)

// statusFragments: pencocokan substring case-insensitive terhadap
// status bebas backend (Menunggu_Konfirmasi, Diproses, Ditolak,
// Selesai, plus varian legacy pending/menunggu_pembayaran). Rapuh,
// tapi memang perilaku yang harus direproduksi — makanya dikurung di
// satu fungsi murni ini saja.
var statusFragments = []struct {
	mode      StatusMode
	fragments []string
}{
	{ModeExpired, []string{"expire", "kadaluarsa", "kedaluwarsa"}},
	{ModeRejected, []string{"tolak", "reject"}},
	{ModeVerified, []string{"selesai", "diproses", "approve", "verif"}},
}

// ClassifyStatus memetakan status mentah ke salah satu dari empat
// mode UI. Status yang tidak dikenali dianggap masih boleh upload.
func ClassifyStatus(raw string) StatusMode {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, group := range statusFragments {
		for _, frag := range group.fragments {
			if strings.Contains(s, frag) {
				return group.mode
			}
		}
	}
	return ModePendingUpload
}

// CanUpload: upload pertama maupun re-upload setelah ditolak.
func (m StatusMode) CanUpload() bool {
	return m == ModePendingUpload || m == ModeRejected
}
