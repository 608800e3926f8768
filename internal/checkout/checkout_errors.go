package checkout

import (
	"net/http"

	"go-garment-store/internal/pkg/apperror"
)

var (
	ErrLoginRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Silakan login terlebih dahulu untuk checkout",
		http.StatusUnauthorized,
	)

	ErrNothingSelected = apperror.New(
		apperror.CodeInvalidInput,
		"Tidak ada item terpilih untuk checkout",
		http.StatusBadRequest,
	)

	ErrDraftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Sesi checkout tidak ditemukan atau sudah berakhir",
		http.StatusNotFound,
	)

	ErrWrongStep = apperror.New(
		apperror.CodeConflict,
		"Langkah checkout tidak sesuai urutan",
		http.StatusConflict,
	)

	ErrPaymentMethodRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Metode pembayaran belum dipilih",
		http.StatusBadRequest,
	)

	// Submit tanpa satu pun order id yang resolve harus gagal di sisi
	// ini, sebelum request ke backend terkirim.
	ErrNoOrderIDs = apperror.New(
		apperror.CodeInvalidInput,
		"Tidak ada order id valid pada item terpilih",
		http.StatusBadRequest,
	)

	ErrCheckoutFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Checkout gagal diproses, silakan coba lagi",
		http.StatusBadGateway,
	)
)
