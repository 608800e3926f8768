package proof

import (
	"net/http"

	"go-garment-store/internal/pkg/apperror"
)

var (
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"File bukti pembayaran wajib diisi",
		http.StatusBadRequest,
	)

	ErrInvalidFileType = apperror.New(
		apperror.CodeInvalidInput,
		"File harus berupa gambar",
		http.StatusBadRequest,
	)

	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Ukuran file maksimal 2 MB",
		http.StatusBadRequest,
	)

	ErrUploadNotAllowed = apperror.New(
		apperror.CodeConflict,
		"Transaksi ini tidak menerima upload bukti bayar",
		http.StatusConflict,
	)

	ErrProofFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Upload bukti pembayaran gagal",
		http.StatusBadGateway,
	)
)
