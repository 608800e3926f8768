package transaction

import (
	"net/http"

	"go-garment-store/internal/pkg/apperror"
)

var (
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"Aksi verifikasi harus approve atau reject",
		http.StatusBadRequest,
	)

	ErrTransactionFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Gagal mengambil data transaksi",
		http.StatusBadGateway,
	)
)
