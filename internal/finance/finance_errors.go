package finance

import (
	"net/http"

	"go-garment-store/internal/pkg/apperror"
)

var (
	ErrInvalidReportRange = apperror.New(
		apperror.CodeInvalidInput,
		"Rentang tanggal laporan tidak valid",
		http.StatusBadRequest,
	)

	ErrFinanceFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Gagal mengambil data keuangan",
		http.StatusBadGateway,
	)
)
