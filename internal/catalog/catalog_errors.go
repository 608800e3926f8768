package catalog

import (
	"net/http"

	"go-garment-store/internal/pkg/apperror"
)

var (
	ErrInvalidReview = apperror.New(
		apperror.CodeInvalidInput,
		"Review tidak valid",
		http.StatusBadRequest,
	)

	ErrCatalogFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Gagal mengambil data katalog",
		http.StatusBadGateway,
	)
)
