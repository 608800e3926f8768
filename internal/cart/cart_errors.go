package cart

import (
	"net/http"

	"go-garment-store/internal/pkg/apperror"
)

var (
	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be a positive number",
		http.StatusBadRequest,
	)

	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in cart",
		http.StatusNotFound,
	)

	ErrCartFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process cart operation",
		http.StatusInternalServerError,
	)
)
