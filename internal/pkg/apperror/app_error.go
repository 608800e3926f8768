package apperror

import "os"

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeUpstreamError = "UPSTREAM_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	base       *AppError
	cause      error
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap mengembalikan sentinel asal (untuk errors.Is) dan cause.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.base != nil {
		errs = append(errs, e.base)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// WithCause mengembalikan salinan error dengan cause terlampir,
// sentinel aslinya tidak berubah.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	if clone.base == nil {
		clone.base = e
	}
	clone.cause = cause
	return &clone
}

// WithMessage mengganti message (misal pesan verbatim dari backend).
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	if clone.base == nil {
		clone.base = e
	}
	clone.Message = message
	return &clone
}

var verboseErrors bool

func Init() {
	verboseErrors = os.Getenv("APP_ENV") != "production"
}
