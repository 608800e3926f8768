package proof

import (
	"context"
	"errors"
	"io"
	"strings"

	"go-garment-store/internal/backend"

	"go.uber.org/zap"
)

// MaxProofSize: batas ukuran bukti bayar, divalidasi sebelum ada
// network call sama sekali.
const MaxProofSize = 2 << 20

// Backend adalah subset client REST yang dipakai bukti bayar.
type Backend interface {
	UploadPaymentProof(ctx context.Context, token, transactionID, filename, contentType string, file io.Reader) error
	TransactionShow(ctx context.Context, token, id string) (backend.Transaction, error)
}

// ProofFile adalah file yang diterima dari multipart form.
type ProofFile struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ProofView: transaksi plus mode tampilannya.
type ProofView struct {
	Transaction backend.Transaction `json:"transaction"`
	Mode        StatusMode          `json:"mode"`
	CanUpload   bool                `json:"canUpload"`
}

type Service interface {
	Status(ctx context.Context, token, transactionID string) (ProofView, error)
	Upload(ctx context.Context, token, transactionID string, file ProofFile) (ProofView, error)
}

type service struct {
	backend Backend
	logger  *zap.Logger
}

func NewService(b Backend, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{backend: b, logger: logger.Named("proof.service")}
}

func (s *service) Status(ctx context.Context, token, transactionID string) (ProofView, error) {
	tx, err := s.backend.TransactionShow(ctx, token, transactionID)
	if err != nil {
		return ProofView{}, upstreamOrProofErr(err)
	}
	mode := ClassifyStatus(tx.Status)
	return ProofView{Transaction: tx, Mode: mode, CanUpload: mode.CanUpload()}, nil
}

func validateFile(file ProofFile) error {
	if file.Reader == nil || file.Filename == "" {
		return ErrFileRequired
	}
	if !strings.HasPrefix(strings.ToLower(file.ContentType), "image/") {
		return ErrInvalidFileType
	}
	if file.Size > MaxProofSize {
		return ErrFileTooLarge
	}
	return nil
}

func (s *service) Upload(ctx context.Context, token, transactionID string, file ProofFile) (ProofView, error) {
	if err := validateFile(file); err != nil {
		return ProofView{}, err
	}

	current, err := s.backend.TransactionShow(ctx, token, transactionID)
	if err != nil {
		return ProofView{}, upstreamOrProofErr(err)
	}
	if !ClassifyStatus(current.Status).CanUpload() {
		return ProofView{}, ErrUploadNotAllowed
	}

	if err := s.backend.UploadPaymentProof(ctx, token, transactionID, file.Filename, file.ContentType, file.Reader); err != nil {
		s.logger.Error("proof upload failed",
			zap.String("transaction_id", transactionID),
			zap.Error(err),
		)
		return ProofView{}, upstreamOrProofErr(err)
	}

	// Re-fetch supaya status terbaru langsung terlihat di UI.
	return s.Status(ctx, token, transactionID)
}

func upstreamOrProofErr(err error) error {
	var up *backend.UpstreamError
	if errors.As(err, &up) && up.Message != "" {
		return ErrProofFailed.WithMessage(up.Message)
	}
	return ErrProofFailed.WithCause(err)
}
