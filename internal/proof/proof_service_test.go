package proof_test

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"go-garment-store/internal/backend"
	"go-garment-store/internal/proof"

	"github.com/stretchr/testify/assert"
)

// ==================== FAKE BACKEND ====================

type fakeBackend struct {
	TransactionShowFn func(ctx context.Context, token, id string) (backend.Transaction, error)
	uploads           int
	uploadErr         error
}

func (f *fakeBackend) TransactionShow(ctx context.Context, token, id string) (backend.Transaction, error) {
	if f.TransactionShowFn == nil {
		return backend.Transaction{}, nil
	}
	return f.TransactionShowFn(ctx, token, id)
}

func (f *fakeBackend) UploadPaymentProof(ctx context.Context, token, transactionID, filename, contentType string, file io.Reader) error {
	f.uploads++
	return f.uploadErr
}

func imageFile(size int64) proof.ProofFile {
	return proof.ProofFile{
		Filename:    "bukti.jpg",
		ContentType: "image/jpeg",
		Size:        size,
		Reader:      strings.NewReader("fake image bytes"),
	}
}

func txWithStatus(status string) func(ctx context.Context, token, id string) (backend.Transaction, error) {
	return func(ctx context.Context, token, id string) (backend.Transaction, error) {
		return backend.Transaction{ID: json.Number("101"), Status: status}, nil
	}
}

// ==================== TEST CASES ====================

func TestProofService_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("success_pending_can_upload", func(t *testing.T) {
		be := &fakeBackend{TransactionShowFn: txWithStatus("Menunggu_Konfirmasi")}
		svc := proof.NewService(be, nil)

		view, err := svc.Status(ctx, "tok", "101")
		assert.NoError(t, err)
		assert.Equal(t, proof.ModePendingUpload, view.Mode)
		assert.True(t, view.CanUpload)
	})

	t.Run("success_verified_blocks_upload", func(t *testing.T) {
		be := &fakeBackend{TransactionShowFn: txWithStatus("Selesai")}
		svc := proof.NewService(be, nil)

		view, err := svc.Status(ctx, "tok", "101")
		assert.NoError(t, err)
		assert.Equal(t, proof.ModeVerified, view.Mode)
		assert.False(t, view.CanUpload)
	})

	t.Run("error_upstream_message_passed_through", func(t *testing.T) {
		be := &fakeBackend{
			TransactionShowFn: func(ctx context.Context, token, id string) (backend.Transaction, error) {
				return backend.Transaction{}, &backend.UpstreamError{StatusCode: 404, Message: "Transaksi tidak ditemukan"}
			},
		}
		svc := proof.NewService(be, nil)

		_, err := svc.Status(ctx, "tok", "404")
		assert.ErrorIs(t, err, proof.ErrProofFailed)
		assert.Contains(t, err.Error(), "Transaksi tidak ditemukan")
	})
}

func TestProofService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success_first_upload", func(t *testing.T) {
		be := &fakeBackend{TransactionShowFn: txWithStatus("Menunggu_Konfirmasi")}
		svc := proof.NewService(be, nil)

		view, err := svc.Upload(ctx, "tok", "101", imageFile(1024))
		assert.NoError(t, err)
		assert.Equal(t, 1, be.uploads)
		assert.Equal(t, "101", view.Transaction.ID.String())
	})

	t.Run("success_reupload_after_rejection", func(t *testing.T) {
		be := &fakeBackend{TransactionShowFn: txWithStatus("Ditolak")}
		svc := proof.NewService(be, nil)

		_, err := svc.Upload(ctx, "tok", "101", imageFile(1024))
		assert.NoError(t, err)
		assert.Equal(t, 1, be.uploads)
	})

	t.Run("error_oversize_rejected_before_any_call", func(t *testing.T) {
		be := &fakeBackend{TransactionShowFn: txWithStatus("Menunggu_Konfirmasi")}
		svc := proof.NewService(be, nil)

		_, err := svc.Upload(ctx, "tok", "101", imageFile(3<<20))
		assert.ErrorIs(t, err, proof.ErrFileTooLarge)
		assert.Zero(t, be.uploads)
	})

	t.Run("error_size_exactly_at_limit_passes", func(t *testing.T) {
		be := &fakeBackend{TransactionShowFn: txWithStatus("Menunggu_Konfirmasi")}
		svc := proof.NewService(be, nil)

		_, err := svc.Upload(ctx, "tok", "101", imageFile(proof.MaxProofSize))
		assert.NoError(t, err)
	})

	t.Run("error_non_image_rejected", func(t *testing.T) {
		be := &fakeBackend{TransactionShowFn: txWithStatus("Menunggu_Konfirmasi")}
		svc := proof.NewService(be, nil)

		file := imageFile(1024)
		file.ContentType = "application/pdf"

		_, err := svc.Upload(ctx, "tok", "101", file)
		assert.ErrorIs(t, err, proof.ErrInvalidFileType)
		assert.Zero(t, be.uploads)
	})

	t.Run("error_missing_file", func(t *testing.T) {
		svc := proof.NewService(&fakeBackend{}, nil)

		_, err := svc.Upload(ctx, "tok", "101", proof.ProofFile{})
		assert.ErrorIs(t, err, proof.ErrFileRequired)
	})

	t.Run("error_upload_blocked_on_verified_transaction", func(t *testing.T) {
		be := &fakeBackend{TransactionShowFn: txWithStatus("Diproses")}
		svc := proof.NewService(be, nil)

		_, err := svc.Upload(ctx, "tok", "101", imageFile(1024))
		assert.ErrorIs(t, err, proof.ErrUploadNotAllowed)
		assert.Zero(t, be.uploads)
	})

	t.Run("error_upload_blocked_on_expired_transaction", func(t *testing.T) {
		be := &fakeBackend{TransactionShowFn: txWithStatus("expired")}
		svc := proof.NewService(be, nil)

		_, err := svc.Upload(ctx, "tok", "101", imageFile(1024))
		assert.ErrorIs(t, err, proof.ErrUploadNotAllowed)
		assert.Zero(t, be.uploads)
	})
}
