package proof_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"go-garment-store/internal/proof"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE SERVICE ====================

type fakeProofService struct {
	StatusFn func(ctx context.Context, token, transactionID string) (proof.ProofView, error)
	UploadFn func(ctx context.Context, token, transactionID string, file proof.ProofFile) (proof.ProofView, error)
}

func (f *fakeProofService) Status(ctx context.Context, token, transactionID string) (proof.ProofView, error) {
	return f.StatusFn(ctx, token, transactionID)
}
func (f *fakeProofService) Upload(ctx context.Context, token, transactionID string, file proof.ProofFile) (proof.ProofView, error) {
	return f.UploadFn(ctx, token, transactionID, file)
}

// ==================== HELPER FUNCTIONS ====================

func setupRouter(svc proof.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("bearer_token", "tok-abc")
		c.Next()
	})

	h := proof.NewHandler(svc, nil)
	r.GET("/payment/:transactionId", h.Status)
	r.POST("/payment/:transactionId/proof", h.Upload)
	return r
}

func multipartProof(t *testing.T, field, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	assert.NoError(t, err)
	_, err = part.Write(payload)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

// ==================== TEST CASES ====================

func TestProofHandler_Status(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeProofService{
			StatusFn: func(ctx context.Context, token, transactionID string) (proof.ProofView, error) {
				assert.Equal(t, "tok-abc", token)
				assert.Equal(t, "101", transactionID)
				return proof.ProofView{Mode: proof.ModePendingUpload, CanUpload: true}, nil
			},
		}
		r := setupRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/payment/101", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data proof.ProofView `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Data.CanUpload)
	})
}

func TestProofHandler_Upload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeProofService{
			UploadFn: func(ctx context.Context, token, transactionID string, file proof.ProofFile) (proof.ProofView, error) {
				assert.Equal(t, "bukti.jpg", file.Filename)
				assert.Equal(t, "image/jpeg", file.ContentType)
				assert.Positive(t, file.Size)
				return proof.ProofView{Mode: proof.ModePendingUpload}, nil
			},
		}
		r := setupRouter(svc)

		buf, ct := multipartProof(t, "bukti_pembayaran", "bukti.jpg", "image/jpeg", []byte("gambar"))
		req := httptest.NewRequest(http.MethodPost, "/payment/101/proof", buf)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("error_missing_file_field", func(t *testing.T) {
		r := setupRouter(&fakeProofService{})

		buf, ct := multipartProof(t, "field_lain", "bukti.jpg", "image/jpeg", []byte("gambar"))
		req := httptest.NewRequest(http.MethodPost, "/payment/101/proof", buf)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error_service_rejection_mapped", func(t *testing.T) {
		svc := &fakeProofService{
			UploadFn: func(ctx context.Context, token, transactionID string, file proof.ProofFile) (proof.ProofView, error) {
				return proof.ProofView{}, proof.ErrUploadNotAllowed
			},
		}
		r := setupRouter(svc)

		buf, ct := multipartProof(t, "bukti_pembayaran", "bukti.jpg", "image/jpeg", []byte("gambar"))
		req := httptest.NewRequest(http.MethodPost, "/payment/101/proof", buf)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
