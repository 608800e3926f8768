package proof

import (
	"net/http"

	"go-garment-store/internal/pkg/apperror"
	"go-garment-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger *zap.Logger) *Handler {
	l := zap.L().Named("proof.handler")
	if logger != nil {
		l = logger.Named("proof.handler")
	}
	return &Handler{service: svc, logger: l}
}

func (h *Handler) Status(c *gin.Context) {
	token := c.GetString("bearer_token")

	view, err := h.service.Status(c.Request.Context(), token, c.Param("transactionId"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Upload(c *gin.Context) {
	token := c.GetString("bearer_token")
	transactionID := c.Param("transactionId")

	fileHeader, err := c.FormFile("bukti_pembayaran")
	if err != nil {
		response.Error(c, ErrFileRequired.HTTPStatus, ErrFileRequired.Code, ErrFileRequired.Message, nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "File tidak bisa dibaca", err.Error())
		return
	}
	defer f.Close()

	view, err := h.service.Upload(c.Request.Context(), token, transactionID, ProofFile{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      f,
	})
	if err != nil {
		h.logger.Warn("http proof upload rejected",
			zap.String("transaction_id", transactionID),
			zap.Error(err),
		)
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusCreated, view, nil)
}
