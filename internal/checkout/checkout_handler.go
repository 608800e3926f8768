package checkout

import (
	"net/http"

	"go-garment-store/internal/cart"
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
	l := zap.L().Named("checkout.handler")
	if logger != nil {
		l = logger.Named("checkout.handler")
	}
	return &Handler{service: svc, logger: l}
}

func sessionFromContext(c *gin.Context) cart.Session {
	return cart.Session{
		ID:    c.GetString("session_id"),
		Token: c.GetString("bearer_token"),
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Start(c *gin.Context) {
	d, err := h.service.Start(c.Request.Context(), sessionFromContext(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, d, nil)
}

func (h *Handler) Current(c *gin.Context) {
	d, err := h.service.Current(c.Request.Context(), sessionFromContext(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d, nil)
}

func (h *Handler) SubmitShipping(c *gin.Context) {
	d, err := h.service.SubmitShipping(c.Request.Context(), sessionFromContext(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d, nil)
}

func (h *Handler) SelectPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Input tidak valid", err.Error())
		return
	}

	d, err := h.service.SelectPayment(c.Request.Context(), sessionFromContext(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d, nil)
}

func (h *Handler) Back(c *gin.Context) {
	d, err := h.service.Back(c.Request.Context(), sessionFromContext(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	sess := sessionFromContext(c)

	h.logger.Debug("http checkout submit", zap.String("session_id", sess.ID))

	res, err := h.service.Submit(c.Request.Context(), sess)
	if err != nil {
		h.logger.Error("http checkout submit error",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		h.writeServiceError(c, err)
		return
	}

	if res.Message != "" {
		response.SuccessWithMessage(c, http.StatusCreated, res.Message, res)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Finish(c *gin.Context) {
	if err := h.service.Finish(c.Request.Context(), sessionFromContext(c)); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"redirect": "/"}, nil)
}

func (h *Handler) SaveProfile(c *gin.Context) {
	var p Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Input tidak valid", err.Error())
		return
	}

	if err := h.service.SaveProfile(c.Request.Context(), sessionFromContext(c), p); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, nil)
}
