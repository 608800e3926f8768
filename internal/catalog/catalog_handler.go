package catalog

import (
	"net/http"

	"go-garment-store/internal/pkg/apperror"
	"go-garment-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, views, nil)
}

func (h *Handler) Show(c *gin.Context) {
	view, err := h.service.Show(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Reviews(c *gin.Context) {
	reviews, err := h.service.Reviews(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reviews, nil)
}

func (h *Handler) AddReview(c *gin.Context) {
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Input tidak valid", err.Error())
		return
	}

	if err := h.service.AddReview(c.Request.Context(), c.GetString("bearer_token"), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, nil, nil)
}
