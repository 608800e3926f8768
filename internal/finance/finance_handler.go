package finance

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

func (h *Handler) Report(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Input tidak valid", err.Error())
		return
	}

	view, err := h.service.Report(c.Request.Context(), c.GetString("bearer_token"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) UsersCount(c *gin.Context) {
	count, err := h.service.UsersCount(c.Request.Context(), c.GetString("bearer_token"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, UsersCountResponse{Count: count}, nil)
}

func (h *Handler) CustomerLocations(c *gin.Context) {
	locations, err := h.service.CustomerLocations(c.Request.Context(), c.GetString("bearer_token"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, locations, nil)
}
