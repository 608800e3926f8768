package cart

import (
	"net/http"

	"go-garment-store/internal/pkg/apperror"
	"go-garment-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func sessionFromContext(c *gin.Context) Session {
	return Session{
		ID:    c.GetString("session_id"),
		Token: c.GetString("bearer_token"),
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Detail(c *gin.Context) {
	view, err := h.service.Reconcile(c.Request.Context(), sessionFromContext(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Input tidak valid", err.Error())
		return
	}

	view, err := h.service.AddItem(c.Request.Context(), sessionFromContext(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, view, nil)
}

func (h *Handler) SetQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Input tidak valid", err.Error())
		return
	}

	view, err := h.service.SetQuantity(c.Request.Context(), sessionFromContext(c), c.Param("cartId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Remove(c *gin.Context) {
	view, err := h.service.Remove(c.Request.Context(), sessionFromContext(c), c.Param("cartId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Input tidak valid", err.Error())
		return
	}

	view, err := h.service.Select(c.Request.Context(), sessionFromContext(c), c.Param("cartId"), req.Selected)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) SelectAll(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Input tidak valid", err.Error())
		return
	}

	view, err := h.service.SelectAll(c.Request.Context(), sessionFromContext(c), req.Selected)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context(), sessionFromContext(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, CartCountResponse{Count: count}, nil)
}
