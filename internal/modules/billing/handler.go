package billing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"happyhouse/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/billing/quote/:roomID", h.GetQuote)
	rg.POST("/billing/settle", h.Settle)
}

func (h *Handler) GetQuote(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("roomID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	q, err := h.service.Quote(c.Request.Context(), roomID, c.GetInt64("owner_id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute quote")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": q})
}

func (h *Handler) Settle(c *gin.Context) {
	var req SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inv, err := h.service.Settle(c.Request.Context(), c.GetInt64("owner_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.Is(err, ErrRoomVacant):
			response.Error(c, http.StatusConflict, "ROOM_VACANT", "Room has no occupant to bill")
		case errors.Is(err, ErrSettleFailed):
			response.Error(c, http.StatusInternalServerError, "SETTLE_FAILED", "Payment could not be recorded; no changes were applied")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to settle")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"invoice": inv})
}
