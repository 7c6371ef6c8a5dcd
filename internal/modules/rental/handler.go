package rental

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"happyhouse/internal/pkg/response"
	"happyhouse/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rentals/vacant-rooms", h.VacantRooms)
	rg.POST("/rentals", h.CreateRental)
	rg.GET("/rooms/:id/rentals", h.History)
}

func (h *Handler) VacantRooms(c *gin.Context) {
	list, err := h.service.VacantRooms(c.Request.Context(), c.GetInt64("owner_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list vacant rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": list})
}

func (h *Handler) CreateRental(c *gin.Context) {
	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rental fields", fields)
		return
	}

	rentalRec, err := h.service.CreateRental(c.Request.Context(), c.GetInt64("owner_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rental dates")
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.Is(err, ErrRoomUnavailable):
			response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is no longer vacant")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create rental")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"rental": rentalRec})
}

func (h *Handler) History(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	list, err := h.service.History(c.Request.Context(), roomID, c.GetInt64("owner_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rental history")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rentals": list})
}
