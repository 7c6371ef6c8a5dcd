package dashboard

import (
	"net/http"

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
	rg.GET("/dashboard/stats", h.GetStats)
	rg.GET("/dashboard/revenue", h.GetRevenue)
	rg.GET("/dashboard/growth", h.GetGrowth)
	rg.GET("/dashboard/revenue/projection", h.GetProjection)
}

func (h *Handler) GetStats(c *gin.Context) {
	st, err := h.service.Stats(c.Request.Context(), c.GetInt64("owner_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": st})
}

func (h *Handler) GetRevenue(c *gin.Context) {
	g := Granularity(c.DefaultQuery("granularity", string(GranularityMonth)))
	switch g {
	case GranularityWeek, GranularityMonth, GranularityYear:
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "granularity must be week, month or year")
		return
	}

	points, err := h.service.Revenue(c.Request.Context(), c.GetInt64("owner_id"), g)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to aggregate revenue")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"granularity": g, "points": points})
}

func (h *Handler) GetGrowth(c *gin.Context) {
	points, err := h.service.GrowthSummary(c.Request.Context(), c.GetInt64("owner_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute growth")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"growth": points})
}

func (h *Handler) GetProjection(c *gin.Context) {
	buckets, err := h.service.MonthlyProjection(c.Request.Context(), c.GetInt64("owner_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load revenue projection")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"buckets": buckets})
}
