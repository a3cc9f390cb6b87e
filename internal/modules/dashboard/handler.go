package dashboard

import (
	"net/http"

	"github.com/MashookhKhanlol/youtube-clone/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	dash := protected.Group("/dashboard")
	{
		dash.GET("/stats", h.GetStats)
		dash.GET("/videos", h.GetVideos)
	}
}

func (h *Handler) GetStats(c *gin.Context) {
	callerID := c.GetInt64("user_id")

	stats, err := h.service.GetChannelStats(c.Request.Context(), callerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load channel stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) GetVideos(c *gin.Context) {
	callerID := c.GetInt64("user_id")

	videos, err := h.service.GetChannelVideos(c.Request.Context(), callerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load channel videos")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"videos": videos})
}
