package subscription

import (
	"errors"
	"net/http"
	"strconv"

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
	subs := protected.Group("/subscriptions")
	{
		subs.POST("/channel/:channelId/toggle", h.Toggle)
		subs.GET("/channel/:channelId", h.Status)
		subs.GET("/channel/:channelId/subscribers", h.ListSubscribers)
		subs.GET("/channels", h.ListSubscribedChannels)
	}
}

func (h *Handler) Toggle(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	channelID, ok := channelParam(c)
	if !ok {
		return
	}

	result, err := h.service.Toggle(c.Request.Context(), callerID, channelID)
	if err != nil {
		if errors.Is(err, ErrChannelNotFound) {
			response.Error(c, http.StatusNotFound, "CHANNEL_NOT_FOUND", "Channel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "TOGGLE_FAILED", "Failed to toggle subscription")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Status(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	channelID, ok := channelParam(c)
	if !ok {
		return
	}

	subscribed, err := h.service.IsSubscribed(c.Request.Context(), callerID, channelID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load subscription status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subscribed": subscribed})
}

func (h *Handler) ListSubscribers(c *gin.Context) {
	channelID, ok := channelParam(c)
	if !ok {
		return
	}

	subscribers, err := h.service.ListSubscribers(c.Request.Context(), channelID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list subscribers")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subscribers": subscribers})
}

func (h *Handler) ListSubscribedChannels(c *gin.Context) {
	callerID := c.GetInt64("user_id")

	channels, err := h.service.ListSubscribedChannels(c.Request.Context(), callerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list channels")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"channels": channels})
}

func channelParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("channelId"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid channel id")
		return 0, false
	}
	return id, true
}
