package like

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
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
	likes := protected.Group("/likes")
	{
		likes.POST("/video/:id/toggle", h.toggle(domain.LikeTargetVideo))
		likes.POST("/comment/:id/toggle", h.toggle(domain.LikeTargetComment))
		likes.POST("/tweet/:id/toggle", h.toggle(domain.LikeTargetTweet))
		likes.GET("/video/:id", h.status(domain.LikeTargetVideo))
		likes.GET("/comment/:id", h.status(domain.LikeTargetComment))
		likes.GET("/tweet/:id", h.status(domain.LikeTargetTweet))
		likes.GET("/videos", h.ListLikedVideos)
	}
}

func (h *Handler) toggle(target domain.LikeTarget) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetInt64("user_id")
		targetID, ok := pathID(c)
		if !ok {
			return
		}

		result, err := h.service.Toggle(c.Request.Context(), callerID, target, targetID)
		if err != nil {
			switch {
			case errors.Is(err, ErrTargetNotFound):
				response.Error(c, http.StatusNotFound, "TARGET_NOT_FOUND", "Nothing to like at this id")
			case errors.Is(err, ErrValidation):
				response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown like target")
			default:
				response.Error(c, http.StatusInternalServerError, "TOGGLE_FAILED", "Failed to toggle like")
			}
			return
		}

		response.Success(c, http.StatusOK, result)
	}
}

func (h *Handler) status(target domain.LikeTarget) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetInt64("user_id")
		targetID, ok := pathID(c)
		if !ok {
			return
		}

		liked, err := h.service.IsLiked(c.Request.Context(), callerID, target, targetID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load like status")
			return
		}
		count, err := h.service.LikeCount(c.Request.Context(), target, targetID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load like count")
			return
		}

		response.Success(c, http.StatusOK, ToggleResult{Liked: liked, LikeCount: count})
	}
}

func (h *Handler) ListLikedVideos(c *gin.Context) {
	callerID := c.GetInt64("user_id")

	videos, err := h.service.ListLikedVideos(c.Request.Context(), callerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list liked videos")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"videos": videos})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
