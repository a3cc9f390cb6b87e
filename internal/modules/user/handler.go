package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MashookhKhanlol/youtube-clone/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	storage ObjectStorage
}

func NewHandler(service *Service, storage ObjectStorage) *Handler {
	return &Handler{service: service, storage: storage}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", h.GetMe)
		userGroup.PATCH("/me", h.UpdateProfile)
		userGroup.PATCH("/me/avatar", h.UpdateAvatar)
		userGroup.PATCH("/me/cover", h.UpdateCoverImage)
		userGroup.GET("/me/history", h.GetWatchHistory)
	}
	protected.GET("/channels/:username", h.GetChannelProfile)
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	u, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Nothing to update")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", "avatars", h.service.UpdateAvatar)
}

func (h *Handler) UpdateCoverImage(c *gin.Context) {
	h.updateImage(c, "cover_image", "covers", h.service.UpdateCoverImage)
}

func (h *Handler) GetChannelProfile(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	username := c.Param("username")

	profile, err := h.service.GetChannelProfile(c.Request.Context(), username, callerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "CHANNEL_NOT_FOUND", "No channel with this username")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load channel profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"channel": profile})
}

func (h *Handler) GetWatchHistory(c *gin.Context) {
	userID := c.GetInt64("user_id")

	items, err := h.service.GetWatchHistory(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load watch history")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"history": items})
}

func (h *Handler) updateImage(c *gin.Context, field, prefix string, persist func(ctx context.Context, userID int64, url string) error) {
	userID := c.GetInt64("user_id")

	fileHeader, err := c.FormFile(field)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", fmt.Sprintf("Missing %s file", field))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FILE", "Could not read uploaded file")
		return
	}
	defer file.Close()

	key := fmt.Sprintf("%s/%d_%s", prefix, time.Now().UnixNano(), fileHeader.Filename)
	url, err := h.storage.Save(c.Request.Context(), key, file)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to upload file")
		return
	}

	if err := persist(c.Request.Context(), userID, url); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to save file reference")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"url": url})
}
