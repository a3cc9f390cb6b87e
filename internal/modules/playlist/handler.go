package playlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MashookhKhanlol/youtube-clone/internal/pkg/ownership"
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
	playlists := protected.Group("/playlists")
	{
		playlists.POST("", h.Create)
		playlists.GET("/:id", h.Get)
		playlists.PATCH("/:id", h.Update)
		playlists.DELETE("/:id", h.Delete)
		playlists.POST("/:id/videos/:videoId", h.AddVideo)
		playlists.DELETE("/:id/videos/:videoId", h.RemoveVideo)
		playlists.GET("/user/:userId", h.ListByUser)
	}
}

func (h *Handler) Create(c *gin.Context) {
	callerID := c.GetInt64("user_id")

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	p, err := h.service.Create(c.Request.Context(), callerID, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create playlist")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"playlist": p})
}

func (h *Handler) Get(c *gin.Context) {
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), playlistID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "PLAYLIST_NOT_FOUND", "Playlist not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load playlist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"playlist": p})
}

func (h *Handler) Update(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), callerID, playlistID, req)
	if err != nil {
		h.writeMutationError(c, err, "Failed to update playlist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"playlist": p})
}

func (h *Handler) Delete(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), callerID, playlistID); err != nil {
		h.writeMutationError(c, err, "Failed to delete playlist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) AddVideo(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	if err := h.service.AddVideo(c.Request.Context(), callerID, playlistID, videoID); err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			response.Error(c, http.StatusNotFound, "VIDEO_NOT_FOUND", "Video not found")
			return
		}
		h.writeMutationError(c, err, "Failed to add video to playlist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"added": true})
}

func (h *Handler) RemoveVideo(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	if err := h.service.RemoveVideo(c.Request.Context(), callerID, playlistID, videoID); err != nil {
		h.writeMutationError(c, err, "Failed to remove video from playlist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

func (h *Handler) ListByUser(c *gin.Context) {
	ownerID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	playlists, err := h.service.ListByUser(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list playlists")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"playlists": playlists})
}

func (h *Handler) writeMutationError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "PLAYLIST_NOT_FOUND", "Playlist not found")
	case errors.Is(err, ownership.ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this playlist")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Nothing to update")
	default:
		response.Error(c, http.StatusInternalServerError, "MUTATION_FAILED", fallback)
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
