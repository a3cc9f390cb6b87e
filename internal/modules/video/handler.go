package video

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/MashookhKhanlol/youtube-clone/internal/pkg/ownership"
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
	videos := protected.Group("/videos")
	{
		videos.GET("", h.List)
		videos.POST("", h.Publish)
		videos.GET("/:id", h.Get)
		videos.PATCH("/:id", h.UpdateDetails)
		videos.PATCH("/:id/thumbnail", h.UpdateThumbnail)
		videos.DELETE("/:id", h.Delete)
		videos.PATCH("/:id/toggle-publish", h.TogglePublish)
	}
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list videos")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Publish(c *gin.Context) {
	callerID := c.GetInt64("user_id")

	var req PublishRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title is required")
		return
	}

	videoURL, ok := h.uploadFormFile(c, "video_file", "videos")
	if !ok {
		return
	}
	if videoURL == "" {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "Missing video_file")
		return
	}
	thumbnailURL, ok := h.uploadFormFile(c, "thumbnail", "thumbnails")
	if !ok {
		return
	}

	v, err := h.service.Publish(c.Request.Context(), callerID, PublishInput{
		Title:        req.Title,
		Description:  req.Description,
		Duration:     req.Duration,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
	})
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title and video file are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PUBLISH_FAILED", "Failed to publish video")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"video": v})
}

func (h *Handler) Get(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	videoID, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), videoID, callerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "VIDEO_NOT_FOUND", "Video not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load video")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) UpdateDetails(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	videoID, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.UpdateDetails(c.Request.Context(), callerID, videoID, req)
	if err != nil {
		h.writeMutationError(c, err, "Could not update video")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"video": v})
}

func (h *Handler) UpdateThumbnail(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	videoID, ok := pathID(c)
	if !ok {
		return
	}

	url, ok := h.uploadFormFile(c, "thumbnail", "thumbnails")
	if !ok {
		return
	}
	if url == "" {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "Missing thumbnail file")
		return
	}

	v, err := h.service.UpdateThumbnail(c.Request.Context(), callerID, videoID, url)
	if err != nil {
		h.writeMutationError(c, err, "Could not update thumbnail")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"video": v})
}

func (h *Handler) Delete(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	videoID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), callerID, videoID); err != nil {
		h.writeMutationError(c, err, "Could not delete video")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) TogglePublish(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	videoID, ok := pathID(c)
	if !ok {
		return
	}

	published, err := h.service.TogglePublishStatus(c.Request.Context(), callerID, videoID)
	if err != nil {
		h.writeMutationError(c, err, "Could not toggle publish status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"is_published": published})
}

func (h *Handler) writeMutationError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "VIDEO_NOT_FOUND", "Video not found")
	case errors.Is(err, ownership.ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this video")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Nothing to update")
	default:
		response.Error(c, http.StatusInternalServerError, "MUTATION_FAILED", fallback)
	}
}

// uploadFormFile streams an optional multipart file to object storage.
// Returns ("", true) when the field is absent; a false second value means the
// response has already been written.
func (h *Handler) uploadFormFile(c *gin.Context, field, prefix string) (string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", true
	}

	url, err := h.saveUpload(c, fileHeader, prefix)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", fmt.Sprintf("Failed to upload %s", field))
		return "", false
	}
	return url, true
}

func (h *Handler) saveUpload(c *gin.Context, fileHeader *multipart.FileHeader, prefix string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	key := fmt.Sprintf("%s/%d_%s", prefix, time.Now().UnixNano(), fileHeader.Filename)
	return h.storage.Save(c.Request.Context(), key, file)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
