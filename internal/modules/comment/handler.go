package comment

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
	protected.GET("/videos/:id/comments", h.ListByVideo)
	protected.POST("/videos/:id/comments", h.Add)
	protected.PATCH("/comments/:id", h.Update)
	protected.DELETE("/comments/:id", h.Delete)
}

func (h *Handler) Add(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Content is required")
		return
	}

	created, err := h.service.Add(c.Request.Context(), callerID, videoID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Content is required")
		case errors.Is(err, ErrVideoNotFound):
			response.Error(c, http.StatusNotFound, "VIDEO_NOT_FOUND", "Video not found")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to add comment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"comment": created})
}

func (h *Handler) Update(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Content is required")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), callerID, commentID, req.Content)
	if err != nil {
		h.writeMutationError(c, err, "Failed to update comment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"comment": updated})
}

func (h *Handler) Delete(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), callerID, commentID); err != nil {
		h.writeMutationError(c, err, "Failed to delete comment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListByVideo(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	result, err := h.service.ListByVideo(c.Request.Context(), videoID, q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list comments")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) writeMutationError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "COMMENT_NOT_FOUND", "Comment not found")
	case errors.Is(err, ownership.ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this comment")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Content is required")
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
