package tweet

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
	tweets := protected.Group("/tweets")
	{
		tweets.GET("", h.ListAll)
		tweets.POST("", h.Create)
		tweets.PATCH("/:id", h.Update)
		tweets.DELETE("/:id", h.Delete)
		tweets.GET("/user/:userId", h.ListByUser)
	}
}

func (h *Handler) Create(c *gin.Context) {
	callerID := c.GetInt64("user_id")

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Content is required")
		return
	}

	t, err := h.service.Create(c.Request.Context(), callerID, req.Content)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Content is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create tweet")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"tweet": t})
}

func (h *Handler) Update(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	tweetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Content is required")
		return
	}

	t, err := h.service.Update(c.Request.Context(), callerID, tweetID, req.Content)
	if err != nil {
		h.writeMutationError(c, err, "Failed to update tweet")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tweet": t})
}

func (h *Handler) Delete(c *gin.Context) {
	callerID := c.GetInt64("user_id")
	tweetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), callerID, tweetID); err != nil {
		h.writeMutationError(c, err, "Failed to delete tweet")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListByUser(c *gin.Context) {
	ownerID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	tweets, err := h.service.ListByUser(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list tweets")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tweets": tweets})
}

func (h *Handler) ListAll(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	tweets, err := h.service.ListAll(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list tweets")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tweets": tweets})
}

func (h *Handler) writeMutationError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "TWEET_NOT_FOUND", "Tweet not found")
	case errors.Is(err, ownership.ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this tweet")
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
