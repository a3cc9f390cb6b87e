package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/MashookhKhanlol/youtube-clone/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// ObjectStorage uploads a payload and returns its durable public URL.
type ObjectStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// Handler manages all HTTP interactions for registration and sessions.
type Handler struct {
	service *Service
	storage ObjectStorage
}

func NewHandler(service *Service, storage ObjectStorage) *Handler {
	return &Handler{service: service, storage: storage}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.POST("/logout", h.Logout)
		authGroup.POST("/change-password", h.ChangePassword)
	}
}

// Register creates an account from a multipart form. Avatar and cover image
// files are optional; when present they are streamed to object storage and
// only the returned URLs are persisted.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if avatarURL, ok := h.uploadFormFile(c, "avatar", "avatars"); ok {
		req.AvatarURL = avatarURL
	} else if c.IsAborted() {
		return
	}
	if coverURL, ok := h.uploadFormFile(c, "cover_image", "covers"); ok {
		req.CoverImageURL = coverURL
	} else if c.IsAborted() {
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			response.Error(c, http.StatusConflict, "USER_EXISTS", "Username or email is already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "No account matches this username or email")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Password is incorrect")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":          result.User,
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
	})
}

// Refresh rotates the refresh token: the presented token must match the one
// stored server-side, and is dead after this call whether it wins or loses.
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pair, err := h.service.Rotate(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Refresh token is expired or has been used")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REFRESH_FAILED", "Failed to refresh session")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.service.Revoke(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to logout")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, req); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Old password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PASSWORD_CHANGE_FAILED", "Failed to change password")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// uploadFormFile streams an optional multipart file to object storage.
// Returns ("", true) when the field is absent; aborts the request with a
// storage error response when the upload itself fails.
func (h *Handler) uploadFormFile(c *gin.Context, field, prefix string) (string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", true
	}

	url, err := h.saveUpload(c, fileHeader, prefix)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", fmt.Sprintf("Failed to upload %s", field))
		c.Abort()
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
