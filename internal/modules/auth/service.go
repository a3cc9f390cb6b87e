package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
	"github.com/MashookhKhanlol/youtube-clone/internal/pkg/jwt"
	"github.com/MashookhKhanlol/youtube-clone/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type tokenService interface {
	GenerateAccessToken(userID int64) (string, error)
	GenerateRefreshToken(userID int64) (string, error)
	ValidateRefreshToken(tokenStr string) (*jwt.RefreshClaims, error)
}

// Service owns credential verification and the session token lifecycle:
// issuing the access/refresh pair, rotating it, and revoking it. The hash
// of the single live refresh token is stored on the user row; rotation is
// a compare-and-swap against that value.
type Service struct {
	users  UserRepositoryInterface
	tokens tokenService
	pepper string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func NewService(users UserRepositoryInterface, tokens tokenService, refreshTokenPepper string) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		pepper: refreshTokenPepper,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	// normalize once so the duplicate pre-check matches the key the unique
	// indexes enforce
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:      username,
		Email:         email,
		FullName:      strings.TrimSpace(req.FullName),
		PasswordHash:  hashed,
		AvatarURL:     req.AvatarURL,
		CoverImageURL: req.CoverImageURL,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// a concurrent registration can slip past the exists check; the
		// unique indexes on username/email are the arbiter
		if repository.IsUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.IssueTokenPair(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	user.RefreshTokenHash = nil
	return &LoginResult{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// IssueTokenPair mints a fresh access/refresh pair and persists the refresh
// hash on the user row, superseding whatever session existed before.
func (s *Service) IssueTokenPair(ctx context.Context, userID int64) (*TokenPair, error) {
	accessToken, err := s.tokens.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	hash := s.hashRefreshToken(refreshToken)
	if err := s.users.SetRefreshTokenHash(ctx, userID, &hash); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Rotate trades a live refresh token for a new pair. The swap is a single
// conditional update against the stored hash, so a superseded or revoked
// token loses: at most one of any set of concurrent rotations succeeds,
// the rest observe ErrUnauthorized.
func (s *Service) Rotate(ctx context.Context, refreshRaw string) (*TokenPair, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshRaw)
	if err != nil {
		return nil, ErrUnauthorized
	}

	newRefresh, err := s.tokens.GenerateRefreshToken(claims.UserID)
	if err != nil {
		return nil, err
	}
	newAccess, err := s.tokens.GenerateAccessToken(claims.UserID)
	if err != nil {
		return nil, err
	}

	oldHash := s.hashRefreshToken(refreshRaw)
	newHash := s.hashRefreshToken(newRefresh)

	swapped, err := s.users.SwapRefreshTokenHash(ctx, claims.UserID, oldHash, newHash)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, ErrUnauthorized
	}

	return &TokenPair{AccessToken: newAccess, RefreshToken: newRefresh}, nil
}

// Revoke clears the stored refresh hash; every outstanding refresh token is
// dead until the next login.
func (s *Service) Revoke(ctx context.Context, userID int64) error {
	return s.users.SetRefreshTokenHash(ctx, userID, nil)
}

func (s *Service) ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := s.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	// targeted update: a password change never touches other columns
	return s.users.UpdateFields(ctx, userID, map[string]any{"password_hash": hashed})
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *Service) hashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw + s.pepper))
	return hex.EncodeToString(sum[:])
}
