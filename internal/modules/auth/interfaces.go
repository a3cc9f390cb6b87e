package auth

import (
	"context"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
)

// UserRepositoryInterface is the slice of the user repository the auth
// service needs.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateFields(ctx context.Context, userID int64, fields map[string]any) error
	SetRefreshTokenHash(ctx context.Context, userID int64, hash *string) error
	SwapRefreshTokenHash(ctx context.Context, userID int64, oldHash, newHash string) (bool, error)
}
