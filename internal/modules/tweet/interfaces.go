package tweet

import (
	"context"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
)

type TweetRepositoryInterface interface {
	Create(ctx context.Context, t *domain.Tweet) error
	GetByID(ctx context.Context, id int64) (*domain.Tweet, error)
	UpdateContent(ctx context.Context, tweetID int64, content string) error
	Delete(ctx context.Context, tweetID int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Tweet, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Tweet, error)
}
