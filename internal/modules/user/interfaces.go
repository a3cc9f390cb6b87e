package user

import (
	"context"
	"io"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
	"github.com/MashookhKhanlol/youtube-clone/internal/repository"
)

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateFields(ctx context.Context, userID int64, fields map[string]any) error
}

type SubscriptionReader interface {
	CountSubscribers(ctx context.Context, channelID int64) (int64, error)
	CountSubscribedTo(ctx context.Context, subscriberID int64) (int64, error)
	Exists(ctx context.Context, subscriberID, channelID int64) (bool, error)
}

type WatchHistoryReader interface {
	List(ctx context.Context, userID int64) ([]repository.WatchedVideo, error)
}

type ObjectStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
