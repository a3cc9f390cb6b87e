package subscription

import (
	"context"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
)

type SubscriptionRepositoryInterface interface {
	Toggle(ctx context.Context, subscriberID, channelID int64) (bool, error)
	Exists(ctx context.Context, subscriberID, channelID int64) (bool, error)
	CountSubscribers(ctx context.Context, channelID int64) (int64, error)
	ListSubscribers(ctx context.Context, channelID int64) ([]domain.Subscription, error)
	ListSubscribedChannels(ctx context.Context, subscriberID int64) ([]domain.Subscription, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
