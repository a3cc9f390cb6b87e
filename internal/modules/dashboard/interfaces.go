package dashboard

import (
	"context"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
)

type VideoStatsReader interface {
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
	TotalViewsByOwner(ctx context.Context, ownerID int64) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Video, error)
	ViewCount(ctx context.Context, videoID int64) (int64, error)
}

type LikeStatsReader interface {
	CountForOwnerVideos(ctx context.Context, ownerID int64) (int64, error)
	Count(ctx context.Context, target domain.LikeTarget, targetID int64) (int64, error)
}

type SubscriptionStatsReader interface {
	CountSubscribers(ctx context.Context, channelID int64) (int64, error)
}
