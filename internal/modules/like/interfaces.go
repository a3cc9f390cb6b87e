package like

import (
	"context"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
)

type LikeRepositoryInterface interface {
	Toggle(ctx context.Context, userID int64, target domain.LikeTarget, targetID int64) (bool, error)
	Exists(ctx context.Context, userID int64, target domain.LikeTarget, targetID int64) (bool, error)
	Count(ctx context.Context, target domain.LikeTarget, targetID int64) (int64, error)
	ListLikedVideos(ctx context.Context, userID int64) ([]domain.Video, error)
}

type VideoReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
}

type CommentReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
}

type TweetReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Tweet, error)
}
