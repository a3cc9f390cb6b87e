package video

import (
	"context"
	"io"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
	"github.com/MashookhKhanlol/youtube-clone/internal/repository"
)

type VideoRepositoryInterface interface {
	Create(ctx context.Context, v *domain.Video) error
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
	GetByIDWithOwner(ctx context.Context, id int64) (*domain.Video, error)
	UpdateFields(ctx context.Context, videoID int64, fields map[string]any) error
	Delete(ctx context.Context, videoID int64) error
	List(ctx context.Context, f repository.VideoFilter) ([]domain.Video, int64, error)
	AddView(ctx context.Context, videoID, userID int64) error
	ViewCount(ctx context.Context, videoID int64) (int64, error)
}

type LikeReader interface {
	Count(ctx context.Context, target domain.LikeTarget, targetID int64) (int64, error)
	Exists(ctx context.Context, userID int64, target domain.LikeTarget, targetID int64) (bool, error)
}

type WatchHistoryRecorder interface {
	Record(ctx context.Context, userID, videoID int64) error
}

// Notifier receives publication events for fan-out to subscribers.
type Notifier interface {
	VideoPublished(video *domain.Video)
}

type ObjectStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
