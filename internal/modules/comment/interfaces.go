package comment

import (
	"context"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
)

type CommentRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	UpdateContent(ctx context.Context, commentID int64, content string) error
	Delete(ctx context.Context, commentID int64) error
	ListByVideo(ctx context.Context, videoID int64, limit, offset int) ([]domain.Comment, int64, error)
}

type VideoReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
}
