package playlist

import (
	"context"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
)

type PlaylistRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Playlist) error
	GetByID(ctx context.Context, id int64) (*domain.Playlist, error)
	UpdateFields(ctx context.Context, playlistID int64, fields map[string]any) error
	Delete(ctx context.Context, playlistID int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID int64) error
	RemoveVideo(ctx context.Context, playlistID, videoID int64) error
}

type VideoReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
}
