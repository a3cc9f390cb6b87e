package playlist

import (
	"context"
	"errors"
	"strings"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
	"github.com/MashookhKhanlol/youtube-clone/internal/pkg/ownership"

	"gorm.io/gorm"
)

type Service struct {
	playlists PlaylistRepositoryInterface
	videos    VideoReader
}

func NewService(playlists PlaylistRepositoryInterface, videos VideoReader) *Service {
	return &Service{playlists: playlists, videos: videos}
}

func (s *Service) Create(ctx context.Context, callerID int64, req CreateRequest) (*domain.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}

	p := &domain.Playlist{
		OwnerID:     callerID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.playlists.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, callerID, playlistID int64, req UpdateRequest) (*domain.Playlist, error) {
	p, err := s.mustOwn(ctx, callerID, playlistID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if name := strings.TrimSpace(req.Name); name != "" {
		fields["name"] = name
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		fields["description"] = desc
	}
	if len(fields) == 0 {
		return nil, ErrValidation
	}

	if err := s.playlists.UpdateFields(ctx, p.ID, fields); err != nil {
		return nil, err
	}
	return s.playlists.GetByID(ctx, p.ID)
}

func (s *Service) Delete(ctx context.Context, callerID, playlistID int64) error {
	p, err := s.mustOwn(ctx, callerID, playlistID)
	if err != nil {
		return err
	}
	return s.playlists.Delete(ctx, p.ID)
}

func (s *Service) Get(ctx context.Context, playlistID int64) (*domain.Playlist, error) {
	p, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListByUser(ctx context.Context, ownerID int64) ([]domain.Playlist, error) {
	return s.playlists.ListByOwner(ctx, ownerID)
}

// AddVideo puts a video into the caller's playlist. Adding a video that is
// already a member is a no-op, not a conflict.
func (s *Service) AddVideo(ctx context.Context, callerID, playlistID, videoID int64) error {
	p, err := s.mustOwn(ctx, callerID, playlistID)
	if err != nil {
		return err
	}

	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	return s.playlists.AddVideo(ctx, p.ID, videoID)
}

func (s *Service) RemoveVideo(ctx context.Context, callerID, playlistID, videoID int64) error {
	p, err := s.mustOwn(ctx, callerID, playlistID)
	if err != nil {
		return err
	}
	return s.playlists.RemoveVideo(ctx, p.ID, videoID)
}

func (s *Service) mustOwn(ctx context.Context, callerID, playlistID int64) (*domain.Playlist, error) {
	p, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := ownership.Require(callerID, p.OwnerID); err != nil {
		return nil, err
	}
	return p, nil
}
