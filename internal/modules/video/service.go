package video

import (
	"context"
	"errors"
	"strings"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
	"github.com/MashookhKhanlol/youtube-clone/internal/pkg/ownership"
	"github.com/MashookhKhanlol/youtube-clone/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	videos   VideoRepositoryInterface
	likes    LikeReader
	history  WatchHistoryRecorder
	notifier Notifier
}

func NewService(videos VideoRepositoryInterface, likes LikeReader, history WatchHistoryRecorder, notifier Notifier) *Service {
	return &Service{
		videos:   videos,
		likes:    likes,
		history:  history,
		notifier: notifier,
	}
}

// PublishInput carries the already-uploaded asset URLs; the handler owns the
// multipart handling and storage calls.
type PublishInput struct {
	Title        string
	Description  string
	Duration     float64
	VideoURL     string
	ThumbnailURL string
}

func (s *Service) Publish(ctx context.Context, ownerID int64, in PublishInput) (*domain.Video, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || in.VideoURL == "" {
		return nil, ErrValidation
	}

	v := &domain.Video{
		OwnerID:      ownerID,
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		VideoURL:     in.VideoURL,
		ThumbnailURL: in.ThumbnailURL,
		Duration:     in.Duration,
		IsPublished:  true,
	}
	if err := s.videos.Create(ctx, v); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.VideoPublished(v)
	}
	return v, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	videos, total, err := s.videos.List(ctx, repository.VideoFilter{
		Query:         q.Query,
		OwnerID:       q.OwnerID,
		OnlyPublished: true,
		SortBy:        q.SortBy,
		SortDesc:      q.SortDesc,
		Limit:         limit,
		Offset:        (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListResult{Videos: videos, Total: total, Page: page, Limit: limit}, nil
}

// Get loads the expanded video view and registers the visit: a distinct view
// row plus a watch history entry for the caller. An unpublished video is
// visible only to its owner and reads as absent to everyone else.
func (s *Service) Get(ctx context.Context, videoID, callerID int64) (*Detail, error) {
	v, err := s.videos.GetByIDWithOwner(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !v.IsPublished && v.OwnerID != callerID {
		return nil, ErrNotFound
	}

	if err := s.videos.AddView(ctx, videoID, callerID); err != nil {
		return nil, err
	}
	if err := s.history.Record(ctx, callerID, videoID); err != nil {
		return nil, err
	}

	viewCount, err := s.videos.ViewCount(ctx, videoID)
	if err != nil {
		return nil, err
	}
	likeCount, err := s.likes.Count(ctx, domain.LikeTargetVideo, videoID)
	if err != nil {
		return nil, err
	}
	isLiked, err := s.likes.Exists(ctx, callerID, domain.LikeTargetVideo, videoID)
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		ViewCount: viewCount,
		LikeCount: likeCount,
		IsLiked:   isLiked,
	}
	if v.Owner != nil {
		detail.Owner = v.Owner.Summary()
		v.Owner = nil
	}
	detail.Video = *v
	return detail, nil
}

func (s *Service) UpdateDetails(ctx context.Context, callerID, videoID int64, req UpdateDetailsRequest) (*domain.Video, error) {
	v, err := s.mustOwn(ctx, callerID, videoID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if t := strings.TrimSpace(req.Title); t != "" {
		fields["title"] = t
	}
	if d := strings.TrimSpace(req.Description); d != "" {
		fields["description"] = d
	}
	if len(fields) == 0 {
		return nil, ErrValidation
	}

	if err := s.videos.UpdateFields(ctx, v.ID, fields); err != nil {
		return nil, err
	}
	return s.videos.GetByID(ctx, v.ID)
}

func (s *Service) UpdateThumbnail(ctx context.Context, callerID, videoID int64, url string) (*domain.Video, error) {
	v, err := s.mustOwn(ctx, callerID, videoID)
	if err != nil {
		return nil, err
	}
	if err := s.videos.UpdateFields(ctx, v.ID, map[string]any{"thumbnail_url": url}); err != nil {
		return nil, err
	}
	return s.videos.GetByID(ctx, v.ID)
}

func (s *Service) Delete(ctx context.Context, callerID, videoID int64) error {
	v, err := s.mustOwn(ctx, callerID, videoID)
	if err != nil {
		return err
	}
	return s.videos.Delete(ctx, v.ID)
}

// TogglePublishStatus flips visibility and returns the new state.
func (s *Service) TogglePublishStatus(ctx context.Context, callerID, videoID int64) (bool, error) {
	v, err := s.mustOwn(ctx, callerID, videoID)
	if err != nil {
		return false, err
	}

	next := !v.IsPublished
	if err := s.videos.UpdateFields(ctx, v.ID, map[string]any{"is_published": next}); err != nil {
		return false, err
	}
	return next, nil
}

func (s *Service) mustOwn(ctx context.Context, callerID, videoID int64) (*domain.Video, error) {
	v, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := ownership.Require(callerID, v.OwnerID); err != nil {
		return nil, err
	}
	return v, nil
}
