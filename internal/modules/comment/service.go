package comment

import (
	"context"
	"errors"
	"strings"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
	"github.com/MashookhKhanlol/youtube-clone/internal/pkg/ownership"

	"gorm.io/gorm"
)

type Service struct {
	comments CommentRepositoryInterface
	videos   VideoReader
}

func NewService(comments CommentRepositoryInterface, videos VideoReader) *Service {
	return &Service{comments: comments, videos: videos}
}

func (s *Service) Add(ctx context.Context, callerID, videoID int64, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrValidation
	}

	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	c := &domain.Comment{
		OwnerID: callerID,
		VideoID: videoID,
		Content: content,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, callerID, commentID int64, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrValidation
	}

	c, err := s.mustOwn(ctx, callerID, commentID)
	if err != nil {
		return nil, err
	}

	if err := s.comments.UpdateContent(ctx, c.ID, content); err != nil {
		return nil, err
	}
	c.Content = content
	return c, nil
}

func (s *Service) Delete(ctx context.Context, callerID, commentID int64) error {
	c, err := s.mustOwn(ctx, callerID, commentID)
	if err != nil {
		return err
	}
	return s.comments.Delete(ctx, c.ID)
}

func (s *Service) ListByVideo(ctx context.Context, videoID int64, q ListQuery) (*ListResult, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	comments, total, err := s.comments.ListByVideo(ctx, videoID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return &ListResult{Comments: comments, Total: total, Page: page, Limit: limit}, nil
}

func (s *Service) mustOwn(ctx context.Context, callerID, commentID int64) (*domain.Comment, error) {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := ownership.Require(callerID, c.OwnerID); err != nil {
		return nil, err
	}
	return c, nil
}
