package tweet

import (
	"context"
	"errors"
	"strings"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
	"github.com/MashookhKhanlol/youtube-clone/internal/pkg/ownership"

	"gorm.io/gorm"
)

type Service struct {
	tweets TweetRepositoryInterface
}

func NewService(tweets TweetRepositoryInterface) *Service {
	return &Service{tweets: tweets}
}

func (s *Service) Create(ctx context.Context, callerID int64, content string) (*domain.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrValidation
	}

	t := &domain.Tweet{OwnerID: callerID, Content: content}
	if err := s.tweets.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, callerID, tweetID int64, content string) (*domain.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrValidation
	}

	t, err := s.mustOwn(ctx, callerID, tweetID)
	if err != nil {
		return nil, err
	}

	if err := s.tweets.UpdateContent(ctx, t.ID, content); err != nil {
		return nil, err
	}
	t.Content = content
	return t, nil
}

func (s *Service) Delete(ctx context.Context, callerID, tweetID int64) error {
	t, err := s.mustOwn(ctx, callerID, tweetID)
	if err != nil {
		return err
	}
	return s.tweets.Delete(ctx, t.ID)
}

func (s *Service) ListByUser(ctx context.Context, ownerID int64) ([]domain.Tweet, error) {
	return s.tweets.ListByOwner(ctx, ownerID)
}

func (s *Service) ListAll(ctx context.Context, q ListQuery) ([]domain.Tweet, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.tweets.ListAll(ctx, limit, (page-1)*limit)
}

func (s *Service) mustOwn(ctx context.Context, callerID, tweetID int64) (*domain.Tweet, error) {
	t, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := ownership.Require(callerID, t.OwnerID); err != nil {
		return nil, err
	}
	return t, nil
}
