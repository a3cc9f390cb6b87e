package like

import (
	"context"
	"errors"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	likes    LikeRepositoryInterface
	videos   VideoReader
	comments CommentReader
	tweets   TweetReader
}

func NewService(likes LikeRepositoryInterface, videos VideoReader, comments CommentReader, tweets TweetReader) *Service {
	return &Service{
		likes:    likes,
		videos:   videos,
		comments: comments,
		tweets:   tweets,
	}
}

// Toggle flips the caller's like on the target and returns the resulting
// state with the fresh count. The target must exist; liking your own content
// is allowed.
func (s *Service) Toggle(ctx context.Context, callerID int64, target domain.LikeTarget, targetID int64) (*ToggleResult, error) {
	if err := s.checkTarget(ctx, target, targetID); err != nil {
		return nil, err
	}

	liked, err := s.likes.Toggle(ctx, callerID, target, targetID)
	if err != nil {
		return nil, err
	}
	count, err := s.likes.Count(ctx, target, targetID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Liked: liked, LikeCount: count}, nil
}

func (s *Service) IsLiked(ctx context.Context, callerID int64, target domain.LikeTarget, targetID int64) (bool, error) {
	return s.likes.Exists(ctx, callerID, target, targetID)
}

func (s *Service) LikeCount(ctx context.Context, target domain.LikeTarget, targetID int64) (int64, error) {
	return s.likes.Count(ctx, target, targetID)
}

func (s *Service) ListLikedVideos(ctx context.Context, callerID int64) ([]LikedVideo, error) {
	videos, err := s.likes.ListLikedVideos(ctx, callerID)
	if err != nil {
		return nil, err
	}

	result := make([]LikedVideo, 0, len(videos))
	for _, v := range videos {
		item := LikedVideo{}
		if v.Owner != nil {
			item.Owner = v.Owner.Summary()
			v.Owner = nil
		}
		item.Video = v
		result = append(result, item)
	}
	return result, nil
}

func (s *Service) checkTarget(ctx context.Context, target domain.LikeTarget, targetID int64) error {
	var err error
	switch target {
	case domain.LikeTargetVideo:
		_, err = s.videos.GetByID(ctx, targetID)
	case domain.LikeTargetComment:
		_, err = s.comments.GetByID(ctx, targetID)
	case domain.LikeTargetTweet:
		_, err = s.tweets.GetByID(ctx, targetID)
	default:
		return ErrValidation
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTargetNotFound
		}
		return err
	}
	return nil
}
