package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	users         UserRepositoryInterface
	subscriptions SubscriptionReader
	history       WatchHistoryReader
}

func NewService(users UserRepositoryInterface, subscriptions SubscriptionReader, history WatchHistoryReader) *Service {
	return &Service{
		users:         users,
		subscriptions: subscriptions,
		history:       history,
	}
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.PasswordHash = ""
	u.RefreshTokenHash = nil
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	fields := map[string]any{}
	if v := strings.TrimSpace(req.FullName); v != "" {
		fields["full_name"] = v
	}
	if v := strings.ToLower(strings.TrimSpace(req.Email)); v != "" {
		fields["email"] = v
	}
	if len(fields) == 0 {
		return nil, ErrValidation
	}

	if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}
	return s.GetCurrentUser(ctx, userID)
}

func (s *Service) UpdateAvatar(ctx context.Context, userID int64, url string) error {
	return s.users.UpdateFields(ctx, userID, map[string]any{"avatar_url": url})
}

func (s *Service) UpdateCoverImage(ctx context.Context, userID int64, url string) error {
	return s.users.UpdateFields(ctx, userID, map[string]any{"cover_image_url": url})
}

// GetChannelProfile composes the public channel view: profile fields plus
// subscriber counts and whether the caller is subscribed. A channel with
// zero subscribers is a normal result.
func (s *Service) GetChannelProfile(ctx context.Context, username string, callerID int64) (*ChannelProfile, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	subscribers, err := s.subscriptions.CountSubscribers(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	subscribedTo, err := s.subscriptions.CountSubscribedTo(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	isSubscribed, err := s.subscriptions.Exists(ctx, callerID, u.ID)
	if err != nil {
		return nil, err
	}

	return &ChannelProfile{
		ID:                u.ID,
		Username:          u.Username,
		FullName:          u.FullName,
		Email:             u.Email,
		AvatarURL:         u.AvatarURL,
		CoverImageURL:     u.CoverImageURL,
		SubscriberCount:   subscribers,
		SubscribedToCount: subscribedTo,
		IsSubscribed:      isSubscribed,
	}, nil
}

// GetWatchHistory returns the caller's history most-recent-first, each video
// expanded with its owner's summary.
func (s *Service) GetWatchHistory(ctx context.Context, userID int64) ([]WatchHistoryItem, error) {
	watched, err := s.history.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]WatchHistoryItem, 0, len(watched))
	for _, w := range watched {
		items = append(items, WatchHistoryItem{
			Video:     w.Video,
			Owner:     w.Owner,
			WatchedAt: w.WatchedAt.Format(time.RFC3339),
		})
	}
	return items, nil
}
