package subscription

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Service struct {
	subscriptions SubscriptionRepositoryInterface
	users         UserReader
}

func NewService(subscriptions SubscriptionRepositoryInterface, users UserReader) *Service {
	return &Service{subscriptions: subscriptions, users: users}
}

// Toggle flips the caller's subscription to the channel and returns the
// resulting state with the fresh subscriber count. Subscribing to yourself
// is permitted.
func (s *Service) Toggle(ctx context.Context, callerID, channelID int64) (*ToggleResult, error) {
	if _, err := s.users.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	subscribed, err := s.subscriptions.Toggle(ctx, callerID, channelID)
	if err != nil {
		return nil, err
	}
	count, err := s.subscriptions.CountSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Subscribed: subscribed, SubscriberCount: count}, nil
}

func (s *Service) IsSubscribed(ctx context.Context, callerID, channelID int64) (bool, error) {
	return s.subscriptions.Exists(ctx, callerID, channelID)
}

// ListSubscribers returns who follows the channel, newest first.
func (s *Service) ListSubscribers(ctx context.Context, channelID int64) ([]SubscriberSummary, error) {
	subs, err := s.subscriptions.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}

	result := make([]SubscriberSummary, 0, len(subs))
	for _, sub := range subs {
		if sub.Subscriber == nil {
			continue
		}
		result = append(result, SubscriberSummary{
			Subscriber:   sub.Subscriber.Summary(),
			SubscribedAt: sub.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

// ListSubscribedChannels returns the channels the user follows, newest first.
func (s *Service) ListSubscribedChannels(ctx context.Context, subscriberID int64) ([]ChannelSummary, error) {
	subs, err := s.subscriptions.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, err
	}

	result := make([]ChannelSummary, 0, len(subs))
	for _, sub := range subs {
		if sub.Channel == nil {
			continue
		}
		result = append(result, ChannelSummary{
			Channel:      sub.Channel.Summary(),
			SubscribedAt: sub.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}
