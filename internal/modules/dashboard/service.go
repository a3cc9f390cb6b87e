package dashboard

import (
	"context"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
)

type Service struct {
	videos        VideoStatsReader
	likes         LikeStatsReader
	subscriptions SubscriptionStatsReader
}

func NewService(videos VideoStatsReader, likes LikeStatsReader, subscriptions SubscriptionStatsReader) *Service {
	return &Service{
		videos:        videos,
		likes:         likes,
		subscriptions: subscriptions,
	}
}

func (s *Service) GetChannelStats(ctx context.Context, channelID int64) (*ChannelStats, error) {
	totalVideos, err := s.videos.CountByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}
	totalViews, err := s.videos.TotalViewsByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}
	totalSubscribers, err := s.subscriptions.CountSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	totalLikes, err := s.likes.CountForOwnerVideos(ctx, channelID)
	if err != nil {
		return nil, err
	}

	return &ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
		TotalLikes:       totalLikes,
	}, nil
}

// GetChannelVideos lists every video the channel owns, published or not,
// with per-video view and like counters.
func (s *Service) GetChannelVideos(ctx context.Context, channelID int64) ([]ChannelVideo, error) {
	videos, err := s.videos.ListByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}

	result := make([]ChannelVideo, 0, len(videos))
	for _, v := range videos {
		viewCount, err := s.videos.ViewCount(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		likeCount, err := s.likes.Count(ctx, domain.LikeTargetVideo, v.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, ChannelVideo{Video: v, ViewCount: viewCount, LikeCount: likeCount})
	}
	return result, nil
}
