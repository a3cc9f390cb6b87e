package repository

import (
	"context"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Toggle removes the (subscriber, channel) row when present, inserts it
// otherwise, and reports the resulting subscribed state. The unique index
// resolves concurrent toggles deterministically.
func (r *SubscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&domain.Subscription{})
	if tx.Error != nil {
		return false, tx.Error
	}
	if tx.RowsAffected > 0 {
		return false, nil
	}

	sub := &domain.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		if IsUniqueViolation(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (r *SubscriptionRepository) Exists(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	var sub domain.Subscription
	tx := r.db.WithContext(ctx).
		Select("id").
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Limit(1).
		Find(&sub)
	if tx.Error != nil {
		return false, tx.Error
	}
	return sub.ID != 0, nil
}

func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channelID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channelID int64) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	err := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Preload("Subscriber").
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID int64) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	err := r.db.WithContext(ctx).
		Where("subscriber_id = ?", subscriberID).
		Preload("Channel").
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

// SubscriberIDs returns just the ids of a channel's subscribers, used by the
// live feed to fan out publish events.
func (r *SubscriptionRepository) SubscriberIDs(ctx context.Context, channelID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("channel_id = ?", channelID).
		Pluck("subscriber_id", &ids).Error
	return ids, err
}
