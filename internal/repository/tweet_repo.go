package repository

import (
	"context"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"

	"gorm.io/gorm"
)

type TweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) Create(ctx context.Context, t *domain.Tweet) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TweetRepository) GetByID(ctx context.Context, id int64) (*domain.Tweet, error) {
	var t domain.Tweet
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, tweetID int64, content string) error {
	return r.db.WithContext(ctx).Model(&domain.Tweet{}).
		Where("id = ?", tweetID).
		Update("content", content).Error
}

func (r *TweetRepository) Delete(ctx context.Context, tweetID int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Tweet{}, tweetID).Error
}

func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Tweet, error) {
	var tweets []domain.Tweet
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tweets).Error
	return tweets, err
}

func (r *TweetRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Tweet, error) {
	q := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var tweets []domain.Tweet
	err := q.Find(&tweets).Error
	return tweets, err
}
