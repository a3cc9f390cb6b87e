package repository

import (
	"context"
	"fmt"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func likeColumn(target domain.LikeTarget) (string, error) {
	switch target {
	case domain.LikeTargetVideo:
		return "video_id", nil
	case domain.LikeTargetComment:
		return "comment_id", nil
	case domain.LikeTargetTweet:
		return "tweet_id", nil
	default:
		return "", fmt.Errorf("unknown like target %q", target)
	}
}

func newLike(userID int64, target domain.LikeTarget, targetID int64) *domain.Like {
	like := &domain.Like{UserID: userID}
	switch target {
	case domain.LikeTargetVideo:
		like.VideoID = &targetID
	case domain.LikeTargetComment:
		like.CommentID = &targetID
	case domain.LikeTargetTweet:
		like.TweetID = &targetID
	}
	return like
}

// Toggle removes the (user, target) row when present, inserts it otherwise,
// and reports the resulting liked state. The partial unique index is the
// arbiter for concurrent toggles: a duplicate insert collapses to liked=true.
func (r *LikeRepository) Toggle(ctx context.Context, userID int64, target domain.LikeTarget, targetID int64) (bool, error) {
	column, err := likeColumn(target)
	if err != nil {
		return false, err
	}

	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND "+column+" = ?", userID, targetID).
		Delete(&domain.Like{})
	if tx.Error != nil {
		return false, tx.Error
	}
	if tx.RowsAffected > 0 {
		return false, nil
	}

	if err := r.db.WithContext(ctx).Create(newLike(userID, target, targetID)).Error; err != nil {
		if IsUniqueViolation(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (r *LikeRepository) Exists(ctx context.Context, userID int64, target domain.LikeTarget, targetID int64) (bool, error) {
	column, err := likeColumn(target)
	if err != nil {
		return false, err
	}

	var like domain.Like
	tx := r.db.WithContext(ctx).
		Select("id").
		Where("user_id = ? AND "+column+" = ?", userID, targetID).
		Limit(1).
		Find(&like)
	if tx.Error != nil {
		return false, tx.Error
	}
	return like.ID != 0, nil
}

func (r *LikeRepository) Count(ctx context.Context, target domain.LikeTarget, targetID int64) (int64, error) {
	column, err := likeColumn(target)
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.db.WithContext(ctx).Model(&domain.Like{}).
		Where(column+" = ?", targetID).
		Count(&count).Error
	return count, err
}

// CountForOwnerVideos sums the likes across every video a channel owns.
func (r *LikeRepository) CountForOwnerVideos(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Like{}).
		Joins("JOIN videos ON videos.id = likes.video_id").
		Where("videos.owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

// ListLikedVideos returns the videos a user has liked, newest like first,
// each with its owner preloaded for the summary projection.
func (r *LikeRepository) ListLikedVideos(ctx context.Context, userID int64) ([]domain.Video, error) {
	var videos []domain.Video
	err := r.db.WithContext(ctx).Model(&domain.Video{}).
		Joins("JOIN likes ON likes.video_id = videos.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Preload("Owner").
		Find(&videos).Error
	return videos, err
}
