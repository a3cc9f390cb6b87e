package repository

import (
	"context"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var c domain.Comment
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, commentID int64, content string) error {
	return r.db.WithContext(ctx).Model(&domain.Comment{}).
		Where("id = ?", commentID).
		Update("content", content).Error
}

func (r *CommentRepository) Delete(ctx context.Context, commentID int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Comment{}, commentID).Error
}

// ListByVideo returns a page of comments, newest first, with their authors
// preloaded. An empty page is a valid result, not an error.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID int64, limit, offset int) ([]domain.Comment, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Comment{}).
		Where("video_id = ?", videoID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Preload("Owner").
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var comments []domain.Comment
	if err := q.Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
