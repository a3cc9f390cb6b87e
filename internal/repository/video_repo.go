package repository

import (
	"context"
	"strings"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// VideoFilter narrows List results. Zero values mean "no constraint".
type VideoFilter struct {
	Query         string
	OwnerID       int64
	OnlyPublished bool
	SortBy        string
	SortDesc      bool
	Limit         int
	Offset        int
}

var videoSortColumns = map[string]string{
	"created_at": "created_at",
	"title":      "title",
	"duration":   "duration",
}

func (r *VideoRepository) Create(ctx context.Context, v *domain.Video) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VideoRepository) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	var v domain.Video
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepository) GetByIDWithOwner(ctx context.Context, id int64) (*domain.Video, error) {
	var v domain.Video
	if err := r.db.WithContext(ctx).Preload("Owner").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepository) UpdateFields(ctx context.Context, videoID int64, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&domain.Video{}).
		Where("id = ?", videoID).
		Updates(fields).Error
}

func (r *VideoRepository) Delete(ctx context.Context, videoID int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Video{}, videoID).Error
}

func (r *VideoRepository) List(ctx context.Context, f VideoFilter) ([]domain.Video, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Video{})

	if f.Query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Query)+"%")
	}
	if f.OwnerID != 0 {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.OnlyPublished {
		q = q.Where("is_published = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := videoSortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if f.SortDesc {
		direction = "DESC"
	}
	q = q.Order(column + " " + direction)

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var videos []domain.Video
	if err := q.Find(&videos).Error; err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func (r *VideoRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Video, error) {
	var videos []domain.Video
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

func (r *VideoRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Video{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

// AddView records a distinct viewer. The unique index on (video_id, user_id)
// makes a repeat visit a no-op, so the race between two first views from the
// same user resolves to a single row.
func (r *VideoRepository) AddView(ctx context.Context, videoID, userID int64) error {
	err := r.db.WithContext(ctx).Create(&domain.VideoView{VideoID: videoID, UserID: userID}).Error
	if err != nil && IsUniqueViolation(err) {
		return nil
	}
	return err
}

func (r *VideoRepository) ViewCount(ctx context.Context, videoID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.VideoView{}).
		Where("video_id = ?", videoID).
		Count(&count).Error
	return count, err
}

// TotalViewsByOwner counts distinct views across every video of a channel.
func (r *VideoRepository) TotalViewsByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.VideoView{}).
		Joins("JOIN videos ON videos.id = video_views.video_id").
		Where("videos.owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}
