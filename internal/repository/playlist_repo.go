package repository

import (
	"context"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"

	"gorm.io/gorm"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) Create(ctx context.Context, p *domain.Playlist) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id int64) (*domain.Playlist, error) {
	var p domain.Playlist
	err := r.db.WithContext(ctx).
		Preload("Videos").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlaylistRepository) UpdateFields(ctx context.Context, playlistID int64, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&domain.Playlist{}).
		Where("id = ?", playlistID).
		Updates(fields).Error
}

func (r *PlaylistRepository) Delete(ctx context.Context, playlistID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistID).Delete(&domain.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Playlist{}, playlistID).Error
	})
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Playlist, error) {
	var playlists []domain.Playlist
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlists).Error
	return playlists, err
}

// AddVideo inserts the membership edge; adding a video twice is idempotent.
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID int64) error {
	err := r.db.WithContext(ctx).Create(&domain.PlaylistVideo{
		PlaylistID: playlistID,
		VideoID:    videoID,
	}).Error
	if err != nil && IsUniqueViolation(err) {
		return nil
	}
	return err
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID int64) error {
	return r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&domain.PlaylistVideo{}).Error
}
