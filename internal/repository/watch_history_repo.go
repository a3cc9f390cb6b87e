package repository

import (
	"context"
	"time"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchHistoryRepository struct {
	db *gorm.DB
}

func NewWatchHistoryRepository(db *gorm.DB) *WatchHistoryRepository {
	return &WatchHistoryRepository{db: db}
}

// Record upserts the (user, video) entry, bumping WatchedAt on a re-watch
// so the history stays duplicate-free and ordered by recency.
func (r *WatchHistoryRepository) Record(ctx context.Context, userID, videoID int64) error {
	entry := &domain.WatchHistoryEntry{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]any{"watched_at": entry.WatchedAt}),
	}).Create(entry).Error
}

// WatchedVideo is one expanded history row: the video plus the owner
// projection the history view embeds.
type WatchedVideo struct {
	Video     domain.Video
	Owner     domain.OwnerSummary
	WatchedAt time.Time
}

// List returns the user's history most-recent-first, each entry joined one
// level deep to the video's owner.
func (r *WatchHistoryRepository) List(ctx context.Context, userID int64) ([]WatchedVideo, error) {
	var entries []domain.WatchHistoryEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("watched_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []WatchedVideo{}, nil
	}

	videoIDs := make([]int64, 0, len(entries))
	for _, e := range entries {
		videoIDs = append(videoIDs, e.VideoID)
	}

	var videos []domain.Video
	err = r.db.WithContext(ctx).
		Preload("Owner").
		Where("id IN ?", videoIDs).
		Find(&videos).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}

	result := make([]WatchedVideo, 0, len(entries))
	for _, e := range entries {
		v, ok := byID[e.VideoID]
		if !ok {
			// video deleted since it was watched
			continue
		}
		w := WatchedVideo{Video: v, WatchedAt: e.WatchedAt}
		if v.Owner != nil {
			w.Owner = v.Owner.Summary()
		}
		v.Owner = nil
		w.Video = v
		result = append(result, w)
	}
	return result, nil
}
