package domain

import "time"

// WatchHistoryEntry records that a user watched a video. Re-watching bumps
// WatchedAt instead of inserting a second row, so the history stays
// duplicate-free and ordered most-recent-first.
type WatchHistoryEntry struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_history_user_video"`
	VideoID   int64     `json:"video_id" gorm:"not null;uniqueIndex:idx_history_user_video"`
	WatchedAt time.Time `json:"watched_at" gorm:"not null;index"`
}

func (WatchHistoryEntry) TableName() string { return "watch_history" }
