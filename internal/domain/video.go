package domain

import "time"

type Video struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	OwnerID      int64     `json:"owner_id" gorm:"not null;index"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     float64   `json:"duration"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (Video) TableName() string { return "videos" }

// VideoView records that a user has watched a video. The view count of a
// video is the number of rows, so repeat visits by the same user count once.
type VideoView struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	VideoID   int64     `json:"video_id" gorm:"not null;uniqueIndex:idx_video_viewer"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_video_viewer"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (VideoView) TableName() string { return "video_views" }
