package domain

import "time"

type Playlist struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	OwnerID     int64     `json:"owner_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Videos []Video `json:"videos,omitempty" gorm:"many2many:playlist_videos;"`
}

func (Playlist) TableName() string { return "playlists" }

// PlaylistVideo is the membership edge between a playlist and a video.
type PlaylistVideo struct {
	PlaylistID int64 `json:"playlist_id" gorm:"primaryKey"`
	VideoID    int64 `json:"video_id" gorm:"primaryKey"`
}

func (PlaylistVideo) TableName() string { return "playlist_videos" }
