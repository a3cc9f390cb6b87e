package domain

import "time"

// Like is a join row between a user and exactly one target: a video, a
// comment or a tweet. The partial unique indexes keep at most one row per
// (user, target) pair; toggling deletes or inserts the row.
type Like struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_like_video;uniqueIndex:idx_like_comment;uniqueIndex:idx_like_tweet"`
	VideoID   *int64    `json:"video_id,omitempty" gorm:"uniqueIndex:idx_like_video,where:video_id IS NOT NULL"`
	CommentID *int64    `json:"comment_id,omitempty" gorm:"uniqueIndex:idx_like_comment,where:comment_id IS NOT NULL"`
	TweetID   *int64    `json:"tweet_id,omitempty" gorm:"uniqueIndex:idx_like_tweet,where:tweet_id IS NOT NULL"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Like) TableName() string { return "likes" }

// LikeTarget names the kind of entity a like points at.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)
