package user

import "github.com/MashookhKhanlol/youtube-clone/internal/domain"

type UpdateProfileRequest struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
}

// ChannelProfile is the composed public view of a channel: the user's
// profile fields plus the derived subscription aggregates.
type ChannelProfile struct {
	ID                int64  `json:"id"`
	Username          string `json:"username"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	AvatarURL         string `json:"avatar_url,omitempty"`
	CoverImageURL     string `json:"cover_image_url,omitempty"`
	SubscriberCount   int64  `json:"subscriber_count"`
	SubscribedToCount int64  `json:"subscribed_to_count"`
	IsSubscribed      bool   `json:"is_subscribed"`
}

// WatchHistoryItem is one history entry: the video plus its owner's summary,
// never the full owner record.
type WatchHistoryItem struct {
	Video     domain.Video        `json:"video"`
	Owner     domain.OwnerSummary `json:"owner"`
	WatchedAt string              `json:"watched_at"`
}
