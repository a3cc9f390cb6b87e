package dashboard

import "github.com/MashookhKhanlol/youtube-clone/internal/domain"

// ChannelStats is the owner's aggregate view. Every field is zero for a
// brand-new channel; that is a valid answer, not an error.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}

type ChannelVideo struct {
	Video     domain.Video `json:"video"`
	ViewCount int64        `json:"view_count"`
	LikeCount int64        `json:"like_count"`
}
