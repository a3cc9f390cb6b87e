package video

import "github.com/MashookhKhanlol/youtube-clone/internal/domain"

type PublishRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description"`
	Duration    float64 `form:"duration"`
}

type UpdateDetailsRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type ListQuery struct {
	Query    string `form:"query"`
	OwnerID  int64  `form:"owner_id"`
	SortBy   string `form:"sort_by"`
	SortDesc bool   `form:"sort_desc"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// Detail is the expanded single-video view: the video, its owner's summary
// and the derived counters for the requesting user.
type Detail struct {
	Video     domain.Video        `json:"video"`
	Owner     domain.OwnerSummary `json:"owner"`
	ViewCount int64               `json:"view_count"`
	LikeCount int64               `json:"like_count"`
	IsLiked   bool                `json:"is_liked"`
}

type ListResult struct {
	Videos []domain.Video `json:"videos"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}
