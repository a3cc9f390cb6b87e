package like

import "github.com/MashookhKhanlol/youtube-clone/internal/domain"

// ToggleResult reports the state after a toggle, not the action taken, so
// concurrent togglers all receive a consistent final answer.
type ToggleResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type LikedVideo struct {
	Video domain.Video        `json:"video"`
	Owner domain.OwnerSummary `json:"owner"`
}
