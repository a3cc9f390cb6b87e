package feed

import (
	"time"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type VideoPublishedPayload struct {
	VideoID      int64  `json:"video_id"`
	OwnerID      int64  `json:"owner_id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	PublishedAt  string `json:"published_at"`
}

func NewVideoPublishedEvent(v *domain.Video) Event {
	return Event{
		Type: "video.published",
		Payload: VideoPublishedPayload{
			VideoID:      v.ID,
			OwnerID:      v.OwnerID,
			Title:        v.Title,
			ThumbnailURL: v.ThumbnailURL,
			PublishedAt:  v.CreatedAt.Format(time.RFC3339),
		},
	}
}

func NewPongEvent() Event {
	return Event{Type: "pong"}
}

func NewErrorEvent(code, message string) Event {
	return Event{
		Type:    "error",
		Payload: map[string]string{"code": code, "message": message},
	}
}
