package subscription

import "github.com/MashookhKhanlol/youtube-clone/internal/domain"

type ToggleResult struct {
	Subscribed      bool  `json:"subscribed"`
	SubscriberCount int64 `json:"subscriber_count"`
}

type ChannelSummary struct {
	Channel      domain.OwnerSummary `json:"channel"`
	SubscribedAt string              `json:"subscribed_at"`
}

type SubscriberSummary struct {
	Subscriber   domain.OwnerSummary `json:"subscriber"`
	SubscribedAt string              `json:"subscribed_at"`
}
