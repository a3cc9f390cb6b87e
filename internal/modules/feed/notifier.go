package feed

import (
	"context"
	"log"
	"time"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
)

type SubscriberLister interface {
	SubscriberIDs(ctx context.Context, channelID int64) ([]int64, error)
}

// Notifier fans a publish event out to every online subscriber of the
// channel. Offline subscribers simply miss the event; the feed is
// best-effort, not a mailbox.
type Notifier struct {
	hub           *Hub
	subscriptions SubscriberLister
}

func NewNotifier(hub *Hub, subscriptions SubscriberLister) *Notifier {
	return &Notifier{hub: hub, subscriptions: subscriptions}
}

// VideoPublished runs the fan-out in the background so publishing never
// blocks on slow sockets.
func (n *Notifier) VideoPublished(v *domain.Video) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		ids, err := n.subscriptions.SubscriberIDs(ctx, v.OwnerID)
		if err != nil {
			log.Printf("feed: failed to load subscribers of channel %d: %v", v.OwnerID, err)
			return
		}

		event := NewVideoPublishedEvent(v)
		for _, id := range ids {
			n.hub.SendToUser(id, event)
		}
	}()
}
