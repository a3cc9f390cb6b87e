package domain

import "time"

// Subscription links a subscriber to a channel (both users). At most one row
// per (subscriber, channel) pair; toggling deletes or inserts the row.
type Subscription struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	SubscriberID int64     `json:"subscriber_id" gorm:"not null;index;uniqueIndex:idx_subscriber_channel"`
	ChannelID    int64     `json:"channel_id" gorm:"not null;index;uniqueIndex:idx_subscriber_channel"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	Subscriber *User `json:"subscriber,omitempty" gorm:"foreignKey:SubscriberID"`
	Channel    *User `json:"channel,omitempty" gorm:"foreignKey:ChannelID"`
}

func (Subscription) TableName() string { return "subscriptions" }
