package domain

import "time"

// User is a registered account. A user is also a "channel" from the point of
// view of subscriptions: Subscription.ChannelID references users.id.
type User struct {
	ID            int64  `json:"id" gorm:"primaryKey"`
	Username      string `json:"username" gorm:"uniqueIndex;not null"`
	Email         string `json:"email" gorm:"uniqueIndex;not null"`
	FullName      string `json:"full_name"`
	PasswordHash  string `json:"-" gorm:"not null"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`

	// RefreshTokenHash is the peppered hash of the single live refresh token.
	// nil means no active session (logged out or revoked).
	RefreshTokenHash *string `json:"-"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// OwnerSummary is the projection of a user embedded into joined views
// (watch history, liked videos, tweets). Never the full record.
type OwnerSummary struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Summary projects a user down to the fields safe to embed in other payloads.
func (u *User) Summary() OwnerSummary {
	return OwnerSummary{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
	}
}
