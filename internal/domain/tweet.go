package domain

import "time"

type Tweet struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	OwnerID   int64     `json:"owner_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (Tweet) TableName() string { return "tweets" }
