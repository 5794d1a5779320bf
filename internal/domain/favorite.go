package domain

import "time"

// Favorite links a user to a bookmarked destination. The (user, destination)
// pair is unique; adding an existing pair is a no-op at the service level.
type Favorite struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	UserID        int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_destination"`
	DestinationID int64     `json:"destination_id" gorm:"not null;index;uniqueIndex:idx_user_destination"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`

	Destination *Destination `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
}

func (Favorite) TableName() string { return "favorites" }
