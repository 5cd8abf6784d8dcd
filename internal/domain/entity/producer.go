package entity

import (
	"time"
)

// Producer represents a production company. Names are unique and the record
// carries a lifecycle state.
type Producer struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Status      Status    `bson:"status" json:"status"`
	Slogan      string    `bson:"slogan,omitempty" json:"slogan,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
