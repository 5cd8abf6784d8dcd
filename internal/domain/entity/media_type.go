package entity

import (
	"time"
)

// MediaType classifies a media record (e.g. film, series). It has a unique
// name and no lifecycle state: a type can always be referenced while it
// exists.
type MediaType struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
