package entity

import (
	"time"
)

// Media represents a film or series in the catalog. It holds foreign
// identifiers only; expanded reference data is resolved at read time.
type Media struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Serial      string    `bson:"serial" json:"serial"`
	Title       string    `bson:"title" json:"title"`
	Synopsis    string    `bson:"synopsis" json:"synopsis"`
	URL         string    `bson:"url" json:"url"`
	CoverImage  string    `bson:"cover_image" json:"cover_image"`
	ReleaseYear int       `bson:"release_year" json:"release_year"`
	GenreID     string    `bson:"genre_id" json:"genre_id"`
	DirectorID  string    `bson:"director_id" json:"director_id"`
	ProducerID  string    `bson:"producer_id" json:"producer_id"`
	TypeID      string    `bson:"type_id" json:"type_id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// MediaExpanded is a Media record with its references resolved to full
// entities. An expanded field is nil when the stored identifier no longer
// resolves (the identifier itself is kept on the embedded Media).
type MediaExpanded struct {
	Media    `bson:",inline"`
	Genre    *Genre     `bson:"-" json:"genre"`
	Director *Director  `bson:"-" json:"director"`
	Producer *Producer  `bson:"-" json:"producer"`
	Type     *MediaType `bson:"-" json:"type"`
}
