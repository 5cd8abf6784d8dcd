package dto

import (
	"time"

	"github.com/cinelog/media-catalog/internal/domain/entity"
)

// CreateMediaRequest is the payload for creating a media record. Every field
// is required.
type CreateMediaRequest struct {
	Serial      string `json:"serial" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Synopsis    string `json:"synopsis" binding:"required"`
	URL         string `json:"url" binding:"required,url"`
	CoverImage  string `json:"cover_image" binding:"required"`
	ReleaseYear int    `json:"release_year" binding:"required,releaseyear"`
	GenreID     string `json:"genre_id" binding:"required"`
	DirectorID  string `json:"director_id" binding:"required"`
	ProducerID  string `json:"producer_id" binding:"required"`
	TypeID      string `json:"type_id" binding:"required"`
}

// UpdateMediaRequest is the payload for a partial media update. Absent fields
// are left untouched.
type UpdateMediaRequest struct {
	Serial      *string `json:"serial"`
	Title       *string `json:"title"`
	Synopsis    *string `json:"synopsis"`
	URL         *string `json:"url" binding:"omitempty,url"`
	CoverImage  *string `json:"cover_image"`
	ReleaseYear *int    `json:"release_year" binding:"omitempty,releaseyear"`
	GenreID     *string `json:"genre_id"`
	DirectorID  *string `json:"director_id"`
	ProducerID  *string `json:"producer_id"`
	TypeID      *string `json:"type_id"`
}

// MediaResponse is the DTO for a media record with expanded references.
// Expanded fields are null when the stored identifier no longer resolves.
type MediaResponse struct {
	ID          string            `json:"id"`
	Serial      string            `json:"serial"`
	Title       string            `json:"title"`
	Synopsis    string            `json:"synopsis"`
	URL         string            `json:"url"`
	CoverImage  string            `json:"cover_image"`
	ReleaseYear int               `json:"release_year"`
	GenreID     string            `json:"genre_id"`
	DirectorID  string            `json:"director_id"`
	ProducerID  string            `json:"producer_id"`
	TypeID      string            `json:"type_id"`
	Genre       *entity.Genre     `json:"genre"`
	Director    *entity.Director  `json:"director"`
	Producer    *entity.Producer  `json:"producer"`
	Type        *entity.MediaType `json:"type"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// ToMediaResponse converts an expanded media entity to its DTO.
func ToMediaResponse(media *entity.MediaExpanded) MediaResponse {
	return MediaResponse{
		ID:          media.ID,
		Serial:      media.Serial,
		Title:       media.Title,
		Synopsis:    media.Synopsis,
		URL:         media.URL,
		CoverImage:  media.CoverImage,
		ReleaseYear: media.ReleaseYear,
		GenreID:     media.GenreID,
		DirectorID:  media.DirectorID,
		ProducerID:  media.ProducerID,
		TypeID:      media.TypeID,
		Genre:       media.Genre,
		Director:    media.Director,
		Producer:    media.Producer,
		Type:        media.Type,
		CreatedAt:   media.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   media.UpdatedAt.Format(time.RFC3339),
	}
}

// ListMediaResponse is one page of media records plus pagination metadata.
type ListMediaResponse struct {
	Data  []MediaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int64           `json:"page"`
	Pages int64           `json:"pages"`
	Limit int64           `json:"limit"`
}
