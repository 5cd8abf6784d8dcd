package dto

// CreateGenreRequest is the payload for creating a genre.
type CreateGenreRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,lifecyclestatus"`
}

// UpdateGenreRequest is the payload for a partial genre update.
type UpdateGenreRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,lifecyclestatus"`
}

// CreateDirectorRequest is the payload for creating a director.
type CreateDirectorRequest struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status" binding:"omitempty,lifecyclestatus"`
}

// UpdateDirectorRequest is the payload for a partial director update.
type UpdateDirectorRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status" binding:"omitempty,lifecyclestatus"`
}

// CreateProducerRequest is the payload for creating a production company.
type CreateProducerRequest struct {
	Name        string `json:"name" binding:"required"`
	Slogan      string `json:"slogan"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,lifecyclestatus"`
}

// UpdateProducerRequest is the payload for a partial production company
// update.
type UpdateProducerRequest struct {
	Name        *string `json:"name"`
	Slogan      *string `json:"slogan"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,lifecyclestatus"`
}

// CreateMediaTypeRequest is the payload for creating a media type.
type CreateMediaTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateMediaTypeRequest is the payload for a partial media type update.
type UpdateMediaTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
