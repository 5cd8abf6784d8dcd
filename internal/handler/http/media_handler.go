package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/media-catalog/internal/domain/contract"
	"github.com/cinelog/media-catalog/internal/handler/http/dto"
	"github.com/cinelog/media-catalog/internal/usecase"
)

// MediaHandlerInterface defines the methods for the media handler to allow
// interface-based dependency injection (for testing/mocking)
type MediaHandlerInterface interface {
	GetMediaHandler(*gin.Context)
	GetMediaByIDHandler(*gin.Context)
	CreateMediaHandler(*gin.Context)
	UpdateMediaHandler(*gin.Context)
	DeleteMediaHandler(*gin.Context)
}

// Ensure MediaHandler implements MediaHandlerInterface
var _ MediaHandlerInterface = (*MediaHandler)(nil)

type MediaHandler struct {
	mediaUsecase usecase.IMediaUsecase
}

func NewMediaHandler(mediaUsecase usecase.IMediaUsecase) *MediaHandler {
	return &MediaHandler{
		mediaUsecase: mediaUsecase,
	}
}

// GetMediaHandler lists media with optional filters and pagination. Missing
// or malformed page/limit parameters fall back to the defaults.
func (h *MediaHandler) GetMediaHandler(c *gin.Context) {
	opts := contract.MediaFilterOptions{
		Page:  parseInt64Query(c, "page", 1),
		Limit: parseInt64Query(c, "limit", 10),
	}

	if v := c.Query("genre"); v != "" {
		opts.GenreID = &v
	}
	if v := c.Query("director"); v != "" {
		opts.DirectorID = &v
	}
	if v := c.Query("producer"); v != "" {
		opts.ProducerID = &v
	}
	if v := c.Query("type"); v != "" {
		opts.TypeID = &v
	}
	if v := c.Query("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			opts.ReleaseYear = &year
		}
	}
	if v := c.Query("title"); v != "" {
		opts.Title = &v
	}

	page, err := h.mediaUsecase.GetMedia(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}

	data := make([]dto.MediaResponse, 0, len(page.Items))
	for _, item := range page.Items {
		data = append(data, dto.ToMediaResponse(item))
	}
	SuccessHandler(c, http.StatusOK, dto.ListMediaResponse{
		Data:  data,
		Total: page.Total,
		Page:  page.Page,
		Pages: page.Pages,
		Limit: page.Limit,
	})
}

// GetMediaByIDHandler fetches a single media record with expanded references.
func (h *MediaHandler) GetMediaByIDHandler(c *gin.Context) {
	media, err := h.mediaUsecase.GetMediaByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToMediaResponse(media))
}

// CreateMediaHandler creates a new media record.
func (h *MediaHandler) CreateMediaHandler(c *gin.Context) {
	var req dto.CreateMediaRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	media, err := h.mediaUsecase.CreateMedia(c.Request.Context(), usecase.CreateMediaInput{
		Serial:      req.Serial,
		Title:       req.Title,
		Synopsis:    req.Synopsis,
		URL:         req.URL,
		CoverImage:  req.CoverImage,
		ReleaseYear: req.ReleaseYear,
		GenreID:     req.GenreID,
		DirectorID:  req.DirectorID,
		ProducerID:  req.ProducerID,
		TypeID:      req.TypeID,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToMediaResponse(media))
}

// UpdateMediaHandler applies a partial update to a media record.
func (h *MediaHandler) UpdateMediaHandler(c *gin.Context) {
	var req dto.UpdateMediaRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	media, err := h.mediaUsecase.UpdateMedia(c.Request.Context(), c.Param("id"), usecase.UpdateMediaInput{
		Serial:      req.Serial,
		Title:       req.Title,
		Synopsis:    req.Synopsis,
		URL:         req.URL,
		CoverImage:  req.CoverImage,
		ReleaseYear: req.ReleaseYear,
		GenreID:     req.GenreID,
		DirectorID:  req.DirectorID,
		ProducerID:  req.ProducerID,
		TypeID:      req.TypeID,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToMediaResponse(media))
}

// DeleteMediaHandler removes a media record.
func (h *MediaHandler) DeleteMediaHandler(c *gin.Context) {
	if err := h.mediaUsecase.DeleteMedia(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Media deleted successfully")
}

// parseInt64Query parses a positive integer query parameter, falling back to
// the default on absent or malformed input.
func parseInt64Query(c *gin.Context, name string, fallback int64) int64 {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
