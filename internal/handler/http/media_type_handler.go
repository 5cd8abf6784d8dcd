package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/media-catalog/internal/handler/http/dto"
	"github.com/cinelog/media-catalog/internal/usecase"
)

type MediaTypeHandler struct {
	typeUsecase usecase.IMediaTypeUsecase
}

func NewMediaTypeHandler(typeUsecase usecase.IMediaTypeUsecase) *MediaTypeHandler {
	return &MediaTypeHandler{
		typeUsecase: typeUsecase,
	}
}

// GetMediaTypesHandler lists all media types.
func (h *MediaTypeHandler) GetMediaTypesHandler(c *gin.Context) {
	mediaTypes, err := h.typeUsecase.GetMediaTypes(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, mediaTypes)
}

// GetMediaTypeByIDHandler fetches a single media type.
func (h *MediaTypeHandler) GetMediaTypeByIDHandler(c *gin.Context) {
	mediaType, err := h.typeUsecase.GetMediaTypeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, mediaType)
}

// CreateMediaTypeHandler creates a new media type.
func (h *MediaTypeHandler) CreateMediaTypeHandler(c *gin.Context) {
	var req dto.CreateMediaTypeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	mediaType, err := h.typeUsecase.CreateMediaType(c.Request.Context(), usecase.CreateMediaTypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, mediaType)
}

// UpdateMediaTypeHandler applies a partial update to a media type.
func (h *MediaTypeHandler) UpdateMediaTypeHandler(c *gin.Context) {
	var req dto.UpdateMediaTypeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	mediaType, err := h.typeUsecase.UpdateMediaType(c.Request.Context(), c.Param("id"), usecase.UpdateMediaTypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, mediaType)
}

// DeleteMediaTypeHandler removes a media type.
func (h *MediaTypeHandler) DeleteMediaTypeHandler(c *gin.Context) {
	if err := h.typeUsecase.DeleteMediaType(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Media type deleted successfully")
}
