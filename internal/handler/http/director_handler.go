package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/media-catalog/internal/domain/entity"
	"github.com/cinelog/media-catalog/internal/handler/http/dto"
	"github.com/cinelog/media-catalog/internal/usecase"
)

type DirectorHandler struct {
	directorUsecase usecase.IDirectorUsecase
}

func NewDirectorHandler(directorUsecase usecase.IDirectorUsecase) *DirectorHandler {
	return &DirectorHandler{
		directorUsecase: directorUsecase,
	}
}

// GetDirectorsHandler lists directors, optionally filtered by lifecycle
// status.
func (h *DirectorHandler) GetDirectorsHandler(c *gin.Context) {
	directors, err := h.directorUsecase.GetDirectors(c.Request.Context(), statusFilter(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, directors)
}

// GetDirectorByIDHandler fetches a single director.
func (h *DirectorHandler) GetDirectorByIDHandler(c *gin.Context) {
	director, err := h.directorUsecase.GetDirectorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, director)
}

// CreateDirectorHandler creates a new director.
func (h *DirectorHandler) CreateDirectorHandler(c *gin.Context) {
	var req dto.CreateDirectorRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	input := usecase.CreateDirectorInput{Name: req.Name}
	if req.Status != "" {
		status := entity.Status(req.Status)
		input.Status = &status
	}

	director, err := h.directorUsecase.CreateDirector(c.Request.Context(), input)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, director)
}

// UpdateDirectorHandler applies a partial update to a director.
func (h *DirectorHandler) UpdateDirectorHandler(c *gin.Context) {
	var req dto.UpdateDirectorRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	input := usecase.UpdateDirectorInput{Name: req.Name}
	if req.Status != nil {
		status := entity.Status(*req.Status)
		input.Status = &status
	}

	director, err := h.directorUsecase.UpdateDirector(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, director)
}

// DeleteDirectorHandler removes a director.
func (h *DirectorHandler) DeleteDirectorHandler(c *gin.Context) {
	if err := h.directorUsecase.DeleteDirector(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Director deleted successfully")
}
