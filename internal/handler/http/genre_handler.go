package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/media-catalog/internal/domain/entity"
	"github.com/cinelog/media-catalog/internal/handler/http/dto"
	"github.com/cinelog/media-catalog/internal/usecase"
)

type GenreHandler struct {
	genreUsecase usecase.IGenreUsecase
}

func NewGenreHandler(genreUsecase usecase.IGenreUsecase) *GenreHandler {
	return &GenreHandler{
		genreUsecase: genreUsecase,
	}
}

// GetGenresHandler lists genres, optionally filtered by lifecycle status.
func (h *GenreHandler) GetGenresHandler(c *gin.Context) {
	genres, err := h.genreUsecase.GetGenres(c.Request.Context(), statusFilter(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, genres)
}

// GetGenreByIDHandler fetches a single genre.
func (h *GenreHandler) GetGenreByIDHandler(c *gin.Context) {
	genre, err := h.genreUsecase.GetGenreByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, genre)
}

// CreateGenreHandler creates a new genre.
func (h *GenreHandler) CreateGenreHandler(c *gin.Context) {
	var req dto.CreateGenreRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	input := usecase.CreateGenreInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Status != "" {
		status := entity.Status(req.Status)
		input.Status = &status
	}

	genre, err := h.genreUsecase.CreateGenre(c.Request.Context(), input)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, genre)
}

// UpdateGenreHandler applies a partial update to a genre.
func (h *GenreHandler) UpdateGenreHandler(c *gin.Context) {
	var req dto.UpdateGenreRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	input := usecase.UpdateGenreInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Status != nil {
		status := entity.Status(*req.Status)
		input.Status = &status
	}

	genre, err := h.genreUsecase.UpdateGenre(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, genre)
}

// DeleteGenreHandler removes a genre. Media referencing it are left as-is.
func (h *GenreHandler) DeleteGenreHandler(c *gin.Context) {
	if err := h.genreUsecase.DeleteGenre(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Genre deleted successfully")
}
