package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/media-catalog/internal/domain/entity"
	"github.com/cinelog/media-catalog/internal/handler/http/dto"
	"github.com/cinelog/media-catalog/internal/handler/http/mocks"
)

func setupGenreRouter(mock *mocks.MockGenreUsecase) *gin.Engine {
	router := gin.New()
	handler := NewGenreHandler(mock)
	genres := router.Group("/api/v1/genres")
	{
		genres.GET("", handler.GetGenresHandler)
		genres.GET("/:id", handler.GetGenreByIDHandler)
		genres.POST("", handler.CreateGenreHandler)
		genres.PUT("/:id", handler.UpdateGenreHandler)
		genres.DELETE("/:id", handler.DeleteGenreHandler)
	}
	return router
}

func TestGetGenresHandler_StatusFilter(t *testing.T) {
	mock := mocks.NewMockGenreUsecase()
	router := setupGenreRouter(mock)

	w := performRequest(router, http.MethodGet, "/api/v1/genres?status=Inactive", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mock.LastStatusFilter)
	assert.Equal(t, entity.StatusInactive, *mock.LastStatusFilter)
}

func TestGetGenresHandler_UnknownStatusIgnored(t *testing.T) {
	mock := mocks.NewMockGenreUsecase()
	router := setupGenreRouter(mock)

	w := performRequest(router, http.MethodGet, "/api/v1/genres?status=Archived", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, mock.LastStatusFilter)
}

func TestCreateGenreHandler(t *testing.T) {
	mock := mocks.NewMockGenreUsecase()
	router := setupGenreRouter(mock)

	w := performRequest(router, http.MethodPost, "/api/v1/genres", map[string]interface{}{
		"name": "Action",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var genre entity.Genre
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &genre))
	assert.Equal(t, "Action", genre.Name)
}

func TestCreateGenreHandler_InvalidStatusRejectedByBinding(t *testing.T) {
	mock := mocks.NewMockGenreUsecase()
	router := setupGenreRouter(mock)

	w := performRequest(router, http.MethodPost, "/api/v1/genres", map[string]interface{}{
		"name":   "Action",
		"status": "Archived",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateGenreHandler_DuplicateName(t *testing.T) {
	mock := mocks.NewMockGenreUsecase()
	mock.ShouldFailCreate = true
	router := setupGenreRouter(mock)

	w := performRequest(router, http.MethodPost, "/api/v1/genres", map[string]interface{}{
		"name": "Action",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "name", resp.Field)
}

func TestGetGenreByIDHandler_NotFound(t *testing.T) {
	mock := mocks.NewMockGenreUsecase()
	mock.ShouldFailGetByID = true
	router := setupGenreRouter(mock)

	w := performRequest(router, http.MethodGet, "/api/v1/genres/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteGenreHandler(t *testing.T) {
	mock := mocks.NewMockGenreUsecase()
	router := setupGenreRouter(mock)

	w := performRequest(router, http.MethodDelete, "/api/v1/genres/mock-genre-id", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Genre deleted successfully", resp.Message)
}
