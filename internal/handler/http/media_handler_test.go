package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/media-catalog/internal/handler/http/dto"
	"github.com/cinelog/media-catalog/internal/handler/http/mocks"
	"github.com/cinelog/media-catalog/internal/infrastructure/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

func setupMediaRouter(mock *mocks.MockMediaUsecase) *gin.Engine {
	router := gin.New()
	handler := NewMediaHandler(mock)
	media := router.Group("/api/v1/media")
	{
		media.GET("", handler.GetMediaHandler)
		media.GET("/:id", handler.GetMediaByIDHandler)
		media.POST("", handler.CreateMediaHandler)
		media.PUT("/:id", handler.UpdateMediaHandler)
		media.DELETE("/:id", handler.DeleteMediaHandler)
	}
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validCreateBody() map[string]interface{} {
	return map[string]interface{}{
		"serial":       "S1",
		"title":        "Spiderman",
		"synopsis":     "A spider bite changes everything.",
		"url":          "https://example.com/spiderman",
		"cover_image":  "https://example.com/spiderman.jpg",
		"release_year": 2002,
		"genre_id":     "mock-genre-id",
		"director_id":  "mock-director-id",
		"producer_id":  "mock-producer-id",
		"type_id":      "mock-type-id",
	}
}

func TestGetMediaHandler_DefaultPagination(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	router := setupMediaRouter(mock)

	w := performRequest(router, http.MethodGet, "/api/v1/media", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), mock.LastFilterOptions.Page)
	assert.Equal(t, int64(10), mock.LastFilterOptions.Limit)

	var resp dto.ListMediaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Spiderman", resp.Data[0].Title)
}

func TestGetMediaHandler_MalformedPaginationFallsBack(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	router := setupMediaRouter(mock)

	w := performRequest(router, http.MethodGet, "/api/v1/media?page=abc&limit=-5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), mock.LastFilterOptions.Page)
	assert.Equal(t, int64(10), mock.LastFilterOptions.Limit)
}

func TestGetMediaHandler_QueryFilters(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	router := setupMediaRouter(mock)

	w := performRequest(router, http.MethodGet, "/api/v1/media?genre=g1&director=d1&producer=p1&type=t1&year=2002&title=man&page=2&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	opts := mock.LastFilterOptions
	require.NotNil(t, opts.GenreID)
	assert.Equal(t, "g1", *opts.GenreID)
	require.NotNil(t, opts.DirectorID)
	assert.Equal(t, "d1", *opts.DirectorID)
	require.NotNil(t, opts.ProducerID)
	assert.Equal(t, "p1", *opts.ProducerID)
	require.NotNil(t, opts.TypeID)
	assert.Equal(t, "t1", *opts.TypeID)
	require.NotNil(t, opts.ReleaseYear)
	assert.Equal(t, 2002, *opts.ReleaseYear)
	require.NotNil(t, opts.Title)
	assert.Equal(t, "man", *opts.Title)
	assert.Equal(t, int64(2), opts.Page)
	assert.Equal(t, int64(5), opts.Limit)
}

func TestGetMediaHandler_StoreError(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	mock.ShouldFailGet = true
	router := setupMediaRouter(mock)

	w := performRequest(router, http.MethodGet, "/api/v1/media", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetMediaByIDHandler(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	router := setupMediaRouter(mock)

	w := performRequest(router, http.MethodGet, "/api/v1/media/mock-media-id", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MediaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mock-media-id", resp.ID)
	require.NotNil(t, resp.Genre)
	assert.Equal(t, "Action", resp.Genre.Name)
	// Unexpanded references come back as null, not omitted.
	assert.Nil(t, resp.Director)
}

func TestGetMediaByIDHandler_NotFound(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	mock.ShouldFailGetByID = true
	router := setupMediaRouter(mock)

	w := performRequest(router, http.MethodGet, "/api/v1/media/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMediaHandler(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	router := setupMediaRouter(mock)

	w := performRequest(router, http.MethodPost, "/api/v1/media", validCreateBody())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MediaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Spiderman", resp.Title)
}

func TestCreateMediaHandler_MissingFields(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	router := setupMediaRouter(mock)

	body := validCreateBody()
	delete(body, "title")

	w := performRequest(router, http.MethodPost, "/api/v1/media", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMediaHandler_MalformedURL(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	router := setupMediaRouter(mock)

	body := validCreateBody()
	body["url"] = "not a url"

	w := performRequest(router, http.MethodPost, "/api/v1/media", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMediaHandler_ImplausibleReleaseYear(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	router := setupMediaRouter(mock)

	body := validCreateBody()
	body["release_year"] = 1800

	w := performRequest(router, http.MethodPost, "/api/v1/media", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMediaHandler_DuplicateSerial(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	mock.ShouldFailCreate = true
	router := setupMediaRouter(mock)

	w := performRequest(router, http.MethodPost, "/api/v1/media", validCreateBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "serial", resp.Field)
}

func TestUpdateMediaHandler(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	router := setupMediaRouter(mock)

	w := performRequest(router, http.MethodPut, "/api/v1/media/mock-media-id", map[string]interface{}{
		"title": "Spiderman 2",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateMediaHandler_NotFound(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	mock.ShouldFailUpdate = true
	router := setupMediaRouter(mock)

	w := performRequest(router, http.MethodPut, "/api/v1/media/missing", map[string]interface{}{
		"title": "Spiderman 2",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMediaHandler(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	router := setupMediaRouter(mock)

	w := performRequest(router, http.MethodDelete, "/api/v1/media/mock-media-id", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Media deleted successfully", resp.Message)
}

func TestDeleteMediaHandler_NotFound(t *testing.T) {
	mock := mocks.NewMockMediaUsecase()
	mock.ShouldFailDelete = true
	router := setupMediaRouter(mock)

	w := performRequest(router, http.MethodDelete, "/api/v1/media/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
