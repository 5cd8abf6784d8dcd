package mocks

import (
	"context"
	"time"

	"github.com/cinelog/media-catalog/internal/domain/apperror"
	"github.com/cinelog/media-catalog/internal/domain/contract"
	"github.com/cinelog/media-catalog/internal/domain/entity"
	"github.com/cinelog/media-catalog/internal/usecase"
)

// MockMediaUsecase is a mock implementation of the IMediaUsecase interface
type MockMediaUsecase struct {
	// Control mock behavior
	ShouldFailCreate    bool
	ShouldFailGetByID   bool
	ShouldFailGet       bool
	ShouldFailUpdate    bool
	ShouldFailDelete    bool
	CreateError         error
	LastFilterOptions   contract.MediaFilterOptions

	// Return values
	MockMedia entity.MediaExpanded
	MockTotal int64
}

// Ensure MockMediaUsecase implements the interface handler.NewMediaHandler expects
var _ usecase.IMediaUsecase = (*MockMediaUsecase)(nil)

func NewMockMediaUsecase() *MockMediaUsecase {
	now := time.Now()
	return &MockMediaUsecase{
		MockMedia: entity.MediaExpanded{
			Media: entity.Media{
				ID:          "mock-media-id",
				Serial:      "S1",
				Title:       "Spiderman",
				Synopsis:    "A spider bite changes everything.",
				URL:         "https://example.com/spiderman",
				CoverImage:  "https://example.com/spiderman.jpg",
				ReleaseYear: 2002,
				GenreID:     "mock-genre-id",
				DirectorID:  "mock-director-id",
				ProducerID:  "mock-producer-id",
				TypeID:      "mock-type-id",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			Genre: &entity.Genre{ID: "mock-genre-id", Name: "Action", Status: entity.StatusActive},
		},
		MockTotal: 1,
	}
}

func (m *MockMediaUsecase) CreateMedia(ctx context.Context, input usecase.CreateMediaInput) (*entity.MediaExpanded, error) {
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	if m.ShouldFailCreate {
		return nil, apperror.DuplicateKey("serial")
	}
	return &m.MockMedia, nil
}

func (m *MockMediaUsecase) GetMediaByID(ctx context.Context, mediaID string) (*entity.MediaExpanded, error) {
	if m.ShouldFailGetByID {
		return nil, apperror.NotFound("media")
	}
	return &m.MockMedia, nil
}

func (m *MockMediaUsecase) GetMedia(ctx context.Context, opts contract.MediaFilterOptions) (*usecase.MediaPage, error) {
	m.LastFilterOptions = opts
	if m.ShouldFailGet {
		return nil, apperror.Store(context.DeadlineExceeded)
	}
	pages := int64(0)
	if m.MockTotal > 0 {
		pages = (m.MockTotal + opts.Limit - 1) / opts.Limit
	}
	return &usecase.MediaPage{
		Items: []*entity.MediaExpanded{&m.MockMedia},
		Total: m.MockTotal,
		Page:  opts.Page,
		Pages: pages,
		Limit: opts.Limit,
	}, nil
}

func (m *MockMediaUsecase) UpdateMedia(ctx context.Context, mediaID string, input usecase.UpdateMediaInput) (*entity.MediaExpanded, error) {
	if m.ShouldFailUpdate {
		return nil, apperror.NotFound("media")
	}
	return &m.MockMedia, nil
}

func (m *MockMediaUsecase) DeleteMedia(ctx context.Context, mediaID string) error {
	if m.ShouldFailDelete {
		return apperror.NotFound("media")
	}
	return nil
}
