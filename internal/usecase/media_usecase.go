package usecase

import (
	"context"

	"github.com/cinelog/media-catalog/internal/domain/apperror"
	"github.com/cinelog/media-catalog/internal/domain/contract"
	"github.com/cinelog/media-catalog/internal/domain/entity"
	usecasecontract "github.com/cinelog/media-catalog/internal/usecase/contract"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// CreateMediaInput carries the full field set required to create a media
// record. There are no optional fields on create.
type CreateMediaInput struct {
	Serial      string
	Title       string
	Synopsis    string
	URL         string
	CoverImage  string
	ReleaseYear int
	GenreID     string
	DirectorID  string
	ProducerID  string
	TypeID      string
}

// UpdateMediaInput carries a partial update. Nil fields are left untouched.
type UpdateMediaInput struct {
	Serial      *string
	Title       *string
	Synopsis    *string
	URL         *string
	CoverImage  *string
	ReleaseYear *int
	GenreID     *string
	DirectorID  *string
	ProducerID  *string
	TypeID      *string
}

// MediaPage is one page of an expanded, filtered media listing.
type MediaPage struct {
	Items []*entity.MediaExpanded
	Total int64
	Page  int64
	Pages int64
	Limit int64
}

// IMediaUsecase defines the media catalog business logic: uniqueness and
// referential-activity validation on writes, and filtered, paginated,
// relation-expanded reads.
type IMediaUsecase interface {
	CreateMedia(ctx context.Context, input CreateMediaInput) (*entity.MediaExpanded, error)
	GetMediaByID(ctx context.Context, mediaID string) (*entity.MediaExpanded, error)
	GetMedia(ctx context.Context, opts contract.MediaFilterOptions) (*MediaPage, error)
	UpdateMedia(ctx context.Context, mediaID string, input UpdateMediaInput) (*entity.MediaExpanded, error)
	DeleteMedia(ctx context.Context, mediaID string) error
}

// MediaUsecase implements IMediaUsecase. It is the sole writer of media
// records; the reference repositories are read-only collaborators used for
// reference resolution.
type MediaUsecase struct {
	mediaRepo    contract.IMediaRepository
	genreRepo    contract.IGenreRepository
	directorRepo contract.IDirectorRepository
	producerRepo contract.IProducerRepository
	typeRepo     contract.IMediaTypeRepository
	uuidgen      contract.IUUIDGenerator
	validator    usecasecontract.IValidator
	logger       usecasecontract.IAppLogger
}

// NewMediaUsecase creates a new instance of MediaUsecase.
func NewMediaUsecase(
	mediaRepo contract.IMediaRepository,
	genreRepo contract.IGenreRepository,
	directorRepo contract.IDirectorRepository,
	producerRepo contract.IProducerRepository,
	typeRepo contract.IMediaTypeRepository,
	uuidgen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *MediaUsecase {
	return &MediaUsecase{
		mediaRepo:    mediaRepo,
		genreRepo:    genreRepo,
		directorRepo: directorRepo,
		producerRepo: producerRepo,
		typeRepo:     typeRepo,
		uuidgen:      uuidgen,
		validator:    validator,
		logger:       logger,
	}
}

var _ IMediaUsecase = (*MediaUsecase)(nil)

// CreateMedia validates and persists a new media record. Checks run in a
// fixed order and the first failure short-circuits: serial uniqueness, URL
// uniqueness, genre active, director active, producer active, type exists.
// The unique indexes remain the final authority; a concurrent create that
// slips past the pre-checks surfaces from the repository as the same
// DuplicateKey error kind.
func (uc *MediaUsecase) CreateMedia(ctx context.Context, input CreateMediaInput) (*entity.MediaExpanded, error) {
	if err := uc.validateCreate(input); err != nil {
		return nil, err
	}
	if err := uc.ensureSerialFree(ctx, input.Serial); err != nil {
		return nil, err
	}
	if err := uc.ensureURLFree(ctx, input.URL); err != nil {
		return nil, err
	}
	if err := uc.checkGenre(ctx, input.GenreID); err != nil {
		return nil, err
	}
	if err := uc.checkDirector(ctx, input.DirectorID); err != nil {
		return nil, err
	}
	if err := uc.checkProducer(ctx, input.ProducerID); err != nil {
		return nil, err
	}
	if err := uc.checkType(ctx, input.TypeID); err != nil {
		return nil, err
	}

	media := &entity.Media{
		ID:          uc.uuidgen.NewUUID(),
		Serial:      input.Serial,
		Title:       input.Title,
		Synopsis:    input.Synopsis,
		URL:         input.URL,
		CoverImage:  input.CoverImage,
		ReleaseYear: input.ReleaseYear,
		GenreID:     input.GenreID,
		DirectorID:  input.DirectorID,
		ProducerID:  input.ProducerID,
		TypeID:      input.TypeID,
	}
	if err := uc.mediaRepo.CreateMedia(ctx, media); err != nil {
		uc.logger.Errorf("failed to create media %s: %v", input.Serial, err)
		return nil, err
	}
	return uc.expand(ctx, media), nil
}

// GetMediaByID fetches a single media record with its references expanded.
func (uc *MediaUsecase) GetMediaByID(ctx context.Context, mediaID string) (*entity.MediaExpanded, error) {
	media, err := uc.mediaRepo.GetMediaByID(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	return uc.expand(ctx, media), nil
}

// GetMedia returns one page of media matching the filter options, newest
// first, with references expanded. Out-of-range page and limit values fall
// back to the defaults rather than failing.
func (uc *MediaUsecase) GetMedia(ctx context.Context, opts contract.MediaFilterOptions) (*MediaPage, error) {
	if opts.Page < 1 {
		opts.Page = defaultPage
	}
	if opts.Limit < 1 {
		opts.Limit = defaultLimit
	}

	mediaList, total, err := uc.mediaRepo.GetMedia(ctx, &opts)
	if err != nil {
		return nil, err
	}

	items := make([]*entity.MediaExpanded, 0, len(mediaList))
	for _, media := range mediaList {
		items = append(items, uc.expand(ctx, media))
	}

	pages := total / opts.Limit
	if total%opts.Limit != 0 {
		pages++
	}
	return &MediaPage{
		Items: items,
		Total: total,
		Page:  opts.Page,
		Pages: pages,
		Limit: opts.Limit,
	}, nil
}

// UpdateMedia applies a partial update. Uniqueness and reference checks are
// change-triggered: a field equal to its stored value is not re-validated, so
// a reference that has since gone inactive survives updates that do not touch
// it. Serial, URL and the reference fields treat an empty string as "not
// provided"; the plain fields apply any present value as-is.
func (uc *MediaUsecase) UpdateMedia(ctx context.Context, mediaID string, input UpdateMediaInput) (*entity.MediaExpanded, error) {
	current, err := uc.mediaRepo.GetMediaByID(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if input.Serial != nil && *input.Serial != "" && *input.Serial != current.Serial {
		if err := uc.ensureSerialFree(ctx, *input.Serial); err != nil {
			return nil, err
		}
		updates["serial"] = *input.Serial
	}
	if input.URL != nil && *input.URL != "" && *input.URL != current.URL {
		if err := uc.ensureURLFree(ctx, *input.URL); err != nil {
			return nil, err
		}
		updates["url"] = *input.URL
	}
	if input.GenreID != nil && *input.GenreID != "" && *input.GenreID != current.GenreID {
		if err := uc.checkGenre(ctx, *input.GenreID); err != nil {
			return nil, err
		}
		updates["genre_id"] = *input.GenreID
	}
	if input.DirectorID != nil && *input.DirectorID != "" && *input.DirectorID != current.DirectorID {
		if err := uc.checkDirector(ctx, *input.DirectorID); err != nil {
			return nil, err
		}
		updates["director_id"] = *input.DirectorID
	}
	if input.ProducerID != nil && *input.ProducerID != "" && *input.ProducerID != current.ProducerID {
		if err := uc.checkProducer(ctx, *input.ProducerID); err != nil {
			return nil, err
		}
		updates["producer_id"] = *input.ProducerID
	}
	if input.TypeID != nil && *input.TypeID != "" && *input.TypeID != current.TypeID {
		if err := uc.checkType(ctx, *input.TypeID); err != nil {
			return nil, err
		}
		updates["type_id"] = *input.TypeID
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Synopsis != nil {
		updates["synopsis"] = *input.Synopsis
	}
	if input.CoverImage != nil {
		updates["cover_image"] = *input.CoverImage
	}
	if input.ReleaseYear != nil {
		updates["release_year"] = *input.ReleaseYear
	}

	// The update timestamp is refreshed on every write, including one that
	// carries no field changes.
	if err := uc.mediaRepo.UpdateMedia(ctx, mediaID, updates); err != nil {
		uc.logger.Errorf("failed to update media %s: %v", mediaID, err)
		return nil, err
	}

	updated, err := uc.mediaRepo.GetMediaByID(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	return uc.expand(ctx, updated), nil
}

// DeleteMedia removes a media record. Nothing references media records, so no
// cascade check is needed.
func (uc *MediaUsecase) DeleteMedia(ctx context.Context, mediaID string) error {
	return uc.mediaRepo.DeleteMedia(ctx, mediaID)
}

func (uc *MediaUsecase) validateCreate(input CreateMediaInput) error {
	required := []struct {
		field string
		value string
	}{
		{"serial", input.Serial},
		{"title", input.Title},
		{"synopsis", input.Synopsis},
		{"url", input.URL},
		{"cover_image", input.CoverImage},
		{"genre", input.GenreID},
		{"director", input.DirectorID},
		{"producer", input.ProducerID},
		{"type", input.TypeID},
	}
	for _, r := range required {
		if r.value == "" {
			return apperror.Validation(r.field, "is required")
		}
	}
	if err := uc.validator.ValidateURL(input.URL); err != nil {
		return apperror.Validation("url", err.Error())
	}
	if err := uc.validator.ValidateReleaseYear(input.ReleaseYear); err != nil {
		return apperror.Validation("release_year", err.Error())
	}
	return nil
}

func (uc *MediaUsecase) ensureSerialFree(ctx context.Context, serial string) error {
	_, err := uc.mediaRepo.GetMediaBySerial(ctx, serial)
	if err == nil {
		return apperror.DuplicateKey("serial")
	}
	if !apperror.IsNotFound(err) {
		return err
	}
	return nil
}

func (uc *MediaUsecase) ensureURLFree(ctx context.Context, url string) error {
	_, err := uc.mediaRepo.GetMediaByURL(ctx, url)
	if err == nil {
		return apperror.DuplicateKey("url")
	}
	if !apperror.IsNotFound(err) {
		return err
	}
	return nil
}

func (uc *MediaUsecase) checkGenre(ctx context.Context, genreID string) error {
	genre, err := uc.genreRepo.GetGenreByID(ctx, genreID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.InvalidReference("genre")
		}
		return err
	}
	if genre.Status != entity.StatusActive {
		return apperror.InvalidReference("genre")
	}
	return nil
}

func (uc *MediaUsecase) checkDirector(ctx context.Context, directorID string) error {
	director, err := uc.directorRepo.GetDirectorByID(ctx, directorID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.InvalidReference("director")
		}
		return err
	}
	if director.Status != entity.StatusActive {
		return apperror.InvalidReference("director")
	}
	return nil
}

func (uc *MediaUsecase) checkProducer(ctx context.Context, producerID string) error {
	producer, err := uc.producerRepo.GetProducerByID(ctx, producerID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.InvalidReference("producer")
		}
		return err
	}
	if producer.Status != entity.StatusActive {
		return apperror.InvalidReference("producer")
	}
	return nil
}

// checkType only requires existence; media types have no lifecycle state.
func (uc *MediaUsecase) checkType(ctx context.Context, typeID string) error {
	_, err := uc.typeRepo.GetMediaTypeByID(ctx, typeID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.InvalidReference("type")
		}
		return err
	}
	return nil
}

// expand resolves the four reference fields at read time with one lookup
// each, reflecting store state at the moment of the read. A reference whose
// target was deleted yields a nil expanded field; the stored identifier stays
// on the record. Lookup failures never fail the read.
func (uc *MediaUsecase) expand(ctx context.Context, media *entity.Media) *entity.MediaExpanded {
	out := &entity.MediaExpanded{Media: *media}

	if genre, err := uc.genreRepo.GetGenreByID(ctx, media.GenreID); err == nil {
		out.Genre = genre
	} else if !apperror.IsNotFound(err) {
		uc.logger.Warnf("failed to expand genre %s: %v", media.GenreID, err)
	}
	if director, err := uc.directorRepo.GetDirectorByID(ctx, media.DirectorID); err == nil {
		out.Director = director
	} else if !apperror.IsNotFound(err) {
		uc.logger.Warnf("failed to expand director %s: %v", media.DirectorID, err)
	}
	if producer, err := uc.producerRepo.GetProducerByID(ctx, media.ProducerID); err == nil {
		out.Producer = producer
	} else if !apperror.IsNotFound(err) {
		uc.logger.Warnf("failed to expand producer %s: %v", media.ProducerID, err)
	}
	if mediaType, err := uc.typeRepo.GetMediaTypeByID(ctx, media.TypeID); err == nil {
		out.Type = mediaType
	} else if !apperror.IsNotFound(err) {
		uc.logger.Warnf("failed to expand type %s: %v", media.TypeID, err)
	}
	return out
}
