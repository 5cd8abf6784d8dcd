package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cinelog/media-catalog/internal/domain/apperror"
	"github.com/cinelog/media-catalog/internal/domain/contract"
	"github.com/cinelog/media-catalog/internal/domain/entity"
)

// The fakes below are in-memory stand-ins for the MongoDB repositories. They
// enforce the same uniqueness rules the real unique indexes do, so the
// check-then-act residue behaves like production.

type seqUUID struct{ n int }

func (s *seqUUID) NewUUID() string {
	s.n++
	return fmt.Sprintf("id-%04d", s.n)
}

type fakeMediaRepo struct {
	records    map[string]*entity.Media
	seq        int64
	failCreate error
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{records: map[string]*entity.Media{}}
}

func (f *fakeMediaRepo) CreateMedia(_ context.Context, media *entity.Media) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	for _, r := range f.records {
		if r.Serial == media.Serial {
			return apperror.DuplicateKey("serial")
		}
		if r.URL == media.URL {
			return apperror.DuplicateKey("url")
		}
	}
	f.seq++
	media.CreatedAt = time.Unix(f.seq, 0)
	media.UpdatedAt = media.CreatedAt
	cp := *media
	f.records[media.ID] = &cp
	return nil
}

func (f *fakeMediaRepo) GetMediaByID(_ context.Context, mediaID string) (*entity.Media, error) {
	rec, ok := f.records[mediaID]
	if !ok {
		return nil, apperror.NotFound("media")
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeMediaRepo) GetMediaBySerial(_ context.Context, serial string) (*entity.Media, error) {
	for _, r := range f.records {
		if r.Serial == serial {
			cp := *r
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("media")
}

func (f *fakeMediaRepo) GetMediaByURL(_ context.Context, url string) (*entity.Media, error) {
	for _, r := range f.records {
		if r.URL == url {
			cp := *r
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("media")
}

func (f *fakeMediaRepo) GetMedia(_ context.Context, opts *contract.MediaFilterOptions) ([]*entity.Media, int64, error) {
	var matches []*entity.Media
	for _, r := range f.records {
		if opts.GenreID != nil && r.GenreID != *opts.GenreID {
			continue
		}
		if opts.DirectorID != nil && r.DirectorID != *opts.DirectorID {
			continue
		}
		if opts.ProducerID != nil && r.ProducerID != *opts.ProducerID {
			continue
		}
		if opts.TypeID != nil && r.TypeID != *opts.TypeID {
			continue
		}
		if opts.ReleaseYear != nil && r.ReleaseYear != *opts.ReleaseYear {
			continue
		}
		if opts.Title != nil && !strings.Contains(strings.ToLower(r.Title), strings.ToLower(*opts.Title)) {
			continue
		}
		cp := *r
		matches = append(matches, &cp)
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].ID > matches[j].ID
	})

	total := int64(len(matches))
	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}
	return matches[start:end], total, nil
}

func (f *fakeMediaRepo) UpdateMedia(_ context.Context, mediaID string, updates map[string]interface{}) error {
	rec, ok := f.records[mediaID]
	if !ok {
		return apperror.NotFound("media")
	}
	for key, value := range updates {
		switch key {
		case "serial":
			rec.Serial = value.(string)
		case "url":
			rec.URL = value.(string)
		case "title":
			rec.Title = value.(string)
		case "synopsis":
			rec.Synopsis = value.(string)
		case "cover_image":
			rec.CoverImage = value.(string)
		case "release_year":
			rec.ReleaseYear = value.(int)
		case "genre_id":
			rec.GenreID = value.(string)
		case "director_id":
			rec.DirectorID = value.(string)
		case "producer_id":
			rec.ProducerID = value.(string)
		case "type_id":
			rec.TypeID = value.(string)
		}
	}
	rec.UpdatedAt = time.Now()
	return nil
}

func (f *fakeMediaRepo) DeleteMedia(_ context.Context, mediaID string) error {
	if _, ok := f.records[mediaID]; !ok {
		return apperror.NotFound("media")
	}
	delete(f.records, mediaID)
	return nil
}

var _ contract.IMediaRepository = (*fakeMediaRepo)(nil)

type fakeGenreRepo struct {
	records map[string]*entity.Genre
	seq     int64
}

func newFakeGenreRepo() *fakeGenreRepo {
	return &fakeGenreRepo{records: map[string]*entity.Genre{}}
}

func (f *fakeGenreRepo) CreateGenre(_ context.Context, genre *entity.Genre) error {
	for _, r := range f.records {
		if r.Name == genre.Name {
			return apperror.DuplicateKey("name")
		}
	}
	f.seq++
	genre.CreatedAt = time.Unix(f.seq, 0)
	genre.UpdatedAt = genre.CreatedAt
	cp := *genre
	f.records[genre.ID] = &cp
	return nil
}

func (f *fakeGenreRepo) GetGenreByID(_ context.Context, genreID string) (*entity.Genre, error) {
	rec, ok := f.records[genreID]
	if !ok {
		return nil, apperror.NotFound("genre")
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeGenreRepo) GetGenreByName(_ context.Context, name string) (*entity.Genre, error) {
	for _, r := range f.records {
		if r.Name == name {
			cp := *r
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("genre")
}

func (f *fakeGenreRepo) GetAllGenres(_ context.Context, status *entity.Status) ([]*entity.Genre, error) {
	var out []*entity.Genre
	for _, r := range f.records {
		if status != nil && r.Status != *status {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeGenreRepo) UpdateGenre(_ context.Context, genreID string, updates map[string]interface{}) error {
	rec, ok := f.records[genreID]
	if !ok {
		return apperror.NotFound("genre")
	}
	for key, value := range updates {
		switch key {
		case "name":
			rec.Name = value.(string)
		case "description":
			rec.Description = value.(string)
		case "status":
			rec.Status = value.(entity.Status)
		}
	}
	rec.UpdatedAt = time.Now()
	return nil
}

func (f *fakeGenreRepo) DeleteGenre(_ context.Context, genreID string) error {
	if _, ok := f.records[genreID]; !ok {
		return apperror.NotFound("genre")
	}
	delete(f.records, genreID)
	return nil
}

var _ contract.IGenreRepository = (*fakeGenreRepo)(nil)

type fakeDirectorRepo struct {
	records map[string]*entity.Director
	seq     int64
}

func newFakeDirectorRepo() *fakeDirectorRepo {
	return &fakeDirectorRepo{records: map[string]*entity.Director{}}
}

func (f *fakeDirectorRepo) CreateDirector(_ context.Context, director *entity.Director) error {
	f.seq++
	director.CreatedAt = time.Unix(f.seq, 0)
	director.UpdatedAt = director.CreatedAt
	cp := *director
	f.records[director.ID] = &cp
	return nil
}

func (f *fakeDirectorRepo) GetDirectorByID(_ context.Context, directorID string) (*entity.Director, error) {
	rec, ok := f.records[directorID]
	if !ok {
		return nil, apperror.NotFound("director")
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeDirectorRepo) GetAllDirectors(_ context.Context, status *entity.Status) ([]*entity.Director, error) {
	var out []*entity.Director
	for _, r := range f.records {
		if status != nil && r.Status != *status {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeDirectorRepo) UpdateDirector(_ context.Context, directorID string, updates map[string]interface{}) error {
	rec, ok := f.records[directorID]
	if !ok {
		return apperror.NotFound("director")
	}
	for key, value := range updates {
		switch key {
		case "name":
			rec.Name = value.(string)
		case "status":
			rec.Status = value.(entity.Status)
		}
	}
	rec.UpdatedAt = time.Now()
	return nil
}

func (f *fakeDirectorRepo) DeleteDirector(_ context.Context, directorID string) error {
	if _, ok := f.records[directorID]; !ok {
		return apperror.NotFound("director")
	}
	delete(f.records, directorID)
	return nil
}

var _ contract.IDirectorRepository = (*fakeDirectorRepo)(nil)

type fakeProducerRepo struct {
	records map[string]*entity.Producer
	seq     int64
}

func newFakeProducerRepo() *fakeProducerRepo {
	return &fakeProducerRepo{records: map[string]*entity.Producer{}}
}

func (f *fakeProducerRepo) CreateProducer(_ context.Context, producer *entity.Producer) error {
	for _, r := range f.records {
		if r.Name == producer.Name {
			return apperror.DuplicateKey("name")
		}
	}
	f.seq++
	producer.CreatedAt = time.Unix(f.seq, 0)
	producer.UpdatedAt = producer.CreatedAt
	cp := *producer
	f.records[producer.ID] = &cp
	return nil
}

func (f *fakeProducerRepo) GetProducerByID(_ context.Context, producerID string) (*entity.Producer, error) {
	rec, ok := f.records[producerID]
	if !ok {
		return nil, apperror.NotFound("producer")
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeProducerRepo) GetProducerByName(_ context.Context, name string) (*entity.Producer, error) {
	for _, r := range f.records {
		if r.Name == name {
			cp := *r
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("producer")
}

func (f *fakeProducerRepo) GetAllProducers(_ context.Context, status *entity.Status) ([]*entity.Producer, error) {
	var out []*entity.Producer
	for _, r := range f.records {
		if status != nil && r.Status != *status {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProducerRepo) UpdateProducer(_ context.Context, producerID string, updates map[string]interface{}) error {
	rec, ok := f.records[producerID]
	if !ok {
		return apperror.NotFound("producer")
	}
	for key, value := range updates {
		switch key {
		case "name":
			rec.Name = value.(string)
		case "slogan":
			rec.Slogan = value.(string)
		case "description":
			rec.Description = value.(string)
		case "status":
			rec.Status = value.(entity.Status)
		}
	}
	rec.UpdatedAt = time.Now()
	return nil
}

func (f *fakeProducerRepo) DeleteProducer(_ context.Context, producerID string) error {
	if _, ok := f.records[producerID]; !ok {
		return apperror.NotFound("producer")
	}
	delete(f.records, producerID)
	return nil
}

var _ contract.IProducerRepository = (*fakeProducerRepo)(nil)

type fakeMediaTypeRepo struct {
	records map[string]*entity.MediaType
	seq     int64
}

func newFakeMediaTypeRepo() *fakeMediaTypeRepo {
	return &fakeMediaTypeRepo{records: map[string]*entity.MediaType{}}
}

func (f *fakeMediaTypeRepo) CreateMediaType(_ context.Context, mediaType *entity.MediaType) error {
	for _, r := range f.records {
		if r.Name == mediaType.Name {
			return apperror.DuplicateKey("name")
		}
	}
	f.seq++
	mediaType.CreatedAt = time.Unix(f.seq, 0)
	mediaType.UpdatedAt = mediaType.CreatedAt
	cp := *mediaType
	f.records[mediaType.ID] = &cp
	return nil
}

func (f *fakeMediaTypeRepo) GetMediaTypeByID(_ context.Context, typeID string) (*entity.MediaType, error) {
	rec, ok := f.records[typeID]
	if !ok {
		return nil, apperror.NotFound("type")
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeMediaTypeRepo) GetMediaTypeByName(_ context.Context, name string) (*entity.MediaType, error) {
	for _, r := range f.records {
		if r.Name == name {
			cp := *r
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("type")
}

func (f *fakeMediaTypeRepo) GetAllMediaTypes(_ context.Context) ([]*entity.MediaType, error) {
	var out []*entity.MediaType
	for _, r := range f.records {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeMediaTypeRepo) UpdateMediaType(_ context.Context, typeID string, updates map[string]interface{}) error {
	rec, ok := f.records[typeID]
	if !ok {
		return apperror.NotFound("type")
	}
	for key, value := range updates {
		switch key {
		case "name":
			rec.Name = value.(string)
		case "description":
			rec.Description = value.(string)
		}
	}
	rec.UpdatedAt = time.Now()
	return nil
}

func (f *fakeMediaTypeRepo) DeleteMediaType(_ context.Context, typeID string) error {
	if _, ok := f.records[typeID]; !ok {
		return apperror.NotFound("type")
	}
	delete(f.records, typeID)
	return nil
}

var _ contract.IMediaTypeRepository = (*fakeMediaTypeRepo)(nil)
