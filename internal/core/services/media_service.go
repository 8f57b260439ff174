package services

import (
	"context"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/sirupsen/logrus"
)

type MediaService struct {
	repo domain.MediaRepository
	log  *logrus.Entry
}

func NewMediaService(repo domain.MediaRepository, log *logrus.Entry) *MediaService {
	return &MediaService{
		repo: repo,
		log:  log,
	}
}

// List filters by status when status is non-empty.
func (s *MediaService) List(ctx context.Context, status string) ([]*domain.Media, error) {
	if status == "" {
		return s.repo.List(ctx, nil)
	}
	st, err := domain.ParseMediaStatus(status)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, &st)
}

func (s *MediaService) Get(ctx context.Context, id string) (*domain.Media, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MediaService) Create(ctx context.Context, input domain.MediaInput) (*domain.Media, error) {
	media, err := domain.NewMedia(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *MediaService) Update(ctx context.Context, id string, input domain.MediaInput) (*domain.Media, error) {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := media.Apply(input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *MediaService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// CheckName is a hint for forms. Store failures are logged and reported as
// "no duplicate"; Create and Update still enforce uniqueness.
func (s *MediaService) CheckName(ctx context.Context, name, excludeID string) bool {
	items, err := s.repo.List(ctx, nil)
	if err != nil {
		s.log.WithError(err).WithField("name", name).Warn("duplicate name check skipped")
		return false
	}
	return domain.IsDuplicateName(deref(items), name, excludeID)
}

func (s *MediaService) Enums() domain.MediaEnums {
	return domain.Enums()
}
