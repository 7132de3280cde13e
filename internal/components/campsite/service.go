package campsite

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type (
	servicer interface {
		Create(ctx context.Context, in CampsiteIn) (*Campsite, error)
		GetByID(ctx context.Context, id int64) (*Campsite, error)
		List(ctx context.Context, query ListQuery) ([]Campsite, error)
		Update(ctx context.Context, id int64, in CampsiteIn) (*Campsite, error)
		Delete(ctx context.Context, id int64) error
	}

	service struct {
		repo     repoer
		validate *validator.Validate
	}
)

func NewService(repo repoer) servicer {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *service) validateIn(in CampsiteIn) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func (s *service) Create(ctx context.Context, in CampsiteIn) (*Campsite, error) {
	if err := s.validateIn(in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Campsite, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, query ListQuery) ([]Campsite, error) {
	return s.repo.List(ctx, query)
}

func (s *service) Update(ctx context.Context, id int64, in CampsiteIn) (*Campsite, error) {
	if err := s.validateIn(in); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, in)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
