package services

import (
	"context"
	"errors"

	"dogtor/internal/common"
	"dogtor/internal/models"
	"dogtor/internal/repositories"
)

type SpeciesService interface {
	Create(ctx context.Context, species *models.Species) error
	GetByID(ctx context.Context, id int64) (*models.Species, error)
	Update(ctx context.Context, species *models.Species) (*models.Species, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Species, error)
}

type speciesService struct {
	speciesRepo repositories.SpeciesRepository
}

func NewSpeciesService(speciesRepo repositories.SpeciesRepository) SpeciesService {
	return &speciesService{speciesRepo: speciesRepo}
}

func (s *speciesService) Create(ctx context.Context, species *models.Species) error {
	existing, err := s.speciesRepo.GetByName(ctx, species.Name)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}
	if existing != nil {
		return &common.ConflictError{Detail: "Species already exists"}
	}

	return s.speciesRepo.Create(ctx, species)
}

func (s *speciesService) GetByID(ctx context.Context, id int64) (*models.Species, error) {
	return s.speciesRepo.GetByID(ctx, id)
}

func (s *speciesService) Update(ctx context.Context, species *models.Species) (*models.Species, error) {
	if _, err := s.speciesRepo.GetByID(ctx, species.ID); err != nil {
		return nil, err
	}
	if err := s.speciesRepo.Update(ctx, species); err != nil {
		return nil, err
	}
	return s.speciesRepo.GetByID(ctx, species.ID)
}

func (s *speciesService) Delete(ctx context.Context, id int64) error {
	if _, err := s.speciesRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.speciesRepo.Delete(ctx, id)
}

func (s *speciesService) List(ctx context.Context) ([]*models.Species, error) {
	return s.speciesRepo.List(ctx)
}
