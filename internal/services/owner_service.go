package services

import (
	"context"
	"errors"
	"fmt"

	"dogtor/internal/common"
	"dogtor/internal/models"
	"dogtor/internal/repositories"
)

type OwnerService interface {
	Create(ctx context.Context, owner *models.Owner) error
	GetByID(ctx context.Context, id int64) (*models.Owner, error)
	Update(ctx context.Context, owner *models.Owner) (*models.Owner, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Owner, error)
}

type ownerService struct {
	ownerRepo repositories.OwnerRepository
	petRepo   repositories.PetRepository
}

func NewOwnerService(ownerRepo repositories.OwnerRepository, petRepo repositories.PetRepository) OwnerService {
	return &ownerService{
		ownerRepo: ownerRepo,
		petRepo:   petRepo,
	}
}

func (s *ownerService) Create(ctx context.Context, owner *models.Owner) error {
	existing, err := s.ownerRepo.GetByEmail(ctx, owner.Email)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}
	if existing != nil {
		return &common.ConflictError{Detail: fmt.Sprintf("owner with email %s already exists", owner.Email)}
	}

	return s.ownerRepo.Create(ctx, owner)
}

func (s *ownerService) GetByID(ctx context.Context, id int64) (*models.Owner, error) {
	return s.ownerRepo.GetByID(ctx, id)
}

// Update overwrites the allow-listed contact fields and returns the owner
// re-read from the store, nested pets intact.
func (s *ownerService) Update(ctx context.Context, owner *models.Owner) (*models.Owner, error) {
	if _, err := s.ownerRepo.GetByID(ctx, owner.ID); err != nil {
		return nil, err
	}
	if err := s.ownerRepo.Update(ctx, owner); err != nil {
		return nil, err
	}
	return s.ownerRepo.GetByID(ctx, owner.ID)
}

// Delete removes an owner. Owners with dependent pets are not deleted;
// the caller gets a conflict instead.
func (s *ownerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.ownerRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.petRepo.CountByOwnerID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &common.ConflictError{Detail: fmt.Sprintf("owner with id %d has pets and cannot be deleted", id)}
	}

	return s.ownerRepo.Delete(ctx, id)
}

func (s *ownerService) List(ctx context.Context) ([]*models.Owner, error) {
	return s.ownerRepo.List(ctx)
}
