package service

import (
	"context"
	"fmt"

	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

type Specialty struct {
	store  model.SpecialtyStore
	logger *logger.Logger
}

func NewSpecialty(store model.SpecialtyStore, logger *logger.Logger) *Specialty {
	return &Specialty{store: store, logger: logger}
}

func (s *Specialty) List(ctx context.Context, page model.Page) ([]model.Specialty, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	specialties, err := s.store.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}
	return specialties, nil
}

func (s *Specialty) Get(ctx context.Context, id int64) (model.Specialty, error) {
	specialty, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Specialty{}, fmt.Errorf("failed to get specialty %d: %w", id, err)
	}
	return specialty, nil
}

// Create adds a specialty. Names are unique; a duplicate wraps
// model.ErrAlreadyExists.
func (s *Specialty) Create(ctx context.Context, specialty model.Specialty) (model.Specialty, error) {
	if err := requireText("name", specialty.Name); err != nil {
		return model.Specialty{}, err
	}

	created, err := s.store.Create(ctx, specialty)
	if err != nil {
		return model.Specialty{}, fmt.Errorf("failed to create specialty %q: %w", specialty.Name, err)
	}

	s.logger.Info("Specialty service: specialty created",
		"specialty_id", created.ID,
		"name", created.Name)
	return created, nil
}

func (s *Specialty) Update(ctx context.Context, id int64, patch model.SpecialtyPatch) (model.Specialty, error) {
	if err := optionalText("name", patch.Name); err != nil {
		return model.Specialty{}, err
	}

	specialty, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return model.Specialty{}, fmt.Errorf("failed to update specialty %d: %w", id, err)
	}
	return specialty, nil
}

func (s *Specialty) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete specialty %d: %w", id, err)
	}
	s.logger.Info("Specialty service: specialty deleted", "specialty_id", id)
	return nil
}
