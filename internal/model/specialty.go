package model

import "context"

// SpecialtyStore persists medical specialties.
type SpecialtyStore interface {
	List(ctx context.Context, page Page) ([]Specialty, error)
	GetByID(ctx context.Context, id int64) (Specialty, error)
	Create(ctx context.Context, specialty Specialty) (Specialty, error)
	Update(ctx context.Context, id int64, patch SpecialtyPatch) (Specialty, error)
	Delete(ctx context.Context, id int64) error
}

// Specialty is a medical specialty a doctor can hold. Names are unique.
type Specialty struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type SpecialtyPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
