package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/clinic-server/internal/model"
)

var _ model.SpecialtyStore = (*SpecialtyRepository)(nil)

type SpecialtyRepository struct {
	db DBTX
}

func NewSpecialtyRepository(db DBTX) *SpecialtyRepository {
	return &SpecialtyRepository{db: db}
}

func scanSpecialty(row rowScanner) (model.Specialty, error) {
	var s model.Specialty
	err := row.Scan(&s.ID, &s.Name, &s.Description)
	return s, err
}

func (r *SpecialtyRepository) List(ctx context.Context, page model.Page) ([]model.Specialty, error) {
	query, args := pageArgs(`SELECT id, name, description FROM specialty ORDER BY id`, nil, page)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list specialties")
	}
	defer rows.Close()

	specialties := make([]model.Specialty, 0)
	for rows.Next() {
		s, err := scanSpecialty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan specialty: %w", err)
		}
		specialties = append(specialties, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate specialties: %w", err)
	}
	return specialties, nil
}

func (r *SpecialtyRepository) GetByID(ctx context.Context, id int64) (model.Specialty, error) {
	s, err := scanSpecialty(r.db.QueryRowContext(ctx, `SELECT id, name, description FROM specialty WHERE id = $1`, id))
	if err != nil {
		return model.Specialty{}, mapError(err, "get specialty")
	}
	return s, nil
}

func (r *SpecialtyRepository) Create(ctx context.Context, specialty model.Specialty) (model.Specialty, error) {
	s, err := scanSpecialty(r.db.QueryRowContext(ctx,
		`INSERT INTO specialty (name, description) VALUES ($1, $2) RETURNING id, name, description`,
		specialty.Name, specialty.Description,
	))
	if err != nil {
		return model.Specialty{}, mapError(err, "create specialty")
	}
	return s, nil
}

func (r *SpecialtyRepository) Update(ctx context.Context, id int64, patch model.SpecialtyPatch) (model.Specialty, error) {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if set.empty() {
		return r.GetByID(ctx, id)
	}

	columns, args, idArg := set.build(id)
	query := fmt.Sprintf(`UPDATE specialty SET %s WHERE id = $%d RETURNING id, name, description`, columns, idArg)

	s, err := scanSpecialty(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return model.Specialty{}, mapError(err, "update specialty")
	}
	return s, nil
}

func (r *SpecialtyRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "specialty", id)
}
