package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/clinic-server/internal/model"
)

var (
	_ model.BranchStore  = (*BranchRepository)(nil)
	_ model.SectionStore = (*SectionRepository)(nil)
	_ model.RoomStore    = (*RoomRepository)(nil)
)

type BranchRepository struct {
	db DBTX
}

func NewBranchRepository(db DBTX) *BranchRepository {
	return &BranchRepository{db: db}
}

func (r *BranchRepository) List(ctx context.Context, page model.Page) ([]model.Branch, error) {
	query, args := pageArgs(`SELECT id, name, address FROM branch ORDER BY id`, nil, page)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list branches")
	}
	defer rows.Close()

	branches := make([]model.Branch, 0)
	for rows.Next() {
		var b model.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}
	return branches, nil
}

func (r *BranchRepository) GetByID(ctx context.Context, id int64) (model.Branch, error) {
	var b model.Branch
	err := r.db.QueryRowContext(ctx, `SELECT id, name, address FROM branch WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.Address)
	if err != nil {
		return model.Branch{}, mapError(err, "get branch")
	}
	return b, nil
}

func (r *BranchRepository) Create(ctx context.Context, branch model.Branch) (model.Branch, error) {
	var b model.Branch
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO branch (name, address) VALUES ($1, $2) RETURNING id, name, address`,
		branch.Name, branch.Address,
	).Scan(&b.ID, &b.Name, &b.Address)
	if err != nil {
		return model.Branch{}, mapError(err, "create branch")
	}
	return b, nil
}

func (r *BranchRepository) Update(ctx context.Context, id int64, patch model.BranchPatch) (model.Branch, error) {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Address != nil {
		set.add("address", *patch.Address)
	}
	if set.empty() {
		return r.GetByID(ctx, id)
	}

	columns, args, idArg := set.build(id)
	query := fmt.Sprintf(`UPDATE branch SET %s WHERE id = $%d RETURNING id, name, address`, columns, idArg)

	var b model.Branch
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.Name, &b.Address); err != nil {
		return model.Branch{}, mapError(err, "update branch")
	}
	return b, nil
}

func (r *BranchRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "branch", id)
}

type SectionRepository struct {
	db DBTX
}

func NewSectionRepository(db DBTX) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) List(ctx context.Context, filter model.SectionFilter, page model.Page) ([]model.Section, error) {
	query := `SELECT id, name, branch_id FROM section`
	var args []any
	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		query += ` WHERE branch_id = $1`
	}
	query, args = pageArgs(query+` ORDER BY id`, args, page)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list sections")
	}
	defer rows.Close()

	sections := make([]model.Section, 0)
	for rows.Next() {
		var s model.Section
		if err := rows.Scan(&s.ID, &s.Name, &s.BranchID); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sections: %w", err)
	}
	return sections, nil
}

func (r *SectionRepository) GetByID(ctx context.Context, id int64) (model.Section, error) {
	var s model.Section
	err := r.db.QueryRowContext(ctx, `SELECT id, name, branch_id FROM section WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.BranchID)
	if err != nil {
		return model.Section{}, mapError(err, "get section")
	}
	return s, nil
}

func (r *SectionRepository) Create(ctx context.Context, section model.Section) (model.Section, error) {
	var s model.Section
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO section (name, branch_id) VALUES ($1, $2) RETURNING id, name, branch_id`,
		section.Name, section.BranchID,
	).Scan(&s.ID, &s.Name, &s.BranchID)
	if err != nil {
		return model.Section{}, mapError(err, "create section")
	}
	return s, nil
}

func (r *SectionRepository) Update(ctx context.Context, id int64, patch model.SectionPatch) (model.Section, error) {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.BranchID != nil {
		set.add("branch_id", *patch.BranchID)
	}
	if set.empty() {
		return r.GetByID(ctx, id)
	}

	columns, args, idArg := set.build(id)
	query := fmt.Sprintf(`UPDATE section SET %s WHERE id = $%d RETURNING id, name, branch_id`, columns, idArg)

	var s model.Section
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.BranchID); err != nil {
		return model.Section{}, mapError(err, "update section")
	}
	return s, nil
}

func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "section", id)
}

type RoomRepository struct {
	db DBTX
}

func NewRoomRepository(db DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomColumns = `id, floor, door_number, section_id`

func scanRoom(row rowScanner) (model.Room, error) {
	var room model.Room
	err := row.Scan(&room.ID, &room.Floor, &room.DoorNumber, &room.SectionID)
	return room, err
}

func (r *RoomRepository) List(ctx context.Context, filter model.RoomFilter, page model.Page) ([]model.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM room`
	var args []any
	if filter.SectionID != nil {
		args = append(args, *filter.SectionID)
		query += ` WHERE section_id = $1`
	}
	query, args = pageArgs(query+` ORDER BY id`, args, page)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list rooms")
	}
	defer rows.Close()

	rooms := make([]model.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rooms: %w", err)
	}
	return rooms, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (model.Room, error) {
	room, err := scanRoom(r.db.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM room WHERE id = $1`, id))
	if err != nil {
		return model.Room{}, mapError(err, "get room")
	}
	return room, nil
}

func (r *RoomRepository) Create(ctx context.Context, room model.Room) (model.Room, error) {
	saved, err := scanRoom(r.db.QueryRowContext(ctx,
		`INSERT INTO room (floor, door_number, section_id) VALUES ($1, $2, $3) RETURNING `+roomColumns,
		room.Floor, room.DoorNumber, room.SectionID,
	))
	if err != nil {
		return model.Room{}, mapError(err, "create room")
	}
	return saved, nil
}

func (r *RoomRepository) Update(ctx context.Context, id int64, patch model.RoomPatch) (model.Room, error) {
	var set setClause
	if patch.Floor != nil {
		set.add("floor", *patch.Floor)
	}
	if patch.DoorNumber != nil {
		set.add("door_number", *patch.DoorNumber)
	}
	if patch.SectionID != nil {
		set.add("section_id", *patch.SectionID)
	}
	if set.empty() {
		return r.GetByID(ctx, id)
	}

	columns, args, idArg := set.build(id)
	query := fmt.Sprintf(`UPDATE room SET %s WHERE id = $%d RETURNING %s`, columns, idArg, roomColumns)

	room, err := scanRoom(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return model.Room{}, mapError(err, "update room")
	}
	return room, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "room", id)
}
