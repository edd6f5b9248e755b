package service

import (
	"context"
	"fmt"

	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

// Directory manages the clinic layout: branches, their sections and rooms.
type Directory struct {
	branches model.BranchStore
	sections model.SectionStore
	rooms    model.RoomStore
	logger   *logger.Logger
}

func NewDirectory(
	branches model.BranchStore,
	sections model.SectionStore,
	rooms model.RoomStore,
	logger *logger.Logger,
) *Directory {
	return &Directory{
		branches: branches,
		sections: sections,
		rooms:    rooms,
		logger:   logger,
	}
}

func (d *Directory) ListBranches(ctx context.Context, page model.Page) ([]model.Branch, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	branches, err := d.branches.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}

func (d *Directory) GetBranch(ctx context.Context, id int64) (model.Branch, error) {
	branch, err := d.branches.GetByID(ctx, id)
	if err != nil {
		return model.Branch{}, fmt.Errorf("failed to get branch %d: %w", id, err)
	}
	return branch, nil
}

func (d *Directory) CreateBranch(ctx context.Context, branch model.Branch) (model.Branch, error) {
	if err := requireText("name", branch.Name); err != nil {
		return model.Branch{}, err
	}
	if err := requireText("address", branch.Address); err != nil {
		return model.Branch{}, err
	}

	created, err := d.branches.Create(ctx, branch)
	if err != nil {
		return model.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}

	d.logger.Info("Directory: branch created", "branch_id", created.ID)
	return created, nil
}

func (d *Directory) UpdateBranch(ctx context.Context, id int64, patch model.BranchPatch) (model.Branch, error) {
	if err := optionalText("name", patch.Name); err != nil {
		return model.Branch{}, err
	}
	if err := optionalText("address", patch.Address); err != nil {
		return model.Branch{}, err
	}

	branch, err := d.branches.Update(ctx, id, patch)
	if err != nil {
		return model.Branch{}, fmt.Errorf("failed to update branch %d: %w", id, err)
	}
	return branch, nil
}

func (d *Directory) DeleteBranch(ctx context.Context, id int64) error {
	if err := d.branches.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete branch %d: %w", id, err)
	}
	d.logger.Info("Directory: branch deleted", "branch_id", id)
	return nil
}

func (d *Directory) ListSections(ctx context.Context, filter model.SectionFilter, page model.Page) ([]model.Section, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	sections, err := d.sections.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return sections, nil
}

func (d *Directory) GetSection(ctx context.Context, id int64) (model.Section, error) {
	section, err := d.sections.GetByID(ctx, id)
	if err != nil {
		return model.Section{}, fmt.Errorf("failed to get section %d: %w", id, err)
	}
	return section, nil
}

func (d *Directory) CreateSection(ctx context.Context, section model.Section) (model.Section, error) {
	if err := requireText("name", section.Name); err != nil {
		return model.Section{}, err
	}
	if err := validatePositive("branch_id", section.BranchID); err != nil {
		return model.Section{}, err
	}

	created, err := d.sections.Create(ctx, section)
	if err != nil {
		return model.Section{}, fmt.Errorf("failed to create section: %w", err)
	}

	d.logger.Info("Directory: section created",
		"section_id", created.ID,
		"branch_id", created.BranchID)
	return created, nil
}

func (d *Directory) UpdateSection(ctx context.Context, id int64, patch model.SectionPatch) (model.Section, error) {
	if err := optionalText("name", patch.Name); err != nil {
		return model.Section{}, err
	}
	if patch.BranchID != nil {
		if err := validatePositive("branch_id", *patch.BranchID); err != nil {
			return model.Section{}, err
		}
	}

	section, err := d.sections.Update(ctx, id, patch)
	if err != nil {
		return model.Section{}, fmt.Errorf("failed to update section %d: %w", id, err)
	}
	return section, nil
}

func (d *Directory) DeleteSection(ctx context.Context, id int64) error {
	if err := d.sections.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete section %d: %w", id, err)
	}
	d.logger.Info("Directory: section deleted", "section_id", id)
	return nil
}

func (d *Directory) ListRooms(ctx context.Context, filter model.RoomFilter, page model.Page) ([]model.Room, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	rooms, err := d.rooms.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (d *Directory) GetRoom(ctx context.Context, id int64) (model.Room, error) {
	room, err := d.rooms.GetByID(ctx, id)
	if err != nil {
		return model.Room{}, fmt.Errorf("failed to get room %d: %w", id, err)
	}
	return room, nil
}

func (d *Directory) CreateRoom(ctx context.Context, room model.Room) (model.Room, error) {
	if room.DoorNumber <= 0 {
		return model.Room{}, model.NewValidationError("door_number", "must be positive")
	}
	if err := validatePositive("section_id", room.SectionID); err != nil {
		return model.Room{}, err
	}

	created, err := d.rooms.Create(ctx, room)
	if err != nil {
		return model.Room{}, fmt.Errorf("failed to create room: %w", err)
	}

	d.logger.Info("Directory: room created",
		"room_id", created.ID,
		"section_id", created.SectionID,
		"door_number", created.DoorNumber)
	return created, nil
}

func (d *Directory) UpdateRoom(ctx context.Context, id int64, patch model.RoomPatch) (model.Room, error) {
	if patch.DoorNumber != nil && *patch.DoorNumber <= 0 {
		return model.Room{}, model.NewValidationError("door_number", "must be positive")
	}
	if patch.SectionID != nil {
		if err := validatePositive("section_id", *patch.SectionID); err != nil {
			return model.Room{}, err
		}
	}

	room, err := d.rooms.Update(ctx, id, patch)
	if err != nil {
		return model.Room{}, fmt.Errorf("failed to update room %d: %w", id, err)
	}
	return room, nil
}

func (d *Directory) DeleteRoom(ctx context.Context, id int64) error {
	if err := d.rooms.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, err)
	}
	d.logger.Info("Directory: room deleted", "room_id", id)
	return nil
}
