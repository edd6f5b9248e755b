package model

import "context"

// BranchStore persists clinic branches.
type BranchStore interface {
	List(ctx context.Context, page Page) ([]Branch, error)
	GetByID(ctx context.Context, id int64) (Branch, error)
	Create(ctx context.Context, branch Branch) (Branch, error)
	Update(ctx context.Context, id int64, patch BranchPatch) (Branch, error)
	Delete(ctx context.Context, id int64) error
}

// SectionStore persists branch sections.
type SectionStore interface {
	List(ctx context.Context, filter SectionFilter, page Page) ([]Section, error)
	GetByID(ctx context.Context, id int64) (Section, error)
	Create(ctx context.Context, section Section) (Section, error)
	Update(ctx context.Context, id int64, patch SectionPatch) (Section, error)
	Delete(ctx context.Context, id int64) error
}

// RoomStore persists section rooms.
type RoomStore interface {
	List(ctx context.Context, filter RoomFilter, page Page) ([]Room, error)
	GetByID(ctx context.Context, id int64) (Room, error)
	Create(ctx context.Context, room Room) (Room, error)
	Update(ctx context.Context, id int64, patch RoomPatch) (Room, error)
	Delete(ctx context.Context, id int64) error
}

// Branch is a clinic location.
type Branch struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type BranchPatch struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// Section is a department inside a branch.
type Section struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	BranchID int64  `json:"branch_id"`
}

type SectionPatch struct {
	Name     *string `json:"name"`
	BranchID *int64  `json:"branch_id"`
}

type SectionFilter struct {
	BranchID *int64
}

// Room is a numbered room of a section. Door numbers are unique per section.
type Room struct {
	ID         int64 `json:"id"`
	Floor      int   `json:"floor"`
	DoorNumber int   `json:"door_number"`
	SectionID  int64 `json:"section_id"`
}

type RoomPatch struct {
	Floor      *int   `json:"floor"`
	DoorNumber *int   `json:"door_number"`
	SectionID  *int64 `json:"section_id"`
}

type RoomFilter struct {
	SectionID *int64
}
