package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/clinic-server/internal/api/http/response"
	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

// DirectoryService defines branch, section and room management.
type DirectoryService interface {
	ListBranches(ctx context.Context, page model.Page) ([]model.Branch, error)
	GetBranch(ctx context.Context, id int64) (model.Branch, error)
	CreateBranch(ctx context.Context, branch model.Branch) (model.Branch, error)
	UpdateBranch(ctx context.Context, id int64, patch model.BranchPatch) (model.Branch, error)
	DeleteBranch(ctx context.Context, id int64) error

	ListSections(ctx context.Context, filter model.SectionFilter, page model.Page) ([]model.Section, error)
	GetSection(ctx context.Context, id int64) (model.Section, error)
	CreateSection(ctx context.Context, section model.Section) (model.Section, error)
	UpdateSection(ctx context.Context, id int64, patch model.SectionPatch) (model.Section, error)
	DeleteSection(ctx context.Context, id int64) error

	ListRooms(ctx context.Context, filter model.RoomFilter, page model.Page) ([]model.Room, error)
	GetRoom(ctx context.Context, id int64) (model.Room, error)
	CreateRoom(ctx context.Context, room model.Room) (model.Room, error)
	UpdateRoom(ctx context.Context, id int64, patch model.RoomPatch) (model.Room, error)
	DeleteRoom(ctx context.Context, id int64) error
}

type branchInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type sectionInput struct {
	Name     string `json:"name"`
	BranchID int64  `json:"branch_id"`
}

type roomInput struct {
	Floor      int   `json:"floor"`
	DoorNumber int   `json:"door_number"`
	SectionID  int64 `json:"section_id"`
}

// Directory handles the branch, section and room endpoints.
type Directory struct {
	service DirectoryService
	logger  *logger.Logger
}

// NewDirectory creates a new Directory handler.
func NewDirectory(service DirectoryService, logger *logger.Logger) *Directory {
	return &Directory{service: service, logger: logger}
}

func (h *Directory) ListBranches(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	branches, err := h.service.ListBranches(r.Context(), page)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, branches)
}

func (h *Directory) GetBranch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	branch, err := h.service.GetBranch(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, branch)
}

func (h *Directory) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var in branchInput
	if err := decodeStrict(w, r, &in); err != nil {
		response.WriteError(w, r, err)
		return
	}

	branch, err := h.service.CreateBranch(r.Context(), model.Branch{Name: in.Name, Address: in.Address})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, branch)
}

func (h *Directory) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var patch model.BranchPatch
	if err := decodeStrict(w, r, &patch); err != nil {
		response.WriteError(w, r, err)
		return
	}

	branch, err := h.service.UpdateBranch(r.Context(), id, patch)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, branch)
}

func (h *Directory) DeleteBranch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteBranch(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Directory) ListSections(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	branchID, err := int64Query(r, "branch_id")
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	sections, err := h.service.ListSections(r.Context(), model.SectionFilter{BranchID: branchID}, page)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, sections)
}

func (h *Directory) GetSection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	section, err := h.service.GetSection(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, section)
}

func (h *Directory) CreateSection(w http.ResponseWriter, r *http.Request) {
	var in sectionInput
	if err := decodeStrict(w, r, &in); err != nil {
		response.WriteError(w, r, err)
		return
	}

	section, err := h.service.CreateSection(r.Context(), model.Section{Name: in.Name, BranchID: in.BranchID})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, section)
}

func (h *Directory) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var patch model.SectionPatch
	if err := decodeStrict(w, r, &patch); err != nil {
		response.WriteError(w, r, err)
		return
	}

	section, err := h.service.UpdateSection(r.Context(), id, patch)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, section)
}

func (h *Directory) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteSection(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Directory) ListRooms(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	sectionID, err := int64Query(r, "section_id")
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	rooms, err := h.service.ListRooms(r.Context(), model.RoomFilter{SectionID: sectionID}, page)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, rooms)
}

func (h *Directory) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	room, err := h.service.GetRoom(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, room)
}

func (h *Directory) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var in roomInput
	if err := decodeStrict(w, r, &in); err != nil {
		response.WriteError(w, r, err)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), model.Room{
		Floor:      in.Floor,
		DoorNumber: in.DoorNumber,
		SectionID:  in.SectionID,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, room)
}

func (h *Directory) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var patch model.RoomPatch
	if err := decodeStrict(w, r, &patch); err != nil {
		response.WriteError(w, r, err)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), id, patch)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, room)
}

func (h *Directory) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
