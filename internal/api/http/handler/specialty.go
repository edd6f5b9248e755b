package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/clinic-server/internal/api/http/response"
	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

// SpecialtyService defines specialty management.
type SpecialtyService interface {
	List(ctx context.Context, page model.Page) ([]model.Specialty, error)
	Get(ctx context.Context, id int64) (model.Specialty, error)
	Create(ctx context.Context, specialty model.Specialty) (model.Specialty, error)
	Update(ctx context.Context, id int64, patch model.SpecialtyPatch) (model.Specialty, error)
	Delete(ctx context.Context, id int64) error
}

type specialtyInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type Specialty struct {
	service SpecialtyService
	logger  *logger.Logger
}

func NewSpecialty(service SpecialtyService, logger *logger.Logger) *Specialty {
	return &Specialty{service: service, logger: logger}
}

func (h *Specialty) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	specialties, err := h.service.List(r.Context(), page)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, specialties)
}

func (h *Specialty) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	specialty, err := h.service.Get(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, specialty)
}

func (h *Specialty) Create(w http.ResponseWriter, r *http.Request) {
	var in specialtyInput
	if err := decodeStrict(w, r, &in); err != nil {
		response.WriteError(w, r, err)
		return
	}

	specialty, err := h.service.Create(r.Context(), model.Specialty{Name: in.Name, Description: in.Description})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, specialty)
}

func (h *Specialty) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var patch model.SpecialtyPatch
	if err := decodeStrict(w, r, &patch); err != nil {
		response.WriteError(w, r, err)
		return
	}

	specialty, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, specialty)
}

func (h *Specialty) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
