package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/clinic-server/internal/api/http/response"
	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

// ScheduleService defines doctor schedule management.
type ScheduleService interface {
	List(ctx context.Context, filter model.ScheduleFilter, page model.Page) ([]model.Schedule, error)
	Get(ctx context.Context, id int64) (model.Schedule, error)
	Create(ctx context.Context, schedule model.Schedule) (model.Schedule, error)
	Update(ctx context.Context, id int64, patch model.SchedulePatch) (model.Schedule, error)
	Delete(ctx context.Context, id int64) error
}

type scheduleInput struct {
	DoctorID  int64           `json:"doctor_id"`
	Weekday   model.Weekday   `json:"weekday"`
	StartTime model.ClockTime `json:"start_time"`
	EndTime   model.ClockTime `json:"end_time"`
}

type Schedule struct {
	service ScheduleService
	logger  *logger.Logger
}

func NewSchedule(service ScheduleService, logger *logger.Logger) *Schedule {
	return &Schedule{service: service, logger: logger}
}

func (h *Schedule) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	doctorID, err := int64Query(r, "doctor_id")
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	filter := model.ScheduleFilter{DoctorID: doctorID}
	if raw := r.URL.Query().Get("weekday"); raw != "" {
		weekday := model.Weekday(raw)
		filter.Weekday = &weekday
	}

	schedules, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, schedules)
}

func (h *Schedule) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	schedule, err := h.service.Get(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, schedule)
}

func (h *Schedule) Create(w http.ResponseWriter, r *http.Request) {
	var in scheduleInput
	if err := decodeStrict(w, r, &in); err != nil {
		response.WriteError(w, r, err)
		return
	}

	schedule, err := h.service.Create(r.Context(), model.Schedule{
		DoctorID:  in.DoctorID,
		Weekday:   in.Weekday,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, schedule)
}

func (h *Schedule) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var patch model.SchedulePatch
	if err := decodeStrict(w, r, &patch); err != nil {
		response.WriteError(w, r, err)
		return
	}

	schedule, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, schedule)
}

func (h *Schedule) Delete(w http.ResponseWriter, r *http.Request) {
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
