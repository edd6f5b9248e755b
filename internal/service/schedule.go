package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

// Schedule manages the weekly working slots of doctors.
type Schedule struct {
	store     model.ScheduleStore
	userStore model.UserStore
	logger    *logger.Logger
}

func NewSchedule(store model.ScheduleStore, userStore model.UserStore, logger *logger.Logger) *Schedule {
	return &Schedule{
		store:     store,
		userStore: userStore,
		logger:    logger,
	}
}

func (s *Schedule) List(ctx context.Context, filter model.ScheduleFilter, page model.Page) ([]model.Schedule, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if filter.Weekday != nil && !filter.Weekday.Valid() {
		return nil, model.NewValidationError("weekday", "must be one of Mon..Sun")
	}

	schedules, err := s.store.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

func (s *Schedule) Get(ctx context.Context, id int64) (model.Schedule, error) {
	schedule, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("failed to get schedule %d: %w", id, err)
	}
	return schedule, nil
}

// Create adds a slot for a doctor. The slot must start before it ends and
// the referenced user must be a doctor.
func (s *Schedule) Create(ctx context.Context, schedule model.Schedule) (model.Schedule, error) {
	if err := validateSlot(schedule.Weekday, schedule.StartTime, schedule.EndTime); err != nil {
		return model.Schedule{}, err
	}
	if err := s.checkDoctor(ctx, schedule.DoctorID); err != nil {
		return model.Schedule{}, err
	}

	created, err := s.store.Create(ctx, schedule)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	s.logger.Info("Schedule service: slot created",
		"schedule_id", created.ID,
		"doctor_id", created.DoctorID,
		"weekday", created.Weekday)
	return created, nil
}

// Update applies patch. The resulting slot is validated as a whole, so
// moving only the start past the stored end is rejected.
func (s *Schedule) Update(ctx context.Context, id int64, patch model.SchedulePatch) (model.Schedule, error) {
	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("failed to get schedule %d: %w", id, err)
	}

	merged := current
	if patch.Weekday != nil {
		merged.Weekday = *patch.Weekday
	}
	if patch.StartTime != nil {
		merged.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		merged.EndTime = *patch.EndTime
	}
	if err := validateSlot(merged.Weekday, merged.StartTime, merged.EndTime); err != nil {
		return model.Schedule{}, err
	}
	if patch.DoctorID != nil && *patch.DoctorID != current.DoctorID {
		if err := s.checkDoctor(ctx, *patch.DoctorID); err != nil {
			return model.Schedule{}, err
		}
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("failed to update schedule %d: %w", id, err)
	}
	return updated, nil
}

func (s *Schedule) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule %d: %w", id, err)
	}
	s.logger.Info("Schedule service: slot deleted", "schedule_id", id)
	return nil
}

func (s *Schedule) checkDoctor(ctx context.Context, doctorID int64) error {
	doctor, err := s.userStore.GetByID(ctx, doctorID)
	if errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("doctor %d: %w", doctorID, model.ErrInvalidReference)
	}
	if err != nil {
		return fmt.Errorf("failed to get doctor %d: %w", doctorID, err)
	}
	if doctor.Role != model.RoleDoctor {
		return model.NewValidationError("doctor_id", "user is not a doctor")
	}
	return nil
}

func validateSlot(weekday model.Weekday, start, end model.ClockTime) error {
	if !weekday.Valid() {
		return model.NewValidationError("weekday", "must be one of Mon..Sun")
	}
	if !start.Before(end) {
		return model.NewValidationError("end_time", "must be after start_time")
	}
	return nil
}
