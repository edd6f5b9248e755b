package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/clinic-server/internal/mocks"
	"github.com/dtroode/clinic-server/internal/model"
	"github.com/dtroode/clinic-server/internal/testutil"
)

func mondayMorning() model.Schedule {
	return model.Schedule{
		DoctorID:  2,
		Weekday:   model.Monday,
		StartTime: model.NewClockTime(9, 0),
		EndTime:   model.NewClockTime(13, 0),
	}
}

func TestSchedule_Create(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewScheduleStore(t)
	users := mocks.NewUserStore(t)
	svc := NewSchedule(store, users, testutil.MakeNoopLogger())

	slot := mondayMorning()
	users.On("GetByID", mock.Anything, int64(2)).Return(model.User{ID: 2, Role: model.RoleDoctor}, nil).Once()
	store.On("Create", mock.Anything, slot).Return(model.Schedule{ID: 1, DoctorID: 2}, nil).Once()

	created, err := svc.Create(ctx, slot)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestSchedule_Create_Rejected(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewScheduleStore(t)
	users := mocks.NewUserStore(t)
	svc := NewSchedule(store, users, testutil.MakeNoopLogger())

	inverted := mondayMorning()
	inverted.StartTime, inverted.EndTime = inverted.EndTime, inverted.StartTime
	_, err := svc.Create(ctx, inverted)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	empty := mondayMorning()
	empty.EndTime = empty.StartTime
	_, err = svc.Create(ctx, empty)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	badDay := mondayMorning()
	badDay.Weekday = "Funday"
	_, err = svc.Create(ctx, badDay)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	users.On("GetByID", mock.Anything, int64(2)).Return(model.User{ID: 2, Role: model.RolePatient}, nil).Once()
	_, err = svc.Create(ctx, mondayMorning())
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	ghost := mondayMorning()
	ghost.DoctorID = 77
	users.On("GetByID", mock.Anything, int64(77)).Return(model.User{}, model.ErrNotFound).Once()
	_, err = svc.Create(ctx, ghost)
	assert.ErrorIs(t, err, model.ErrInvalidReference)
}

func TestSchedule_Update_ValidatesMergedSlot(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewScheduleStore(t)
	svc := NewSchedule(store, mocks.NewUserStore(t), testutil.MakeNoopLogger())

	current := mondayMorning()
	current.ID = 5
	store.On("GetByID", mock.Anything, int64(5)).Return(current, nil)

	late := model.NewClockTime(14, 0)
	_, err := svc.Update(ctx, 5, model.SchedulePatch{StartTime: &late})
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	early := model.NewClockTime(8, 0)
	patch := model.SchedulePatch{StartTime: &early}
	updated := current
	updated.StartTime = early
	store.On("Update", mock.Anything, int64(5), patch).Return(updated, nil).Once()

	got, err := svc.Update(ctx, 5, patch)
	require.NoError(t, err)
	assert.Equal(t, "08:00", got.StartTime.String())
}

func TestSchedule_List(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewScheduleStore(t)
	svc := NewSchedule(store, mocks.NewUserStore(t), testutil.MakeNoopLogger())

	day := model.Friday
	filter := model.ScheduleFilter{DoctorID: int64Ptr(2), Weekday: &day}
	store.On("List", mock.Anything, filter, model.Page{Limit: 100}).Return([]model.Schedule{mondayMorning()}, nil).Once()

	list, err := svc.List(ctx, filter, model.Page{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	bad := model.Weekday("Mo")
	_, err = svc.List(ctx, model.ScheduleFilter{Weekday: &bad}, model.Page{Limit: 100})
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestSpecialty_Service(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewSpecialtyStore(t)
	svc := NewSpecialty(store, testutil.MakeNoopLogger())

	in := model.Specialty{Name: "Cardiology"}
	store.On("Create", mock.Anything, in).Return(model.Specialty{}, model.ErrAlreadyExists).Once()
	store.On("Delete", mock.Anything, int64(8)).Return(model.ErrNotFound).Once()

	_, err := svc.Create(ctx, in)
	assert.ErrorIs(t, err, model.ErrAlreadyExists)

	_, err = svc.Create(ctx, model.Specialty{})
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	assert.ErrorIs(t, svc.Delete(ctx, 8), model.ErrNotFound)
}
