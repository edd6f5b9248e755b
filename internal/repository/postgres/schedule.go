package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtroode/clinic-server/internal/model"
)

var _ model.ScheduleStore = (*ScheduleRepository)(nil)

// Times are read back as "HH24:MI" text so they scan into model.ClockTime
// regardless of how the driver renders TIME values.
const scheduleColumns = `id, doctor_id, weekday, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')`

type ScheduleRepository struct {
	db DBTX
}

func NewScheduleRepository(db DBTX) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func scanSchedule(row rowScanner) (model.Schedule, error) {
	var s model.Schedule
	err := row.Scan(&s.ID, &s.DoctorID, &s.Weekday, &s.StartTime, &s.EndTime)
	return s, err
}

func (r *ScheduleRepository) List(ctx context.Context, filter model.ScheduleFilter, page model.Page) ([]model.Schedule, error) {
	var conditions []string
	var args []any
	if filter.DoctorID != nil {
		args = append(args, *filter.DoctorID)
		conditions = append(conditions, fmt.Sprintf("doctor_id = $%d", len(args)))
	}
	if filter.Weekday != nil {
		args = append(args, string(*filter.Weekday))
		conditions = append(conditions, fmt.Sprintf("weekday = $%d", len(args)))
	}

	query := `SELECT ` + scheduleColumns + ` FROM doctor_schedule`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query, args = pageArgs(query+` ORDER BY id`, args, page)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list schedules")
	}
	defer rows.Close()

	schedules := make([]model.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedules: %w", err)
	}
	return schedules, nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (model.Schedule, error) {
	s, err := scanSchedule(r.db.QueryRowContext(ctx, `SELECT `+scheduleColumns+` FROM doctor_schedule WHERE id = $1`, id))
	if err != nil {
		return model.Schedule{}, mapError(err, "get schedule")
	}
	return s, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule model.Schedule) (model.Schedule, error) {
	s, err := scanSchedule(r.db.QueryRowContext(ctx,
		`INSERT INTO doctor_schedule (doctor_id, weekday, start_time, end_time)
		 VALUES ($1, $2, $3::time, $4::time)
		 RETURNING `+scheduleColumns,
		schedule.DoctorID, string(schedule.Weekday), schedule.StartTime, schedule.EndTime,
	))
	if err != nil {
		return model.Schedule{}, mapError(err, "create schedule")
	}
	return s, nil
}

func (r *ScheduleRepository) Update(ctx context.Context, id int64, patch model.SchedulePatch) (model.Schedule, error) {
	var set setClause
	if patch.DoctorID != nil {
		set.add("doctor_id", *patch.DoctorID)
	}
	if patch.Weekday != nil {
		set.add("weekday", string(*patch.Weekday))
	}
	if patch.StartTime != nil {
		set.add("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		set.add("end_time", *patch.EndTime)
	}
	if set.empty() {
		return r.GetByID(ctx, id)
	}

	columns, args, idArg := set.build(id)
	query := fmt.Sprintf(`UPDATE doctor_schedule SET %s WHERE id = $%d RETURNING %s`, columns, idArg, scheduleColumns)

	s, err := scanSchedule(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return model.Schedule{}, mapError(err, "update schedule")
	}
	return s, nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "doctor_schedule", id)
}
