package model

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ScheduleStore persists weekly doctor schedules.
type ScheduleStore interface {
	List(ctx context.Context, filter ScheduleFilter, page Page) ([]Schedule, error)
	GetByID(ctx context.Context, id int64) (Schedule, error)
	Create(ctx context.Context, schedule Schedule) (Schedule, error)
	Update(ctx context.Context, id int64, patch SchedulePatch) (Schedule, error)
	Delete(ctx context.Context, id int64) error
}

// Weekday is a day of the week as stored in schedules: "Mon" through "Sun".
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// Valid reports whether d is one of the seven weekdays.
func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// ClockTime is a time of day with minute precision, encoded as "HH:MM".
type ClockTime struct {
	Minutes int
}

// NewClockTime builds a ClockTime from hours and minutes.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime{Minutes: hour*60 + minute}
}

// ParseClockTime parses "HH:MM" or "HH:MM:SS". Seconds are dropped.
func ParseClockTime(s string) (ClockTime, error) {
	layout := "15:04"
	if strings.Count(s, ":") == 2 {
		layout = "15:04:05"
	}
	parsed, err := time.Parse(layout, s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time %q", s)
	}
	return NewClockTime(parsed.Hour(), parsed.Minute()), nil
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Minutes/60, t.Minutes%60)
}

// Before reports whether t is earlier in the day than u.
func (t ClockTime) Before(u ClockTime) bool {
	return t.Minutes < u.Minutes
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value stores the time as a Postgres time literal.
func (t ClockTime) Value() (driver.Value, error) {
	return t.String() + ":00", nil
}

// Scan reads a time column rendered as text.
func (t *ClockTime) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Schedule is a weekly working slot of a doctor.
type Schedule struct {
	ID        int64     `json:"id"`
	DoctorID  int64     `json:"doctor_id"`
	Weekday   Weekday   `json:"weekday"`
	StartTime ClockTime `json:"start_time"`
	EndTime   ClockTime `json:"end_time"`
}

type SchedulePatch struct {
	DoctorID  *int64     `json:"doctor_id"`
	Weekday   *Weekday   `json:"weekday"`
	StartTime *ClockTime `json:"start_time"`
	EndTime   *ClockTime `json:"end_time"`
}

type ScheduleFilter struct {
	DoctorID *int64
	Weekday  *Weekday
}
