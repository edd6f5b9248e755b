package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:30", want: "09:30"},
		{in: "9:05", want: "09:05"},
		{in: "17:45:10", want: "17:45"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "1:2:3:4", wantErr: true},
		{in: "09:00xyz", wantErr: true},
		{in: "9:5junk", wantErr: true},
		{in: "10:15:00 ", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseClockTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestClockTime_JSON(t *testing.T) {
	var s Schedule
	require.NoError(t, json.Unmarshal([]byte(`{"weekday":"Mon","start_time":"08:00","end_time":"12:30"}`), &s))
	assert.Equal(t, Monday, s.Weekday)
	assert.True(t, s.StartTime.Before(s.EndTime))

	out, err := json.Marshal(s.EndTime)
	require.NoError(t, err)
	assert.JSONEq(t, `"12:30"`, string(out))
}

func TestClockTime_Scan(t *testing.T) {
	var c ClockTime
	require.NoError(t, c.Scan("08:15:00"))
	assert.Equal(t, NewClockTime(8, 15), c)
	require.NoError(t, c.Scan([]byte("23:59")))
	assert.Equal(t, "23:59", c.String())
	assert.Error(t, c.Scan(42))

	v, err := NewClockTime(7, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, "07:05:00", v)
}

func TestPage_Validate(t *testing.T) {
	assert.NoError(t, Page{Limit: 100}.Validate())
	assert.ErrorIs(t, Page{Limit: 0}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, Page{Limit: 501}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, Page{Limit: 10, Offset: -1}.Validate(), ErrInvalidArgument)
}

func TestAuthError_Is(t *testing.T) {
	err := NewAuthError(ErrInvalidToken, "blocked")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrExpiredToken)
	assert.Equal(t, "invalid token: blocked", err.Error())
}
