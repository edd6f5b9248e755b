package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/clinic-server/internal/model"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: sql.ErrNoRows, want: model.ErrNotFound},
		{name: "unique", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}, want: model.ErrAlreadyExists},
		{name: "foreign key", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: model.ErrInvalidReference},
		{name: "check", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: model.ErrInvalidArgument},
		{name: "other pg error", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: nil},
		{name: "plain error", err: errors.New("boom"), want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mapError(tt.err, "do thing")
			if tt.want != nil {
				assert.ErrorIs(t, got, tt.want)
				return
			}
			assert.ErrorIs(t, got, tt.err)
			assert.Contains(t, got.Error(), "failed to do thing")
		})
	}

	assert.NoError(t, mapError(nil, "noop"))
}

func TestSetClause(t *testing.T) {
	var set setClause
	assert.True(t, set.empty())

	set.add("name", "a")
	set.add("address", "b")
	columns, args, idArg := set.build(9)

	assert.Equal(t, "name = $1, address = $2", columns)
	assert.Equal(t, []any{"a", "b", int64(9)}, args)
	assert.Equal(t, 3, idArg)
}

func TestPageArgs(t *testing.T) {
	query, args := pageArgs("SELECT 1 WHERE x = $1", []any{"v"}, model.Page{Limit: 10, Offset: 20})
	assert.Equal(t, "SELECT 1 WHERE x = $1 LIMIT $2 OFFSET $3", query)
	assert.Equal(t, []any{"v", 10, 20}, args)
}
