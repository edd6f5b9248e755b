package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/clinic-server/internal/model"
)

// mapError translates driver errors into model errors. what names the
// failed operation for the wrapped message.
func mapError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %s: %w", what, pgErr.ConstraintName, model.ErrAlreadyExists)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %s: %w", what, pgErr.ConstraintName, model.ErrInvalidReference)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return fmt.Errorf("%s: %s: %w", what, pgErr.ConstraintName, model.ErrInvalidArgument)
		}
	}

	return fmt.Errorf("failed to %s: %w", what, err)
}

// setClause builds the SET list of a partial UPDATE. Placeholders are
// numbered in the order columns are added.
type setClause struct {
	columns []string
	args    []any
}

func (s *setClause) add(column string, value any) {
	s.args = append(s.args, value)
	s.columns = append(s.columns, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

func (s *setClause) empty() bool {
	return len(s.columns) == 0
}

// build returns "col = $1, ..." and the argument list with id appended as
// the last placeholder.
func (s *setClause) build(id int64) (string, []any, int) {
	args := append(s.args, id)
	return strings.Join(s.columns, ", "), args, len(args)
}

// pageArgs appends limit and offset placeholders to a query.
func pageArgs(query string, args []any, page model.Page) (string, []any) {
	args = append(args, page.Limit, page.Offset)
	return fmt.Sprintf("%s LIMIT $%d OFFSET $%d", query, len(args)-1, len(args)), args
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// deleteByID removes one row of table. table is always a package constant.
func deleteByID(ctx context.Context, db DBTX, table string, id int64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete from "+table)
	}
	return expectAffected(res)
}
