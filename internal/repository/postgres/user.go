package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/clinic-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, email, password_hash, full_name, phone, role, bio, specialty_id, avatar_key, created_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Phone, &user.Role,
		&user.Bio, &user.SpecialtyID, &user.AvatarKey, &user.CreatedAt,
	)
	return user, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return model.User{}, mapError(err, "get user by email")
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return model.User{}, mapError(err, "get user by id")
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (email, password_hash, full_name, phone, role, bio, specialty_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.FullName, user.Phone, string(user.Role), user.Bio, user.SpecialtyID,
	))
	if err != nil {
		return model.User{}, mapError(err, "create user")
	}

	return saved, nil
}

func (r *UserRepository) List(ctx context.Context, filter model.UserFilter, page model.Page) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var args []any
	if filter.Role != nil {
		args = append(args, string(*filter.Role))
		query += ` WHERE role = $1`
	}
	query += ` ORDER BY id`
	query, args = pageArgs(query, args, page)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list users")
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, patch model.UserPatch) (model.User, error) {
	var set setClause
	if patch.FullName != nil {
		set.add("full_name", *patch.FullName)
	}
	if patch.Email != nil {
		set.add("email", *patch.Email)
	}
	if patch.Phone != nil {
		set.add("phone", *patch.Phone)
	}
	if patch.Bio != nil {
		set.add("bio", *patch.Bio)
	}
	if patch.SpecialtyID != nil {
		set.add("specialty_id", *patch.SpecialtyID)
	}
	if set.empty() {
		return r.GetByID(ctx, id)
	}

	columns, args, idArg := set.build(id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`, columns, idArg, userColumns)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return model.User{}, mapError(err, "update user")
	}

	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "users", id)
}

func (r *UserRepository) SetAvatar(ctx context.Context, id int64, key string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET avatar_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return mapError(err, "set user avatar")
	}
	return expectAffected(res)
}
