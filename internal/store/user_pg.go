package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"
)

type UserPG struct {
	db *pgxpool.Pool
}

func NewUserPG(db *pgxpool.Pool) *UserPG {
	return &UserPG{db: db}
}

// Create inserts the identity and its role assignment in one
// transaction so a half-registered user is never visible.
func (r *UserPG) Create(ctx context.Context, u *entity.User, roleName string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const insertUser = `
	INSERT INTO users (id, email, username, password_hash, first_name, last_name)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(ctx, insertUser, u.Email, u.Username, u.Password, u.FirstName, u.LastName).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, usecase.ErrDuplicate) {
			return usecase.ErrAlreadyExists
		}
		return err
	}

	const assignRole = `
	INSERT INTO user_roles (user_id, role_id)
	SELECT $1, id FROM roles WHERE name = $2
	`
	tag, err := tx.Exec(ctx, assignRole, u.ID, roleName)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	u.Roles = []string{roleName}

	return tx.Commit(ctx)
}

const userColumns = `
	u.id, u.email, u.username, u.password_hash, u.first_name, u.last_name,
	u.created_at, u.updated_at,
	COALESCE(array_agg(r.name) FILTER (WHERE r.name IS NOT NULL), '{}')
`

func (r *UserPG) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	const query = `
	SELECT ` + userColumns + `
	FROM users u
	LEFT JOIN user_roles ur ON ur.user_id = u.id
	LEFT JOIN roles r ON r.id = ur.role_id
	WHERE lower(u.email) = lower($1)
	GROUP BY u.id
	`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserPG) GetByID(ctx context.Context, id string) (entity.User, error) {
	const query = `
	SELECT ` + userColumns + `
	FROM users u
	LEFT JOIN user_roles ur ON ur.user_id = u.id
	LEFT JOIN roles r ON r.id = ur.role_id
	WHERE u.id = $1
	GROUP BY u.id
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserPG) RolesOf(ctx context.Context, userID string) ([]string, error) {
	const query = `
	SELECT r.name
	FROM roles r
	JOIN user_roles ur ON ur.role_id = r.id
	WHERE ur.user_id = $1
	ORDER BY r.name
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		roles = append(roles, name)
	}
	return roles, rows.Err()
}

func (r *UserPG) scanUser(row pgx.Row) (entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Password, &u.FirstName, &u.LastName,
		&u.CreatedAt, &u.UpdatedAt, &u.Roles)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.ErrNotFound
		}
		return entity.User{}, err
	}
	return u, nil
}
