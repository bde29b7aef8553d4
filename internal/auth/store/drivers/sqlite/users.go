package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/codezen-labs/codezen/internal/auth/domain"
	"github.com/codezen-labs/codezen/internal/auth/store"
	"github.com/codezen-labs/codezen/pkg/idx"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, first_name, last_name, email, password_hash, profile_picture, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	u.ID = idx.New().String()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, first_name, last_name, email, password_hash, profile_picture, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash,
		nullIfEmpty(u.ProfilePicture), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}
	return u, nil
}

func (r *usersRepo) UpdateProfile(
	ctx context.Context,
	userID string,
	patch domain.ProfilePatch,
) (domain.User, error) {
	// NULLIF/COALESCE keeps the prior value for every empty patch field, so
	// the merge is a single atomic statement.
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET
			first_name = COALESCE(NULLIF(?, ''), first_name),
			last_name = COALESCE(NULLIF(?, ''), last_name),
			profile_picture = COALESCE(NULLIF(?, ''), profile_picture),
			updated_at = ?
		 WHERE id = ?`,
		patch.FirstName, patch.LastName, patch.ProfilePicture,
		time.Now().UTC(), userID,
	)
	if err != nil {
		return domain.User{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, err
	}
	if affected == 0 {
		return domain.User{}, store.ErrNotFound
	}

	return r.GetUserByID(ctx, userID)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var picture sql.NullString

	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&picture, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	if picture.Valid {
		u.ProfilePicture = picture.String
	}
	return u, nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
