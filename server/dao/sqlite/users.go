package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dekarrin/ppauto/server/dao"
	"github.com/google/uuid"
)

type UsersDB struct {
	db *sql.DB
}

func (repo *UsersDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role INTEGER NOT NULL,
		created INTEGER NOT NULL,
		last_logout_time INTEGER NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (repo *UsersDB) Create(ctx context.Context, user dao.User) (dao.User, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.User{}, fmt.Errorf("could not generate ID: %w", err)
	}

	stmt, err := repo.db.Prepare(`INSERT INTO users (id, username, password, role, created, last_logout_time) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}
	now := time.Now()
	_, err = stmt.ExecContext(ctx,
		convertToDB_UUID(newUUID),
		user.Username,
		user.Password,
		convertToDB_Role(user.Role),
		convertToDB_Time(now),
		convertToDB_Time(now),
	)
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, newUUID)
}

func (repo *UsersDB) Update(ctx context.Context, id uuid.UUID, user dao.User) (dao.User, error) {
	res, err := repo.db.ExecContext(ctx, `UPDATE users SET username=?, password=?, role=?, last_logout_time=? WHERE id=?;`,
		user.Username,
		user.Password,
		convertToDB_Role(user.Role),
		convertToDB_Time(user.LastLogoutTime),
		convertToDB_UUID(id),
	)
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}
	if rowsAff < 1 {
		return dao.User{}, dao.ErrNotFound
	}

	return repo.GetByID(ctx, id)
}

func (repo *UsersDB) GetByUsername(ctx context.Context, username string) (dao.User, error) {
	user := dao.User{Username: username}
	var id, role string
	var created, logout int64

	row := repo.db.QueryRowContext(ctx, `SELECT id, password, role, created, last_logout_time FROM users WHERE username = ?;`, username)
	err := row.Scan(&id, &user.Password, &role, &created, &logout)
	if err != nil {
		return user, wrapDBError(err)
	}

	return scanUser(user, id, role, created, logout)
}

func (repo *UsersDB) GetByID(ctx context.Context, id uuid.UUID) (dao.User, error) {
	user := dao.User{ID: id}
	var role string
	var created, logout int64

	row := repo.db.QueryRowContext(ctx, `SELECT username, password, role, created, last_logout_time FROM users WHERE id = ?;`, convertToDB_UUID(id))
	err := row.Scan(&user.Username, &user.Password, &role, &created, &logout)
	if err != nil {
		return user, wrapDBError(err)
	}

	return scanUser(user, id.String(), role, created, logout)
}

func scanUser(user dao.User, id, role string, created, logout int64) (dao.User, error) {
	if err := convertFromDB_UUID(id, &user.ID); err != nil {
		return user, err
	}
	if err := convertFromDB_Role(role, &user.Role); err != nil {
		return user, err
	}
	if err := convertFromDB_Time(created, &user.Created); err != nil {
		return user, err
	}
	if err := convertFromDB_Time(logout, &user.LastLogoutTime); err != nil {
		return user, err
	}
	return user, nil
}

func (repo *UsersDB) Close() error {
	return repo.db.Close()
}
