// Package sqlite is the sqlite-backed dao.Store: the --db sqlite:PATH
// option on ppauto serve. Adapted from the teacher's server/dao/sqlite,
// trimmed to one file and the two tables the compile service needs.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dekarrin/ppauto/server/dao"
	"github.com/google/uuid"
	"modernc.org/sqlite"
)

type store struct {
	filename string
	db       *sql.DB

	users *UsersDB
	jobs  *JobsDB
}

// NewDatastore opens (creating if necessary) the sqlite file at path and
// initializes its schema.
func NewDatastore(path string) (dao.Store, error) {
	st := &store{filename: path}

	var err error
	st.db, err = sql.Open("sqlite", path)
	if err != nil {
		return nil, wrapDBError(err)
	}

	st.users = &UsersDB{db: st.db}
	if err := st.users.init(); err != nil {
		return nil, err
	}

	st.jobs = &JobsDB{db: st.db}
	if err := st.jobs.init(); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *store) Users() dao.UserRepository { return s.users }
func (s *store) Jobs() dao.JobRepository   { return s.jobs }

func (s *store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%s: %w", s.filename, err)
	}
	return nil
}

func convertToDB_UUID(u uuid.UUID) string { return u.String() }
func convertToDB_Time(t time.Time) int64  { return t.Unix() }
func convertToDB_Role(r dao.Role) string  { return r.String() }

func convertFromDB_Role(s string, target *dao.Role) error {
	r, err := dao.ParseRole(s)
	if err != nil {
		return fmt.Errorf("decode role: %w", err)
	}
	*target = r
	return nil
}

func convertFromDB_UUID(s string, target *uuid.UUID) error {
	u, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("decode UUID: %w", err)
	}
	*target = u
	return nil
}

func convertFromDB_Time(i int64, target *time.Time) error {
	*target = time.Unix(i, 0)
	return nil
}

func wrapDBError(err error) error {
	if err == nil {
		return nil
	}
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == 19 {
			return dao.ErrConstraintViolation
		}
		return fmt.Errorf("%s", sqlite.ErrorCodeString[sqliteErr.Code()])
	} else if errors.Is(err, sql.ErrNoRows) {
		return dao.ErrNotFound
	}
	return err
}
