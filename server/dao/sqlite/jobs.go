package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/dekarrin/ppauto/server/dao"
	"github.com/google/uuid"
)

type JobsDB struct {
	db *sql.DB
}

func (repo *JobsDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS jobs (
		id TEXT NOT NULL PRIMARY KEY,
		flavor TEXT NOT NULL,
		states INTEGER NOT NULL,
		symbols INTEGER NOT NULL,
		files INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		outcome TEXT NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (repo *JobsDB) Create(ctx context.Context, j dao.Job) (dao.Job, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Job{}, fmt.Errorf("could not generate ID: %w", err)
	}

	stmt, err := repo.db.Prepare(`INSERT INTO jobs (id, flavor, states, symbols, files, created_at, outcome) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return dao.Job{}, wrapDBError(err)
	}
	_, err = stmt.ExecContext(ctx,
		convertToDB_UUID(newUUID),
		string(j.Flavor),
		j.States,
		j.Symbols,
		j.Files,
		convertToDB_Time(time.Now()),
		j.Outcome,
	)
	if err != nil {
		return dao.Job{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, newUUID)
}

func (repo *JobsDB) GetByID(ctx context.Context, id uuid.UUID) (dao.Job, error) {
	j := dao.Job{ID: id}
	var flavor string
	var createdAt int64

	row := repo.db.QueryRowContext(ctx, `SELECT flavor, states, symbols, files, created_at, outcome FROM jobs WHERE id = ?;`, convertToDB_UUID(id))
	err := row.Scan(&flavor, &j.States, &j.Symbols, &j.Files, &createdAt, &j.Outcome)
	if err != nil {
		return j, wrapDBError(err)
	}

	j.Flavor = model.Flavor(flavor)
	if err := convertFromDB_Time(createdAt, &j.CreatedAt); err != nil {
		return j, err
	}
	return j, nil
}

func (repo *JobsDB) Close() error {
	return repo.db.Close()
}
