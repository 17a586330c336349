package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dekarrin/ppauto/server/dao"
	"github.com/google/uuid"
)

func NewJobsRepository() *InMemoryJobsRepository {
	return &InMemoryJobsRepository{jobs: make(map[uuid.UUID]dao.Job)}
}

type InMemoryJobsRepository struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]dao.Job
}

func (ijr *InMemoryJobsRepository) Close() error {
	return nil
}

func (ijr *InMemoryJobsRepository) Create(ctx context.Context, j dao.Job) (dao.Job, error) {
	ijr.mu.Lock()
	defer ijr.mu.Unlock()

	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Job{}, fmt.Errorf("could not generate ID: %w", err)
	}
	j.ID = newUUID
	j.CreatedAt = time.Now()

	ijr.jobs[j.ID] = j
	return j, nil
}

func (ijr *InMemoryJobsRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.Job, error) {
	ijr.mu.Lock()
	defer ijr.mu.Unlock()

	j, ok := ijr.jobs[id]
	if !ok {
		return dao.Job{}, dao.ErrNotFound
	}
	return j, nil
}
