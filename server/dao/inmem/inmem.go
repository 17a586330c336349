// Package inmem is the in-memory dao.Store backend: the default when the
// server is started without a --db flag.
package inmem

import "github.com/dekarrin/ppauto/server/dao"

type store struct {
	users *InMemoryUsersRepository
	jobs  *InMemoryJobsRepository
}

func NewDatastore() dao.Store {
	return &store{
		users: NewUsersRepository(),
		jobs:  NewJobsRepository(),
	}
}

func (s *store) Users() dao.UserRepository {
	return s.users
}

func (s *store) Jobs() dao.JobRepository {
	return s.jobs
}

func (s *store) Close() error {
	return nil
}
