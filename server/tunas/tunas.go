// Package tunas has services for interacting with the compile server
// backend decoupled from the API that accesses it.
package tunas

import (
	"github.com/dekarrin/ppauto/server/dao"
)

// Service is a service for interacting with and modifying the compile
// server backend. It performs the actions requested and makes calls to
// server persistence to preserve the backend state.
//
// The zero-value of Service is not ready to be used; assign a valid DAO
// store to DB before attempting to use it.
type Service struct {

	// DB is the persistence store of the service.
	DB dao.Store

	// CacheDir is the build cache directory passed to internal/pipeline for
	// every compile this service runs. An empty string disables the cache.
	CacheDir string
}
