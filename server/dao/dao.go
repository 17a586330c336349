// Package dao provides data access objects for the compile service: the
// operator accounts that can request a compile, and the Job record of a
// past HTTP-triggered compile. Adapted from the teacher's server/dao.Store,
// trimmed to the two repositories the compile service needs and stripped
// of the game/session/registration/command bookkeeping that had no
// equivalent here.
package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/google/uuid"
)

var (
	ErrConstraintViolation = errors.New("a uniqueness constraint was violated")
	ErrNotFound            = errors.New("the requested resource was not found")
)

// Store holds all the repositories.
type Store interface {
	Users() UserRepository
	Jobs() JobRepository
	Close() error
}

// Job is the record of one HTTP-triggered compile.
type Job struct {
	ID        uuid.UUID
	Flavor    model.Flavor
	States    int
	Symbols   int
	Files     int
	CreatedAt time.Time
	Outcome   string
}

// JobRepository persists Job records.
type JobRepository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	Close() error
}

type Role int

const (
	Operator Role = iota
	Admin
)

func (r Role) String() string {
	switch r {
	case Operator:
		return "operator"
	case Admin:
		return "admin"
	default:
		return fmt.Sprintf("Role(%d)", r)
	}
}

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(s) {
	case "operator":
		return Operator, nil
	case "admin":
		return Admin, nil
	default:
		return Operator, fmt.Errorf("must be one of 'operator' or 'admin'")
	}
}

// User is an operator account that can log in and request compiles.
// Password is the base64-encoded bcrypt hash, following the teacher's
// server/dao.User convention.
type User struct {
	ID             uuid.UUID
	Username       string
	Password       string
	Role           Role
	Created        time.Time
	LastLogoutTime time.Time
}

// UserRepository persists operator accounts.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Update(ctx context.Context, id uuid.UUID, user User) (User, error)
	Close() error
}
