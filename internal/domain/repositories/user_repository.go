package repositories

import (
	"context"
	"errors"

	"github.com/abdodolh14141/Website-Movies/internal/domain/entities"
)

var (
	// ErrDuplicateEmail and ErrDuplicateUsername surface unique-index
	// violations so callers can answer with a conflict instead of a
	// generic store error.
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUserNotFound      = errors.New("user not found")
)

type UserRepository interface {
	// Create inserts a new user. The unique indexes make the insert the
	// existence check: concurrent duplicates come back as
	// ErrDuplicateEmail / ErrDuplicateUsername.
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	// FindByEmail returns (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	// FindOrCreateByEmail is the atomic insert-if-absent used by the OAuth
	// bridge: it returns the existing record or the freshly created one,
	// never a duplicate.
	FindOrCreateByEmail(ctx context.Context, user *entities.ValidatedUser) (*entities.User, bool, error)
	// SetPasswordAndAge applies the account-completion partial update to
	// the user matched by username. A zero-document match is
	// ErrUserNotFound.
	SetPasswordAndAge(ctx context.Context, username, passwordHash string, age int) error
}
