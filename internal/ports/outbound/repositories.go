// Package outbound defines the interfaces for outbound ports (secondary/driven
// adapters). These are the interfaces the application uses to reach external
// systems: the user record store, the cache, and the text-generation service.
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pantrychef/v2/internal/domain/user"
)

// UserRepository defines the interface for user persistence. It is the core's
// only storage dependency: pantry and ledger mutations are persisted by saving
// the owning user record.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Save(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	List(ctx context.Context) ([]*user.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CompletionClient defines the single-turn text-generation call. The call is a
// blocking synchronous round-trip with no conversation state; cancellation is
// the caller's context, and failures are surfaced without retry.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
