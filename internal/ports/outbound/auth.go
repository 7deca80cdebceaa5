package outbound

import "github.com/google/uuid"

// PasswordHasher abstracts password hashing and verification
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenService issues and validates access tokens. Identity flows from the
// token on every authenticated request; callers never supply their own IDs.
type TokenService interface {
	Issue(userID uuid.UUID, email string) (token string, expiresIn int64, err error)
	Validate(token string) (uuid.UUID, error)
}
