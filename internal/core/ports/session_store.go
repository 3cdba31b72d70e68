package ports

import "context"

// SessionStore maps opaque session tokens to user ids. Sessions are created
// at login and destroyed at logout; expiry is delegated to the backing store.
type SessionStore interface {
	// Create binds a fresh opaque token to the user id and returns it.
	Create(ctx context.Context, userID string) (string, error)
	// UserID resolves a token; domain.ErrSessionNotFound when absent or expired.
	UserID(ctx context.Context, token string) (string, error)
	// Destroy removes the session. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}
