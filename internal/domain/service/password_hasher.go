// Package service declares the collaborators usecases depend on but do not implement:
// credentials, tokens, check-in codes, blob storage, idempotency and metrics.
package service

// PasswordHasher turns account passwords into stored bcrypt hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash; malformed hashes never match.
	Check(password, hash string) bool
}
