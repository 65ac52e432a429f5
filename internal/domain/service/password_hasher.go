// Package service declares the ports the use cases depend on. Implementations live under internal/infra.
package service

// PasswordHasher turns a secret into a stored credential. Bulk vendor onboarding seeds
// each new account with a hash of its mobile number.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches a hash produced by Hash.
	Check(password, hash string) bool
}
