// Package service declares the ports usecases depend on for work that lives outside the domain:
// hashing, tokens, storage, mail, geometry and messaging.
package service

// PasswordHasher hashes account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produces hash. A malformed hash never matches.
	Check(password, hash string) bool
}
