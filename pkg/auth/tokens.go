package auth

// TokenIssuer abstracts session-token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// PasswordHasher abstracts the one-way password digest scheme so the domain
// does not care about the algorithm or its cost factor.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
