package auth

// Account is a domain entity representing a registered credential holder.
// ID is assigned by storage; Email is unique and stored case-sensitively;
// PasswordHash is the bcrypt digest of the account password (at most 60 bytes).
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
}
