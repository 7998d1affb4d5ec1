// Package password implements the one-way credential digest scheme (bcrypt).
package password

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies salted bcrypt digests. The cost factor is
// tunable so hashing expense can track hardware growth without changing the
// digest format.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Zero or out-of-range
// values fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the salted digest of password. Each call yields a different
// digest for the same input because bcrypt embeds a random salt.
func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. Comparison is constant
// time; a malformed digest simply yields false.
func (h *Hasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
