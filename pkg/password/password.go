package password

import "golang.org/x/crypto/bcrypt"

// bcrypt cost = 12: balance between security and login latency
const hashCost = 12

// Hasher wraps bcrypt so services depend on an injectable hasher
// instead of calling the library directly.
type Hasher struct {
	cost int
}

// NewHasher creates a hasher with the default cost.
func NewHasher() *Hasher {
	return &Hasher{cost: hashCost}
}

// Hash returns a salted one-way hash of the plaintext password.
// The plaintext is never stored anywhere.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
// bcrypt.CompareHashAndPassword is constant-time; a malformed hash
// simply fails the comparison, it never panics.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
