package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest of the plaintext. The salt is
// generated per call and embedded in the digest, so no separate salt storage
// is needed. cost tunes the work factor; values below bcrypt.MinCost fall
// back to bcrypt.DefaultCost.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the digest. The comparison
// is constant-time inside bcrypt.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
