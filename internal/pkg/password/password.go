package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used for at-rest password storage.
const DefaultCost = 12

// MinLength is the minimum accepted password length.
const MinLength = 8

// Hash derives a salted bcrypt digest from a plaintext password. The digest
// embeds its own salt and cost, so Verify needs no extra parameters.
func Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether plaintext matches the stored digest. A malformed
// digest verifies as false, it never panics or surfaces an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// ValidateLength checks the minimum length policy.
func ValidateLength(plaintext string) bool {
	return len(plaintext) >= MinLength
}
