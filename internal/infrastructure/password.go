package infrastructure

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the password with bcrypt at the default cost. Each
// call salts independently, so the output differs between calls for the
// same input.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the password matches the stored bcrypt
// hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
