package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters, fixed by the stored hash format
const (
	pbkdf2Iterations = 100000
	pbkdf2KeyLength  = 64
	saltLength       = 16
)

var ErrMalformedHash = errors.New("malformed password hash")

// HashPassword derives a salted key from the password and encodes it as
// "saltHex:derivedKeyHex" for storage.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(password), []byte(saltHex), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)
	return fmt.Sprintf("%s:%s", saltHex, hex.EncodeToString(key)), nil
}

// VerifyPassword re-derives the key with the stored salt and compares it to
// the stored key in constant time.
func VerifyPassword(password, storedHash string) (bool, error) {
	salt, storedKeyHex, found := strings.Cut(storedHash, ":")
	if !found || salt == "" || storedKeyHex == "" {
		return false, ErrMalformedHash
	}

	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)
	match := subtle.ConstantTimeCompare([]byte(hex.EncodeToString(key)), []byte(storedKeyHex)) == 1
	return match, nil
}
