package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Scrypt parameters, fixed so stored values stay verifiable.
const (
	scryptN = 32768
	scryptR = 8
	scryptP = 1
	saltLen = 16
	keyLen  = 64
	hashSep = "."
)

// HashPassword derives a scrypt key from the password and a fresh random
// salt, stored as hex(key) + "." + hex(salt).
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + hashSep + hex.EncodeToString(salt), nil
}

// CheckPasswordHash re-derives the key from the supplied password and the
// stored salt and compares in constant time. Malformed stored values verify
// as false rather than erroring.
func CheckPasswordHash(password, stored string) bool {
	parts := strings.Split(stored, hashSep)
	if len(parts) != 2 {
		return false
	}
	expected, err := hex.DecodeString(parts[0])
	if err != nil || len(expected) != keyLen {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return false
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(key, expected) == 1
}
