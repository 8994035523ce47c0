// Package password derives and verifies salted credential hashes.
//
// Stored format is "hexkey.hexsalt": a 64-byte scrypt key and the 16-byte
// random salt it was derived with, both hex-encoded. Hex encoding guarantees
// the "." separator can never collide with either part.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLen = 16
	keyLen  = 64

	// scrypt cost parameters (interactive login profile).
	costN = 16384
	costR = 8
	costP = 1
)

// Hash derives a storable credential string from a plaintext password.
// Two calls with the same plaintext produce different results because the
// salt is random per call.
func Hash(plain string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(plain), salt, costN, costR, costP, keyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// Verify reports whether plain matches the stored credential. It fails
// closed: malformed stored values are treated as a mismatch, never an error.
// The derived-key comparison is constant-time.
func Verify(plain, stored string) bool {
	keyHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok {
		return false
	}

	wantKey, err := hex.DecodeString(keyHex)
	if err != nil || len(wantKey) != keyLen {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) != saltLen {
		return false
	}

	gotKey, err := scrypt.Key([]byte(plain), salt, costN, costR, costP, keyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(gotKey, wantKey) == 1
}
