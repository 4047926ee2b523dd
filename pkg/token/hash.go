package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for token hashing.
const (
	// Argon2Memory is the memory parameter in KiB (16 MiB).
	Argon2Memory uint32 = 16384

	// Argon2Time is the iteration count.
	Argon2Time uint32 = 2

	// Argon2Parallelism is the parallelism factor.
	Argon2Parallelism uint8 = 2

	// Argon2KeyLen is the output hash length in bytes.
	Argon2KeyLen uint32 = 32

	// Argon2SaltLen is the salt length in bytes.
	Argon2SaltLen = 16
)

const argon2Prefix = "$argon2id$"

// Bounds on parameters accepted from encoded hashes.
const (
	maxArgon2Memory  uint32 = 1 << 20 // 1 GiB
	maxArgon2Time    uint32 = 16
	minArgon2KeyLen         = 16
	maxArgon2KeyLen         = 128
	maxArgon2SaltLen        = 64
)

// Hash computes the SHA-256 hash of a token value.
//
// The returned hash is hex encoded for storage.
func Hash(v Value) string {
	h := sha256.Sum256(v.data)
	return hex.EncodeToString(h[:])
}

// HashArgon2id computes a salted Argon2id hash of a token value, for values
// with too little entropy to store as a plain digest (short integer codes).
//
// Format: $argon2id$v=19$m=16384,t=2,p=2$<salt>$<hash>
func HashArgon2id(v Value) (string, error) {
	return hashArgon2id(v, rand.Reader)
}

func hashArgon2id(v Value, r io.Reader) (string, error) {
	salt := make([]byte, Argon2SaltLen)
	if _, err := io.ReadFull(r, salt); err != nil {
		return "", ErrGenerationFailure.WithDetails("salt source failed").WithCause(err)
	}

	hash := argon2.IDKey(v.data, salt, Argon2Time, Argon2Memory, Argon2Parallelism, Argon2KeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix, argon2.Version, Argon2Memory, Argon2Time, Argon2Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Verify verifies a token value against an expected hash produced by Hash
// or HashArgon2id.
//
// Uses constant-time comparison to prevent timing attacks.
func Verify(v Value, expectedHash string) bool {
	if strings.HasPrefix(expectedHash, argon2Prefix) {
		return verifyArgon2id(v, expectedHash)
	}
	actualHash := Hash(v)
	return subtle.ConstantTimeCompare([]byte(actualHash), []byte(expectedHash)) == 1
}

func verifyArgon2id(v Value, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}
	if memory == 0 || memory > maxArgon2Memory || time == 0 || time > maxArgon2Time || threads == 0 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 || len(salt) > maxArgon2SaltLen {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) < minArgon2KeyLen || len(expected) > maxArgon2KeyLen {
		return false
	}

	computed := argon2.IDKey(v.data, salt, time, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(computed, expected) == 1
}
