package wordcrypt

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

const (
	// seedHexLength is the number of leading hex digest characters converted
	// into the numeric shuffle seed.
	seedHexLength = 16

	// keyHexLength is the number of hex digest characters following the seed
	// slice that form the substitution key.
	keyHexLength = 16
)

// DeriveSeedAndKey derives the numeric shuffle seed and the substitution key
// from a single passphrase.
//
// The passphrase is hashed with SHA-256 and the lowercase hex digest is split:
// the first 16 hex characters, read as a base-16 integer, become the seed; the
// following 16 hex characters become the substitution key. The same passphrase
// always yields the same (seed, key) pair.
//
// Parameters:
//   - passphrase: The user-provided passphrase; must not be empty
//
// Returns:
//   - uint64: The seed for the permutation step
//   - string: The 16-character key for the substitution step
//   - error: An InputError if the passphrase is empty
func DeriveSeedAndKey(passphrase string) (uint64, string, error) {
	if passphrase == "" {
		return 0, "", NewInputError("passphrase", "passphrase cannot be empty")
	}

	digest := sha256.Sum256([]byte(passphrase))
	hashHex := hex.EncodeToString(digest[:])

	seed, err := strconv.ParseUint(hashHex[:seedHexLength], 16, 64)
	if err != nil {
		return 0, "", fmt.Errorf("seed derivation failed: %w", err)
	}

	key := hashHex[seedHexLength : seedHexLength+keyHexLength]

	return seed, key, nil
}
