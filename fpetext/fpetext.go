// Package fpetext provides format-preserving encryption for printable ASCII
// text.
//
// Unlike the word pipeline in the parent package, which permutes and shifts
// characters, this package encrypts with AES-FF1 (NIST SP 800-38G) over the
// 95-character printable ASCII alphabet. The ciphertext has exactly the same
// length as the plaintext and stays printable, so it can live anywhere the
// plaintext could.
//
// Key features:
//   - Format-preserving encryption using AES-FF1 over printable ASCII
//   - Key derivation using Argon2id with a passphrase-bound salt
//   - Tweak generation with HMAC-SHA256
//   - Fully deterministic: the same text and passphrase always produce the
//     same ciphertext
//
// There is no integrity tag: decrypting with the wrong passphrase yields
// well-formed printable garbage rather than an error.
//
// Example usage:
//
//	ciphertext, err := fpetext.Encrypt("meet at dawn", "secretpassword")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	plaintext, err := fpetext.Decrypt(ciphertext, "secretpassword")
//	if err != nil {
//		log.Fatal(err)
//	}
package fpetext

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	"github.com/Tensai75/go-fpe-bytes/ff1"
	"golang.org/x/crypto/argon2"

	"github.com/enctools/wordcrypt"
)

const (
	// saltLength is the length in bytes of the Argon2id salt derived from
	// the passphrase.
	saltLength = 16

	// tweakLength is the length in bytes of the FF1 tweak.
	tweakLength = 8

	// minTextLength is the shortest text FF1 can encrypt over this
	// alphabet; a single character leaves fewer than 100 possible values.
	minTextLength = 2
)

// Alphabet defines the 95-character printable ASCII alphabet (0x20 to 0x7E)
// used for format-preserving encryption. Every byte of both plaintext and
// ciphertext belongs to it.
const Alphabet = "\x20\x21\x22\x23\x24\x25\x26\x27\x28\x29\x2A\x2B\x2C\x2D\x2E\x2F" +
	"\x30\x31\x32\x33\x34\x35\x36\x37\x38\x39\x3A\x3B\x3C\x3D\x3E\x3F" +
	"\x40\x41\x42\x43\x44\x45\x46\x47\x48\x49\x4A\x4B\x4C\x4D\x4E\x4F" +
	"\x50\x51\x52\x53\x54\x55\x56\x57\x58\x59\x5A\x5B\x5C\x5D\x5E\x5F" +
	"\x60\x61\x62\x63\x64\x65\x66\x67\x68\x69\x6A\x6B\x6C\x6D\x6E\x6F" +
	"\x70\x71\x72\x73\x74\x75\x76\x77\x78\x79\x7A\x7B\x7C\x7D\x7E"

// Encrypt encrypts printable ASCII text under a passphrase, preserving its
// length and alphabet.
//
// Parameters:
//   - text: The text to encrypt; at least 2 characters, printable ASCII only
//   - passphrase: The user-provided passphrase; must not be empty
//
// Returns:
//   - string: The ciphertext, same length as the text and fully printable
//   - error: An InputError for invalid text or passphrase, or an FF1 failure
func Encrypt(text, passphrase string) (string, error) {
	if err := validate(text, passphrase); err != nil {
		return "", err
	}

	// Step 1: Derive keys
	masterKey, encKey := deriveKeys(passphrase)

	// Step 2: Generate tweak
	tweak := generateTweak(masterKey)

	// Step 3: Encrypt using FF1
	c, err := ff1.NewCipherWithAlphabet([]byte(Alphabet), len(tweak), encKey, tweak)
	if err != nil {
		return "", fmt.Errorf("FF1 cipher setup failed: %w", err)
	}
	ciphertext, err := c.EncryptWithTweak([]byte(text), tweak)
	if err != nil {
		return "", fmt.Errorf("FF1 encryption failed: %w", err)
	}

	return string(ciphertext), nil
}

// Decrypt reverses Encrypt for the same passphrase.
//
// A wrong passphrase does not fail; it yields a different printable string of
// the same length. Callers who need tampering detection should use the word
// pipeline in the parent package, which carries a verification tag.
//
// Parameters:
//   - ciphertext: The output of a previous Encrypt call
//   - passphrase: The same passphrase used for encryption
//
// Returns:
//   - string: The recovered plaintext
//   - error: An InputError for invalid ciphertext or passphrase, or an FF1
//     failure
func Decrypt(ciphertext, passphrase string) (string, error) {
	if err := validate(ciphertext, passphrase); err != nil {
		return "", err
	}

	// Step 1: Derive keys (same as encryption)
	masterKey, encKey := deriveKeys(passphrase)

	// Step 2: Generate tweak (same as encryption)
	tweak := generateTweak(masterKey)

	// Step 3: Decrypt using FF1
	c, err := ff1.NewCipherWithAlphabet([]byte(Alphabet), len(tweak), encKey, tweak)
	if err != nil {
		return "", fmt.Errorf("FF1 cipher setup failed: %w", err)
	}
	plaintext, err := c.DecryptWithTweak([]byte(ciphertext), tweak)
	if err != nil {
		return "", fmt.Errorf("FF1 decryption failed: %w", err)
	}

	return string(plaintext), nil
}

// validate checks the text and passphrase preconditions shared by both
// directions.
func validate(text, passphrase string) error {
	if passphrase == "" {
		return wordcrypt.NewInputError("passphrase", "passphrase cannot be empty")
	}
	if len(text) < minTextLength {
		return wordcrypt.NewInputError("text", fmt.Sprintf("text must be at least %d characters", minTextLength))
	}
	for i := 0; i < len(text); i++ {
		if text[i] < ' ' || text[i] > '~' {
			return wordcrypt.NewInputError("text", fmt.Sprintf("byte %d is outside the printable ASCII alphabet", i))
		}
	}
	return nil
}

// deriveKeys generates the master key and encryption key using Argon2id and
// HMAC-SHA256. The salt is bound to the passphrase, so the whole chain is
// deterministic.
func deriveKeys(passphrase string) (masterKey, encKey []byte) {
	salt := deriveSalt(passphrase)

	// Derive master key using Argon2id
	masterKey = argon2.IDKey([]byte(passphrase), salt, 1, 64*1024, 4, 32)

	// Derive encryption key using HMAC-SHA256
	h := hmac.New(sha256.New, masterKey)
	h.Write([]byte("wordcrypt-fpe/key"))
	encKey = h.Sum(nil)

	return masterKey, encKey
}

// deriveSalt computes the deterministic Argon2id salt for a passphrase.
func deriveSalt(passphrase string) []byte {
	digest := sha256.Sum256([]byte("wordcrypt-fpe/salt" + passphrase))
	return digest[:saltLength]
}

// generateTweak creates the FF1 tweak from the master key.
func generateTweak(masterKey []byte) []byte {
	h := hmac.New(sha256.New, masterKey)
	h.Write([]byte("wordcrypt-fpe/tweak"))
	return h.Sum(nil)[:tweakLength]
}
