package wordcrypt

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Tag computes the verification tag binding a word to a passphrase.
//
// The tag is an HMAC-SHA256 over the UTF-8 bytes of the word, keyed by the
// UTF-8 bytes of the passphrase, rendered as standard base64 with padding.
// It is computed over the original plaintext word, never the ciphertext, so
// verification after decryption proves both that the passphrase was right and
// that the stored data was not altered.
//
// Parameters:
//   - word: The original plaintext word
//   - passphrase: The user-provided passphrase
//
// Returns:
//   - string: The 44-character base64 tag
func Tag(word, passphrase string) string {
	mac := hmac.New(sha256.New, []byte(passphrase))
	mac.Write([]byte(word))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyTag reports whether a word and passphrase reproduce the expected tag.
//
// The comparison is constant time, so the result is returned in the same
// amount of time regardless of where the first mismatch occurs.
//
// Parameters:
//   - word: The decrypted word to check
//   - passphrase: The user-provided passphrase
//   - expectedTag: The tag stored at encryption time
//
// Returns:
//   - bool: true if the recomputed tag matches expectedTag
func VerifyTag(word, passphrase, expectedTag string) bool {
	calculated := Tag(word, passphrase)
	return hmac.Equal([]byte(calculated), []byte(expectedTag))
}
