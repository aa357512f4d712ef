// Package vernam implements an uppercase tableau cipher in the style of the
// Vernam scheme.
//
// The output alphabet is A-Z plus the space: every whitespace character maps
// to a single space without consuming a key position, and every other
// character is pushed through the tableau, so digits and punctuation come out
// as letters and are not recoverable. The tableau wraps one row early on
// encryption, which makes Decrypt return the preceding letter for any
// character that wrapped; the transform reproduces that behavior exactly
// rather than correcting it, so existing ciphertexts keep decrypting to the
// same output.
package vernam

import (
	"strings"
	"unicode"

	"github.com/enctools/wordcrypt"
)

// alphabet is the tableau row; indices into it are computed mod its length.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Encrypt enciphers a message with a repeating key over the A-Z tableau.
// The key must not be empty; message and key are uppercased before use.
func Encrypt(message, key string) (string, error) {
	return transform(message, key, false)
}

// Decrypt reverses Encrypt, except for characters that wrapped around the
// tableau during encryption; those come back one letter early.
func Decrypt(message, key string) (string, error) {
	return transform(message, key, true)
}

func transform(message, key string, invert bool) (string, error) {
	if key == "" {
		return "", wordcrypt.NewInputError("key", "key cannot be empty")
	}

	keyRunes := []rune(strings.ToUpper(key))
	var result strings.Builder
	result.Grow(len(message))
	keyIndex := 0

	for _, char := range message {
		if unicode.IsSpace(char) {
			result.WriteByte(' ')
			continue
		}

		a := alphaIndex(unicode.ToUpper(char))
		b := alphaIndex(keyRunes[keyIndex]) + 1
		keyIndex = (keyIndex + 1) % len(keyRunes)

		var c int
		if invert {
			c = a - b
			if c < 0 {
				c += len(alphabet) - 1
				if c < 0 {
					c += len(alphabet)
				}
			} else if c > len(alphabet)-1 {
				c -= len(alphabet) - 1
			}
		} else {
			c = a + b
			if c >= len(alphabet)-1 {
				c -= len(alphabet)
			}
			if c < 0 {
				c += len(alphabet)
			}
		}

		result.WriteByte(alphabet[c])
	}

	return result.String(), nil
}

// alphaIndex returns the tableau index of an uppercase letter, or 0 for any
// rune outside A-Z.
func alphaIndex(char rune) int {
	if char >= 'A' && char <= 'Z' {
		return int(char - 'A')
	}
	return 0
}
