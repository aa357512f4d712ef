// Package xorcipher implements a symmetric XOR transform over rune code
// points.
//
// Each text rune is combined with a key rune by bitwise XOR, with the key
// cycling over the text. Applying the transform twice with the same key
// restores the input, so Encrypt and Decrypt are the same operation. The
// result of an XOR is not always a valid code point; such inputs are rejected
// instead of producing a string Go cannot represent.
package xorcipher

import (
	"fmt"
	"unicode/utf8"

	"github.com/enctools/wordcrypt"
)

// Encrypt combines each text rune with the cycling key by XOR.
//
// Parameters:
//   - text: The text to transform
//   - key: The key; must not be empty
//
// Returns:
//   - string: The transformed text, same rune count as the input
//   - error: An InputError if the key is empty or an XOR result is not a
//     valid rune
func Encrypt(text, key string) (string, error) {
	return transform(text, key)
}

// Decrypt is identical to Encrypt; XOR is its own inverse.
func Decrypt(text, key string) (string, error) {
	return transform(text, key)
}

func transform(text, key string) (string, error) {
	if key == "" {
		return "", wordcrypt.NewInputError("key", "key cannot be empty")
	}

	keyRunes := []rune(key)
	textRunes := []rune(text)
	result := make([]rune, len(textRunes))

	for i, char := range textRunes {
		combined := char ^ keyRunes[i%len(keyRunes)]
		if !utf8.ValidRune(combined) {
			return "", wordcrypt.NewInputError("text", fmt.Sprintf("character %d does not map to a valid rune", i))
		}
		result[i] = combined
	}

	return string(result), nil
}
