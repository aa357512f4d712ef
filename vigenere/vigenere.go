// Package vigenere implements the classic Vigenere cipher with an alphabetic
// key.
//
// The cipher differs from the keyed substitution in the parent package in two
// ways: the key must be purely alphabetic, and the key index advances only
// when an alphabetic text character is enciphered. Digits, punctuation, and
// spaces pass through without consuming a key position, so removing them from
// the plaintext does not change how the remaining letters are enciphered.
package vigenere

import (
	"fmt"
	"strings"

	"github.com/enctools/wordcrypt"
)

// Encrypt enciphers text with a repeating alphabetic key.
//
// The key is uppercased and repeated over the alphabetic characters of the
// text. Each letter is shifted by the alphabetic position of its key letter,
// mod 26 within its own case, so case is preserved. Non-alphabetic characters
// pass through unchanged and do not advance the key.
//
// Parameters:
//   - text: The text to encipher
//   - key: The key; must be non-empty and contain only ASCII letters
//
// Returns:
//   - string: The enciphered text, same length as the input
//   - error: An InputError if the key is empty or not purely alphabetic
func Encrypt(text, key string) (string, error) {
	return transform(text, key, false)
}

// Decrypt reverses Encrypt for the same key. Unlike the tableau variant in
// the vernam package, this cipher is a perfect inverse: Decrypt(Encrypt(text,
// key), key) == text for every text and valid key.
func Decrypt(text, key string) (string, error) {
	return transform(text, key, true)
}

// transform walks the text, shifting alphabetic characters and advancing the
// key index only when a shift happens.
func transform(text, key string, invert bool) (string, error) {
	normalized, err := normalizeKey(key)
	if err != nil {
		return "", err
	}

	keyRunes := []rune(normalized)
	textRunes := []rune(text)
	result := make([]rune, len(textRunes))
	keyIndex := 0

	for i, char := range textRunes {
		if !isASCIIAlpha(char) {
			result[i] = char
			continue
		}

		shift := int(keyRunes[keyIndex%len(keyRunes)] - 'A')
		if invert {
			shift = (26 - shift) % 26
		}
		result[i] = shiftAlpha(char, shift)
		keyIndex++
	}

	return string(result), nil
}

// normalizeKey validates that the key is non-empty, purely ASCII-alphabetic,
// and returns it uppercased.
func normalizeKey(key string) (string, error) {
	if key == "" {
		return "", wordcrypt.NewInputError("key", "key cannot be empty")
	}
	for _, char := range key {
		if !isASCIIAlpha(char) {
			return "", wordcrypt.NewInputError("key", fmt.Sprintf("key character %q is not alphabetic", char))
		}
	}
	return strings.ToUpper(key), nil
}

// shiftAlpha rotates an ASCII letter by shift positions within its own case.
func shiftAlpha(char rune, shift int) rune {
	if char >= 'A' && char <= 'Z' {
		return 'A' + (char-'A'+rune(shift))%26
	}
	return 'a' + (char-'a'+rune(shift))%26
}

// isASCIIAlpha reports whether the rune is an ASCII letter.
func isASCIIAlpha(char rune) bool {
	return (char >= 'A' && char <= 'Z') || (char >= 'a' && char <= 'z')
}
