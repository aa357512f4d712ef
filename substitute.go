package wordcrypt

import (
	"fmt"
	"strings"
)

// GenerateVigenereKey extends a key to match the length of the text by
// truncating or repeating it.
//
// If the text is no longer than the key, the key is truncated to the text
// length; otherwise the key is repeated as many times as needed and then
// truncated. Lengths are measured in runes.
//
// Parameters:
//   - text: The text the key must cover
//   - key: The original key; must not be empty
//
// Returns:
//   - string: A key of exactly the text's length
//   - error: An InputError if the key is empty
func GenerateVigenereKey(text, key string) (string, error) {
	if key == "" {
		return "", NewInputError("key", "key cannot be empty")
	}

	textRunes := []rune(text)
	keyRunes := []rune(key)

	if len(textRunes) <= len(keyRunes) {
		return string(keyRunes[:len(textRunes)]), nil
	}

	repeated := strings.Repeat(key, len(textRunes)/len(keyRunes)+1)
	return string([]rune(repeated)[:len(textRunes)]), nil
}

// EncryptVigenere encrypts text with a polyalphabetic shift cipher keyed by a
// string.
//
// The key is first extended to the text length with GenerateVigenereKey. Text
// and key are then walked in lock-step: non-alphabetic text characters pass
// through unchanged but still consume their key position, so the alignment of
// later characters never shifts. For alphabetic characters the shift comes
// from the aligned key character: a decimal digit contributes its numeric
// value mod 26, a letter contributes its zero-based alphabetic position
// relative to its own case. The shift is added mod 26 within the text
// character's own case, so case is preserved.
//
// Parameters:
//   - text: The text to encrypt; empty text passes through unchanged
//   - key: The encryption key; must not be empty
//
// Returns:
//   - string: The encrypted text, same length as the input
//   - error: An InputError if the key is empty or a non-alphanumeric key
//     character aligns with an alphabetic text character
func EncryptVigenere(text, key string) (string, error) {
	return substitute(text, key, false)
}

// DecryptVigenere reverses EncryptVigenere for the same key.
//
// The shift derivation and lock-step walk match EncryptVigenere exactly; the
// shift is subtracted instead of added. For every text and non-empty key,
// DecryptVigenere(EncryptVigenere(text, key), key) == text.
//
// Parameters:
//   - text: The encrypted text; empty text passes through unchanged
//   - key: The same key that was used for encryption
//
// Returns:
//   - string: The decrypted text, same length as the input
//   - error: An InputError if the key is empty or a non-alphanumeric key
//     character aligns with an alphabetic text character
func DecryptVigenere(text, key string) (string, error) {
	return substitute(text, key, true)
}

// substitute performs the shared lock-step walk for both cipher directions.
// Decryption inverts each shift mod 26 and then adds it, so the two
// directions cannot drift apart.
func substitute(text, key string, invert bool) (string, error) {
	if text == "" {
		return text, nil
	}

	extended, err := GenerateVigenereKey(text, key)
	if err != nil {
		return "", err
	}

	textRunes := []rune(text)
	keyRunes := []rune(extended)
	result := make([]rune, len(textRunes))

	for i, char := range textRunes {
		if !isASCIIAlpha(char) {
			result[i] = char
			continue
		}

		shift, err := keyShift(keyRunes[i])
		if err != nil {
			return "", err
		}
		if invert {
			shift = (26 - shift) % 26
		}
		result[i] = shiftAlpha(char, shift)
	}

	return string(result), nil
}

// keyShift derives the shift value contributed by a single key character.
func keyShift(keyChar rune) (int, error) {
	switch {
	case keyChar >= '0' && keyChar <= '9':
		return int(keyChar-'0') % 26, nil
	case keyChar >= 'A' && keyChar <= 'Z':
		return int(keyChar - 'A'), nil
	case keyChar >= 'a' && keyChar <= 'z':
		return int(keyChar - 'a'), nil
	default:
		return 0, NewInputError("key", fmt.Sprintf("key character %q is not alphanumeric", keyChar))
	}
}

// shiftAlpha rotates an ASCII letter by shift positions within its own case.
func shiftAlpha(char rune, shift int) rune {
	if char >= 'A' && char <= 'Z' {
		return 'A' + (char-'A'+rune(shift))%26
	}
	return 'a' + (char-'a'+rune(shift))%26
}

// isASCIIAlpha reports whether the rune is an ASCII letter. Only ASCII
// letters take part in the substitution; everything else passes through.
func isASCIIAlpha(char rune) bool {
	return (char >= 'A' && char <= 'Z') || (char >= 'a' && char <= 'z')
}
