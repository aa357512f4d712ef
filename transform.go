package wordcrypt

import (
	"fmt"
)

// Encrypt encrypts a single word under a passphrase.
//
// The function runs the complete word pipeline:
//  1. Computes the verification tag over the original word
//  2. Derives the shuffle seed and substitution key from the passphrase
//  3. Shuffles the characters with the seed-driven permutation
//  4. Encrypts the shuffled word with the keyed substitution
//
// The pipeline is fully deterministic: the same word and passphrase always
// produce the same ciphertext and tag. The ciphertext has exactly the same
// length as the word.
//
// Parameters:
//   - word: The word to encrypt; an empty word maps to ("", "") with no error
//   - passphrase: The user-provided passphrase; must not be empty
//
// Returns:
//   - string: The encrypted word
//   - string: The base64 verification tag, needed again for decryption
//   - error: An InputError if the passphrase is empty
//
// Example:
//
//	ciphertext, tag, err := wordcrypt.Encrypt("HELLO", "secret")
//	if err != nil {
//		log.Fatal(err)
//	}
func Encrypt(word, passphrase string) (string, string, error) {
	if word == "" {
		return word, "", nil
	}

	// Step 1: Tag the original word before any transformation
	tag := Tag(word, passphrase)

	// Step 2: Derive seed and key
	seed, key, err := DeriveSeedAndKey(passphrase)
	if err != nil {
		return "", "", err
	}

	// Step 3: Shuffle
	shuffled := Shuffle(word, seed)

	// Step 4: Substitute
	ciphertext, err := EncryptVigenere(shuffled, key)
	if err != nil {
		return "", "", fmt.Errorf("substitution failed: %w", err)
	}

	return ciphertext, tag, nil
}

// Decrypt reverses Encrypt and verifies the result against the stored tag.
//
// The pipeline is the exact inverse of Encrypt, in the inverse order:
//  1. Derives the same seed and key from the passphrase
//  2. Reverses the keyed substitution
//  3. Reverses the seed-driven permutation
//  4. Verifies the recovered word against the tag in constant time
//
// A failed verification is not an error: the recovered word is still returned
// with verified == false, which indicates a wrong passphrase or tampered
// ciphertext/tag. Callers decide how to treat that outcome.
//
// Parameters:
//   - ciphertext: The encrypted word; empty input maps to ("", false) with no error
//   - passphrase: The user-provided passphrase; must not be empty
//   - tag: The verification tag produced at encryption time
//
// Returns:
//   - string: The recovered word (best effort even when unverified)
//   - bool: true if the word and passphrase reproduce the tag
//   - error: An InputError if the passphrase is empty
func Decrypt(ciphertext, passphrase, tag string) (string, bool, error) {
	if ciphertext == "" {
		return ciphertext, false, nil
	}

	// Step 1: Derive seed and key
	seed, key, err := DeriveSeedAndKey(passphrase)
	if err != nil {
		return "", false, err
	}

	// Step 2: Reverse the substitution
	unsubstituted, err := DecryptVigenere(ciphertext, key)
	if err != nil {
		return "", false, fmt.Errorf("substitution failed: %w", err)
	}

	// Step 3: Reverse the shuffle
	word := Deshuffle(unsubstituted, seed)

	// Step 4: Verify against the stored tag
	verified := VerifyTag(word, passphrase, tag)

	return word, verified, nil
}
