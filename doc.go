// Package wordcrypt implements a layered, passphrase-keyed text transform
// with integrity verification, plus a line-oriented encrypted file format
// built on top of it.
//
// A single passphrase drives every layer: its SHA-256 digest yields a numeric
// seed for a deterministic character shuffle and a key for a Vigenere-style
// substitution, while the passphrase itself keys an HMAC-SHA256 verification
// tag over the original plaintext. Decryption inverts the layers in exact
// reverse order and reports, without failing, whether the recovered text
// reproduces the stored tag.
//
// Key features:
//   - Single-passphrase derivation of shuffle seed and substitution key
//   - Deterministic, length-preserving encryption (same inputs, same outputs)
//   - Tamper and wrong-passphrase detection via constant-time tag checks
//   - Line-oriented file format with per-line tags and blank-line preservation
//   - Best-effort file decoding that tolerates malformed lines and reports
//     verification statistics instead of aborting
//
// The transform is deliberately deterministic and carries no per-message
// randomness; it reproduces a specific legacy format and is not a substitute
// for standard authenticated encryption.
//
// Example usage:
//
//	ciphertext, tag, err := wordcrypt.Encrypt("HELLO", "secret")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	word, verified, err := wordcrypt.Decrypt(ciphertext, "secret", tag)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !verified {
//		log.Println("wrong passphrase or tampered data")
//	}
package wordcrypt
