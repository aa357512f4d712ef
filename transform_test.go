package wordcrypt

import (
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		passphrase string
	}{
		{name: "Simple word", word: "HELLO", passphrase: "secret"},
		{name: "Lowercase word", word: "hello", passphrase: "secret"},
		{name: "Mixed case", word: "HeLLoWoRLd", passphrase: "my-pass-123"},
		{name: "Single character", word: "x", passphrase: "secret"},
		{name: "Digits and punctuation", word: "a1b2,c3!", passphrase: "secret"},
		{name: "Whitespace inside word", word: "two words", passphrase: "secret"},
		{name: "Unicode word", word: "héllo wörld", passphrase: "secret"},
		{name: "Unicode passphrase", word: "hello", passphrase: "pässwörd"},
		{name: "Long word", word: "supercalifragilisticexpialidocious", passphrase: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, tag, err := Encrypt(tt.word, tt.passphrase)
			if err != nil {
				t.Fatalf("Encryption failed: %v", err)
			}

			if len([]rune(ciphertext)) != len([]rune(tt.word)) {
				t.Errorf("Encryption changed length: %q -> %q", tt.word, ciphertext)
			}

			word, verified, err := Decrypt(ciphertext, tt.passphrase, tag)
			if err != nil {
				t.Fatalf("Decryption failed: %v", err)
			}

			if word != tt.word {
				t.Errorf("Expected %q, got %q", tt.word, word)
			}

			if !verified {
				t.Error("Expected the round-tripped word to verify")
			}
		})
	}
}

func TestEncryptKnownValue(t *testing.T) {
	ciphertext, tag, err := Encrypt("HELLO", "secret")
	if err != nil {
		t.Fatalf("Encryption failed: %v", err)
	}

	if ciphertext != "PPOHL" {
		t.Errorf("Expected ciphertext %q, got %q", "PPOHL", ciphertext)
	}

	if expected := "6ud9RB2IUjjCiGmiwLjOyDngT+dApbNcckywKaVVya0="; tag != expected {
		t.Errorf("Expected tag %q, got %q", expected, tag)
	}
}

func TestEncryptDeterminism(t *testing.T) {
	cipher1, tag1, err := Encrypt("HELLO", "secret")
	if err != nil {
		t.Fatalf("First encryption failed: %v", err)
	}

	cipher2, tag2, err := Encrypt("HELLO", "secret")
	if err != nil {
		t.Fatalf("Second encryption failed: %v", err)
	}

	if cipher1 != cipher2 {
		t.Errorf("Ciphertexts for identical inputs differ: %q vs %q", cipher1, cipher2)
	}

	if tag1 != tag2 {
		t.Errorf("Tags for identical inputs differ: %q vs %q", tag1, tag2)
	}
}

func TestEncryptProducesDifferentCiphertext(t *testing.T) {
	// With this passphrase the first substitution key character is '8',
	// so the first ciphertext character is always shifted
	ciphertext, _, err := Encrypt("HELLO", "secret")
	if err != nil {
		t.Fatalf("Encryption failed: %v", err)
	}

	if ciphertext == "HELLO" {
		t.Error("Ciphertext should differ from the plaintext word")
	}
}

func TestEncryptTagMatchesOriginalWord(t *testing.T) {
	_, tag, err := Encrypt("HELLO", "secret")
	if err != nil {
		t.Fatalf("Encryption failed: %v", err)
	}

	if expected := Tag("HELLO", "secret"); tag != expected {
		t.Errorf("Expected tag %q, got %q", expected, tag)
	}
}

func TestEncryptEmptyWord(t *testing.T) {
	ciphertext, tag, err := Encrypt("", "secret")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if ciphertext != "" || tag != "" {
		t.Errorf("Expected empty ciphertext and tag, got %q and %q", ciphertext, tag)
	}
}

func TestEncryptEmptyPassphrase(t *testing.T) {
	_, _, err := Encrypt("HELLO", "")
	if err == nil {
		t.Fatal("Expected error but got none")
	}
	if !IsInputError(err) {
		t.Errorf("Expected an input error, got %v", err)
	}
}

func TestDecryptWrongPassphrase(t *testing.T) {
	ciphertext, tag, err := Encrypt("HELLO", "secret")
	if err != nil {
		t.Fatalf("Encryption failed: %v", err)
	}

	word, verified, err := Decrypt(ciphertext, "wrong", tag)
	if err != nil {
		t.Fatalf("Decryption should not fail on a wrong passphrase: %v", err)
	}

	if verified {
		t.Error("Verification should fail with a wrong passphrase")
	}

	// The recovered word is still produced, just not the right one
	if len([]rune(word)) != len("HELLO") {
		t.Errorf("Recovered word has wrong length: %q", word)
	}
}

func TestDecryptTamperedTag(t *testing.T) {
	ciphertext, _, err := Encrypt("HELLO", "secret")
	if err != nil {
		t.Fatalf("Encryption failed: %v", err)
	}

	word, verified, err := Decrypt(ciphertext, "secret", "bogus-tag")
	if err != nil {
		t.Fatalf("Decryption should not fail on a tampered tag: %v", err)
	}

	if word != "HELLO" {
		t.Errorf("Expected %q, got %q", "HELLO", word)
	}

	if verified {
		t.Error("Verification should fail with a tampered tag")
	}
}

func TestDecryptEmptyCiphertext(t *testing.T) {
	word, verified, err := Decrypt("", "secret", "any-tag")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if word != "" {
		t.Errorf("Expected empty word, got %q", word)
	}

	if verified {
		t.Error("Empty ciphertext should never verify")
	}
}

func TestDecryptEmptyPassphrase(t *testing.T) {
	_, _, err := Decrypt("ciphertext", "", "tag")
	if err == nil {
		t.Fatal("Expected error but got none")
	}
	if !IsInputError(err) {
		t.Errorf("Expected an input error, got %v", err)
	}
}
