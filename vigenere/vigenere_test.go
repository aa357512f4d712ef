package vigenere

import (
	"testing"

	"github.com/enctools/wordcrypt"
)

func TestEncrypt(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		key      string
		expected string
		wantErr  bool
	}{
		{
			name:     "Textbook example",
			text:     "ATTACKATDAWN",
			key:      "LEMON",
			expected: "LXFOPVEFRNHR",
		},
		{
			// Spaces pass through without consuming a key position, so the
			// letters encipher exactly as in the unspaced text
			name:     "Spaces skip the key",
			text:     "ATTACK AT DAWN",
			key:      "LEMON",
			expected: "LXFOPV EF RNHR",
		},
		{
			name:     "Lowercase preserved",
			text:     "hello",
			key:      "b",
			expected: "ifmmp",
		},
		{
			name:     "Mixed case and punctuation",
			text:     "Hello, World!",
			key:      "key",
			expected: "Rijvs, Uyvjn!",
		},
		{
			name:     "Lowercase key uppercased",
			text:     "ATTACKATDAWN",
			key:      "lemon",
			expected: "LXFOPVEFRNHR",
		},
		{
			name:     "Empty text",
			text:     "",
			key:      "LEMON",
			expected: "",
		},
		{
			name:    "Empty key",
			text:    "ATTACK",
			key:     "",
			wantErr: true,
		},
		{
			name:    "Key with digit",
			text:    "ATTACK",
			key:     "LEMON1",
			wantErr: true,
		},
		{
			name:    "Key with space",
			text:    "ATTACK",
			key:     "LE MON",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Encrypt(tt.text, tt.key)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				}
				if !wordcrypt.IsInputError(err) {
					t.Errorf("Expected an input error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestDecrypt(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		key      string
		expected string
	}{
		{
			name:     "Textbook example",
			text:     "LXFOPVEFRNHR",
			key:      "LEMON",
			expected: "ATTACKATDAWN",
		},
		{
			name:     "Spaces skip the key",
			text:     "LXFOPV EF RNHR",
			key:      "LEMON",
			expected: "ATTACK AT DAWN",
		},
		{
			name:     "Lowercase preserved",
			text:     "ifmmp",
			key:      "b",
			expected: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Decrypt(tt.text, tt.key)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
	}{
		{name: "Uppercase", text: "ATTACKATDAWN", key: "LEMON"},
		{name: "Mixed case with punctuation", text: "Hello, World! 123", key: "cipher"},
		{name: "Key longer than text", text: "hi", key: "verylongkey"},
		{name: "Non-ASCII passthrough", text: "café naïve", key: "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := Encrypt(tt.text, tt.key)
			if err != nil {
				t.Fatalf("Encryption failed: %v", err)
			}

			decrypted, err := Decrypt(encrypted, tt.key)
			if err != nil {
				t.Fatalf("Decryption failed: %v", err)
			}

			if decrypted != tt.text {
				t.Errorf("Round-trip failed: got %q, want %q", decrypted, tt.text)
			}
		})
	}
}
