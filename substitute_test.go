package wordcrypt

import (
	"testing"
)

func TestGenerateVigenereKey(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		key      string
		expected string
		wantErr  bool
	}{
		{
			name:     "Key longer than text",
			text:     "hi",
			key:      "secret",
			expected: "se",
		},
		{
			name:     "Key equal to text",
			text:     "abc",
			key:      "key",
			expected: "key",
		},
		{
			name:     "Key repeated and truncated",
			text:     "hello",
			key:      "key",
			expected: "keyke",
		},
		{
			name:     "Empty text",
			text:     "",
			key:      "key",
			expected: "",
		},
		{
			name:    "Empty key",
			text:    "hello",
			key:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := GenerateVigenereKey(tt.text, tt.key)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				}
				if !IsInputError(err) {
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

func TestEncryptVigenere(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		key      string
		expected string
		wantErr  bool
	}{
		{
			name:     "Alphabetic key shift",
			text:     "abc",
			key:      "b",
			expected: "bcd",
		},
		{
			name:     "Digit key shift",
			text:     "abc",
			key:      "3",
			expected: "def",
		},
		{
			name:     "Uppercase key character",
			text:     "abc",
			key:      "B",
			expected: "bcd",
		},
		{
			name:     "Case preserved with wraparound",
			text:     "AbZ",
			key:      "b",
			expected: "BcA",
		},
		{
			// Non-alphabetic characters pass through but still consume
			// their key position, so 'b' aligns with 'e', not 'c'
			name:     "Lock-step key over non-alphabetic characters",
			text:     "a1 b",
			key:      "bcde",
			expected: "b1 f",
		},
		{
			name:     "Key repetition with wraps",
			text:     "ab!cd",
			key:      "xy",
			expected: "xz!aa",
		},
		{
			name:     "Non-ASCII characters pass through",
			text:     "héllo",
			key:      "b",
			expected: "iémmp",
		},
		{
			name:     "Empty text with empty key",
			text:     "",
			key:      "",
			expected: "",
		},
		{
			name:    "Empty key",
			text:    "abc",
			key:     "",
			wantErr: true,
		},
		{
			name:    "Non-alphanumeric key aligned with letter",
			text:    "a",
			key:     "!",
			wantErr: true,
		},
		{
			// The offending key character is only evaluated when a letter
			// aligns with it
			name:     "Non-alphanumeric key aligned with digit",
			text:     "1",
			key:      "!",
			expected: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EncryptVigenere(tt.text, tt.key)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
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

func TestVigenereRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
	}{
		{name: "Simple word", text: "hello", key: "key"},
		{name: "Mixed case", text: "HeLLo WoRLd", key: "cipher"},
		{name: "Digits and punctuation", text: "pay 100 at 9:30!", key: "k3y"},
		{name: "Hex digest key", text: "attack at dawn", key: "8bd30361aa855686"},
		{name: "Non-ASCII text", text: "café au lait", key: "abc"},
		{name: "Key longer than text", text: "hi", key: "verylongkey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := EncryptVigenere(tt.text, tt.key)
			if err != nil {
				t.Fatalf("Encryption failed: %v", err)
			}

			if len([]rune(encrypted)) != len([]rune(tt.text)) {
				t.Errorf("Encryption changed length: %q -> %q", tt.text, encrypted)
			}

			decrypted, err := DecryptVigenere(encrypted, tt.key)
			if err != nil {
				t.Fatalf("Decryption failed: %v", err)
			}

			if decrypted != tt.text {
				t.Errorf("Round-trip failed: got %q, want %q", decrypted, tt.text)
			}
		})
	}
}

func TestDecryptVigenereKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		key      string
		expected string
	}{
		{
			name:     "Alphabetic key shift",
			text:     "bcd",
			key:      "b",
			expected: "abc",
		},
		{
			name:     "Wraparound below a",
			text:     "abc",
			key:      "b",
			expected: "zab",
		},
		{
			name:     "Digit key shift",
			text:     "def",
			key:      "3",
			expected: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DecryptVigenere(tt.text, tt.key)
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
