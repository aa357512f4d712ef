package wordcrypt

const (
	// lcgMultiplier is the multiplier of the linear congruential generator
	// driving the shuffle. The generator constants match the classic
	// ANSI C rand() parameters and are fixed by the file format.
	lcgMultiplier = 1103515245

	// lcgIncrement is the additive constant of the generator.
	lcgIncrement = 12345

	// lcgModulus is the generator modulus. Because it divides 2^64, uint64
	// wraparound during the multiply-add leaves the value unchanged mod 2^31,
	// so the sequence is exact even for full-range 64-bit seeds.
	lcgModulus = 1 << 31
)

// permutationIndices generates the shuffle permutation for a given seed and
// length. indices[k] is the original position of the character that ends up
// at position k. Both Shuffle and Deshuffle derive their mapping from this
// one generator so the two directions always agree.
func permutationIndices(n int, seed uint64) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	state := seed
	for i := n - 1; i >= 1; i-- {
		state = (lcgMultiplier*state + lcgIncrement) % lcgModulus
		j := int(state % uint64(i+1))
		indices[i], indices[j] = indices[j], indices[i]
	}

	return indices
}

// Shuffle reorders the characters of a word using a deterministic,
// seed-driven permutation.
//
// The permutation depends only on the seed and the character count, never on
// the characters themselves. The same seed and length always produce the same
// ordering, and Deshuffle restores the original word exactly.
//
// Parameters:
//   - word: The word to shuffle; an empty word maps to itself
//   - seed: The numeric seed from DeriveSeedAndKey
//
// Returns:
//   - string: The shuffled word, same length as the input
func Shuffle(word string, seed uint64) string {
	if word == "" {
		return word
	}

	chars := []rune(word)
	indices := permutationIndices(len(chars), seed)

	shuffled := make([]rune, len(chars))
	for k, idx := range indices {
		shuffled[k] = chars[idx]
	}

	return string(shuffled)
}

// Deshuffle reverses Shuffle, restoring the original character order.
//
// It regenerates the same seed-driven permutation for the input length,
// inverts it, and applies the inverse mapping. For every word and seed,
// Deshuffle(Shuffle(word, seed), seed) == word.
//
// Parameters:
//   - word: The shuffled word; an empty word maps to itself
//   - seed: The same seed that was used for Shuffle
//
// Returns:
//   - string: The word with its original character order restored
func Deshuffle(word string, seed uint64) string {
	if word == "" {
		return word
	}

	chars := []rune(word)
	indices := permutationIndices(len(chars), seed)

	inverse := make([]int, len(chars))
	for shuffledPos, originalPos := range indices {
		inverse[originalPos] = shuffledPos
	}

	restored := make([]rune, len(chars))
	for k, idx := range inverse {
		restored[k] = chars[idx]
	}

	return string(restored)
}
