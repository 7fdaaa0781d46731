package parsing

import "fmt"

// SimpleHash returns a 13-hex-digit fingerprint of text. Two 32-bit
// multiply-xor-shift accumulators are mixed and combined: the low 20 bits of
// one accumulator prefix the full 32 bits of the other, giving exactly 5+8
// hex digits. The same input always yields the same output across runs and
// platforms.
//
// Non-cryptographic. Used only as a change-detection fingerprint, never for
// security.
func SimpleHash(text string) string {
	var h1 uint32 = 0xdeadbeef
	var h2 uint32 = 0x41c6ce57

	for _, r := range text {
		c := uint32(r)
		h1 = (h1 ^ c) * 2654435761
		h2 = (h2 ^ c) * 1597334677
	}

	h1 = (h1 ^ (h1 >> 16)) * 2246822507
	h1 ^= (h2 ^ (h2 >> 13)) * 3266489909
	h2 = (h2 ^ (h2 >> 16)) * 2246822507
	h2 ^= (h1 ^ (h1 >> 13)) * 3266489909

	return fmt.Sprintf("%05x%08x", h2&0xfffff, h1)
}
