package low

// FNV-1a, 32 bit. Format ids are FNV hashes of the level prefix
// followed by the format literal, so producers never compare strings.
const (
	FNVOffset32 uint32 = 2166136261
	FNVPrime32  uint32 = 16777619
)

// FNVAdd32 feeds s into a running FNV-1a state h.
func FNVAdd32(h uint32, s string) uint32 {
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= FNVPrime32
	}

	return h
}

// FNV1a32 hashes s from the initial state.
func FNV1a32(s string) uint32 {
	return FNVAdd32(FNVOffset32, s)
}

// MixPtr folds a pointer-sized key into a table index seed.
// Fibonacci hashing; good enough for open addressing.
func MixPtr(p uintptr) uint32 {
	x := uint64(p) * 0x9E3779B97F4A7C15

	return uint32(x >> 32)
}
