package ranged

// Signed represents the signed integer types a Ranged value can wrap.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned represents the unsigned integer types a Ranged value can wrap.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer represents any fixed-width integer type a Ranged value can wrap.
type Integer interface {
	Signed | Unsigned
}
