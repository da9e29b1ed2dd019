package ranged

// Aliases instantiating Ranged for each fixed-width integer representation.
// The generic definition is the single source of the behavior; these exist
// so call sites can name a width without spelling out the type argument.
type (
	// RangedU8 is a ranged uint8.
	RangedU8 = Ranged[uint8]
	// RangedU16 is a ranged uint16.
	RangedU16 = Ranged[uint16]
	// RangedU32 is a ranged uint32.
	RangedU32 = Ranged[uint32]
	// RangedU64 is a ranged uint64.
	RangedU64 = Ranged[uint64]

	// RangedI8 is a ranged int8.
	RangedI8 = Ranged[int8]
	// RangedI16 is a ranged int16.
	RangedI16 = Ranged[int16]
	// RangedI32 is a ranged int32.
	RangedI32 = Ranged[int32]
	// RangedI64 is a ranged int64.
	RangedI64 = Ranged[int64]
)
