package nanbox

// Encode returns the word for v.
//
// Any NaN float is replaced with CanonicalNaN. An UnsignedInt above MaxUint
// or a Cell address above MaxAddress fails with an OverflowError, and a Cell
// with an invalid tag fails with a TagError. Nothing is encoded on failure.
func Encode(v Value) (w Word, err error) {
	switch v.kind {
	case KindFloat:
		return encodeFloat(v.payload), nil
	case KindUint:
		if v.payload > MaxUint {
			return 0, OverflowError.New("uint %d exceeds %d", v.payload, MaxUint)
		}

		return Word(boxBits | (v.payload + 1)), nil
	case KindCell:
		if !v.tag.Valid() {
			return 0, TagError.New("%d", uint8(v.tag))
		}

		if v.payload > MaxAddress {
			return 0, OverflowError.New("address 0x%x exceeds 0x%x", v.payload, MaxAddress)
		}

		return Word(cellBits | uint64(v.tag)<<tagShift | v.payload), nil
	}

	return 0, Error.New("unknown kind: %s", v.kind)
}

// MustEncode is like Encode but panics on error.
func MustEncode(v Value) Word {
	w, err := Encode(v)
	if err != nil {
		panic(err)
	}

	return w
}

func encodeFloat(bits uint64) Word {
	if bits&exponentMask == exponentMask && bits&mantissaMask != 0 {
		return CanonicalNaN
	}

	return Word(bits)
}

// Decode returns the value held by w. It accepts every pattern; foreign NaNs
// decode to Float(NaN) with the CanonicalNaN bits.
func Decode(w Word) Value {
	u := uint64(w)

	switch Classify(w) {
	case ClassUint:
		return Value{
			kind:    KindUint,
			payload: u&uintMask - 1,
		}
	case ClassCell:
		return Value{
			kind:    KindCell,
			tag:     CellTag((u & tagMask) >> tagShift),
			payload: u & addrMask,
		}
	case ClassForeign:
		return Value{
			kind:    KindFloat,
			payload: uint64(CanonicalNaN),
		}
	}

	return Value{
		kind:    KindFloat,
		payload: u,
	}
}
