package nanbox

// AppendEncoded encodes vs and appends the words to dst as float64s.
//
// Either every value is appended or dst is returned unchanged along with the
// error of the first value that failed to encode.
func AppendEncoded(dst []float64, vs ...Value) ([]float64, error) {
	n := len(dst)

	for _, v := range vs {
		w, err := Encode(v)
		if err != nil {
			return dst[:n], err
		}

		dst = append(dst, w.Float64())
	}

	return dst, nil
}

// AppendDecoded decodes fs and appends the values to dst.
func AppendDecoded(dst []Value, fs ...float64) []Value {
	for _, f := range fs {
		dst = append(dst, Decode(FromFloat64(f)))
	}

	return dst
}
