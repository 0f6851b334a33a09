package wiretype

// EncodeU8Array / DecodeU8Array and friends implement the repeated-call
// array codec from spec.md §4.1. Each is monomorphic per primitive rather
// than routed through a generic or an interface, per the design note in
// spec.md §9: generated field accessors call these directly, so there is no
// indirect call on the hot path.

func EncodeU8Array(values []uint8, out []byte) (int, error) {
	total := 0
	for _, v := range values {
		n, err := EncodeU8(v, out[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func DecodeU8Array(in []byte, count int) ([]uint8, int, error) {
	out := make([]uint8, count)
	total := 0
	for i := 0; i < count; i++ {
		v, n, err := DecodeU8(in[total:])
		if err != nil {
			return nil, total, err
		}
		out[i] = v
		total += n
	}
	return out, total, nil
}

func EncodeI8Array(values []int8, out []byte) (int, error) {
	total := 0
	for _, v := range values {
		n, err := EncodeI8(v, out[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func DecodeI8Array(in []byte, count int) ([]int8, int, error) {
	out := make([]int8, count)
	total := 0
	for i := 0; i < count; i++ {
		v, n, err := DecodeI8(in[total:])
		if err != nil {
			return nil, total, err
		}
		out[i] = v
		total += n
	}
	return out, total, nil
}

func EncodeCharArray(values []byte, out []byte) (int, error) {
	return EncodeU8Array(values, out)
}

func DecodeCharArray(in []byte, count int) ([]byte, int, error) {
	return DecodeU8Array(in, count)
}

func EncodeU16Array(values []uint16, out []byte) (int, error) {
	total := 0
	for _, v := range values {
		n, err := EncodeU16(v, out[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func DecodeU16Array(in []byte, count int) ([]uint16, int, error) {
	out := make([]uint16, count)
	total := 0
	for i := 0; i < count; i++ {
		v, n, err := DecodeU16(in[total:])
		if err != nil {
			return nil, total, err
		}
		out[i] = v
		total += n
	}
	return out, total, nil
}

func EncodeI16Array(values []int16, out []byte) (int, error) {
	total := 0
	for _, v := range values {
		n, err := EncodeI16(v, out[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func DecodeI16Array(in []byte, count int) ([]int16, int, error) {
	out := make([]int16, count)
	total := 0
	for i := 0; i < count; i++ {
		v, n, err := DecodeI16(in[total:])
		if err != nil {
			return nil, total, err
		}
		out[i] = v
		total += n
	}
	return out, total, nil
}

func EncodeU32Array(values []uint32, out []byte) (int, error) {
	total := 0
	for _, v := range values {
		n, err := EncodeU32(v, out[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func DecodeU32Array(in []byte, count int) ([]uint32, int, error) {
	out := make([]uint32, count)
	total := 0
	for i := 0; i < count; i++ {
		v, n, err := DecodeU32(in[total:])
		if err != nil {
			return nil, total, err
		}
		out[i] = v
		total += n
	}
	return out, total, nil
}

func EncodeI32Array(values []int32, out []byte) (int, error) {
	total := 0
	for _, v := range values {
		n, err := EncodeI32(v, out[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func DecodeI32Array(in []byte, count int) ([]int32, int, error) {
	out := make([]int32, count)
	total := 0
	for i := 0; i < count; i++ {
		v, n, err := DecodeI32(in[total:])
		if err != nil {
			return nil, total, err
		}
		out[i] = v
		total += n
	}
	return out, total, nil
}

func EncodeU64Array(values []uint64, out []byte) (int, error) {
	total := 0
	for _, v := range values {
		n, err := EncodeU64(v, out[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func DecodeU64Array(in []byte, count int) ([]uint64, int, error) {
	out := make([]uint64, count)
	total := 0
	for i := 0; i < count; i++ {
		v, n, err := DecodeU64(in[total:])
		if err != nil {
			return nil, total, err
		}
		out[i] = v
		total += n
	}
	return out, total, nil
}

func EncodeI64Array(values []int64, out []byte) (int, error) {
	total := 0
	for _, v := range values {
		n, err := EncodeI64(v, out[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func DecodeI64Array(in []byte, count int) ([]int64, int, error) {
	out := make([]int64, count)
	total := 0
	for i := 0; i < count; i++ {
		v, n, err := DecodeI64(in[total:])
		if err != nil {
			return nil, total, err
		}
		out[i] = v
		total += n
	}
	return out, total, nil
}

func EncodeF32Array(values []float32, out []byte) (int, error) {
	total := 0
	for _, v := range values {
		n, err := EncodeF32(v, out[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func DecodeF32Array(in []byte, count int) ([]float32, int, error) {
	out := make([]float32, count)
	total := 0
	for i := 0; i < count; i++ {
		v, n, err := DecodeF32(in[total:])
		if err != nil {
			return nil, total, err
		}
		out[i] = v
		total += n
	}
	return out, total, nil
}

func EncodeF64Array(values []float64, out []byte) (int, error) {
	total := 0
	for _, v := range values {
		n, err := EncodeF64(v, out[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func DecodeF64Array(in []byte, count int) ([]float64, int, error) {
	out := make([]float64, count)
	total := 0
	for i := 0; i < count; i++ {
		v, n, err := DecodeF64(in[total:])
		if err != nil {
			return nil, total, err
		}
		out[i] = v
		total += n
	}
	return out, total, nil
}
