package vec

// Byte-at-a-time reference implementations of the vector operations.
// These define the observable semantics; the word-wise kernels in
// swar.go must produce bit-identical results and the package tests hold
// the two sides together.

func broadcast128Lanes(b byte) Vec128 {
	var out [Width128]byte
	for i := range out {
		out[i] = b
	}
	return Load128(out[:])
}

func broadcast256Lanes(b byte) Vec256 {
	var out [Width256]byte
	for i := range out {
		out[i] = b
	}
	return Load256(out[:])
}

func cmpEq128Lanes(a, b Vec128) Vec128 {
	ab, bb := a.Bytes(), b.Bytes()
	var out [Width128]byte
	for i := range out {
		if ab[i] == bb[i] {
			out[i] = 0xFF
		}
	}
	return Load128(out[:])
}

func cmpEq256Lanes(a, b Vec256) Vec256 {
	ab, bb := a.Bytes(), b.Bytes()
	var out [Width256]byte
	for i := range out {
		if ab[i] == bb[i] {
			out[i] = 0xFF
		}
	}
	return Load256(out[:])
}
