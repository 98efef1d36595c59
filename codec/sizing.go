package codec

// BufferPad is added to every buffer size estimate to leave room for growth.
const BufferPad = 200

// UTF8WorkingSize estimates a UTF-8 working buffer for a UTF-8 string of
// length n (in bytes). scale is raised to at least 1.5.
func UTF8WorkingSize(n int, scale float64) int {
	return BufferPad + int(float64(n)*atLeast(scale, 1.5))
}

// UTF8ToUTF16BufferSize estimates the number of UTF-16 code units needed to
// hold the conversion of a UTF-8 string of n bytes. A UTF-16 string never has
// more code units than its UTF-8 form has bytes.
func UTF8ToUTF16BufferSize(n int, scale float64) int {
	return BufferPad + int(float64(n)*atLeast(scale, 1.0))
}

// WideToUTF16BufferSize estimates the number of UTF-16 code units needed to
// hold n code points. Most text is BMP-only; the estimate slightly
// overshoots to allow for a few supplementary characters.
func WideToUTF16BufferSize(n int, scale float64) int {
	return BufferPad + int(float64(n+n>>4+4)*atLeast(scale, 1.0))
}

// UTF16ToWideBufferSize estimates the number of code points resulting from n
// UTF-16 code units.
func UTF16ToWideBufferSize(n int, scale float64) int {
	return BufferPad + int(float64(n)*atLeast(scale, 1.0))
}

// UTF16WorkingSize estimates a UTF-16 working buffer for a UTF-16 string of n
// code units, e.g. for case mapping. scale is raised to at least 2.
func UTF16WorkingSize(n int, scale float64) int {
	return BufferPad + int(float64(n)*atLeast(scale, 2.0))
}

// UTF16ToUTF8BufferSize estimates the number of bytes needed to hold the
// UTF-8 form of n UTF-16 code units. The worst case is 3 bytes per code unit
// (CJK, Indic, Thai). scale is raised to at least 2.
func UTF16ToUTF8BufferSize(n int, scale float64) int {
	return BufferPad + int(float64(n*3)*atLeast(scale, 2.0))
}

func atLeast(scale, floor float64) float64 {
	if scale < floor {
		return floor
	}
	return scale
}
