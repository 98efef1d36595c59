package codec

import "testing"

func TestSizingHelpers(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(int, float64) int
		n      int
		scale  float64
		expect int
	}{
		{"UTF8ToUTF16", UTF8ToUTF16BufferSize, 100, 1, 300},
		{"UTF8ToUTF16 scaled", UTF8ToUTF16BufferSize, 100, 2, 400},
		{"UTF8ToUTF16 scale floor", UTF8ToUTF16BufferSize, 100, 0.5, 300},
		{"WideToUTF16", WideToUTF16BufferSize, 160, 1, 200 + 160 + 10 + 4},
		{"WideToUTF16 scaled", WideToUTF16BufferSize, 16, 2, 200 + (16+1+4)*2},
		{"UTF16ToWide", UTF16ToWideBufferSize, 50, 1, 250},
		{"UTF16Working", UTF16WorkingSize, 10, 1, 220},
		{"UTF16Working scaled", UTF16WorkingSize, 10, 3, 230},
		{"UTF16ToUTF8", UTF16ToUTF8BufferSize, 10, 1, 260},
		{"UTF16ToUTF8 scaled", UTF16ToUTF8BufferSize, 10, 3, 290},
		{"UTF8Working", UTF8WorkingSize, 10, 1, 215},
		{"UTF8Working scaled", UTF8WorkingSize, 10, 2, 220},
		{"empty", UTF8ToUTF16BufferSize, 0, 1, BufferPad},
	}
	for _, tt := range tests {
		if size := tt.fn(tt.n, tt.scale); size != tt.expect {
			t.Errorf("%s(%d, %.1f): expected %d, have %d", tt.name, tt.n, tt.scale, tt.expect, size)
		}
	}
}

func TestSizingCoversWorstCase(t *testing.T) {
	s := "诺贝尔生理学于年首次颁发"
	u := UTF8ToUTF16(s)
	if len(u) > UTF8ToUTF16BufferSize(len(s), 1) {
		t.Errorf("UTF-8 to UTF-16 estimate too small")
	}
	if len(s) > UTF16ToUTF8BufferSize(len(u), 1) {
		t.Errorf("UTF-16 to UTF-8 estimate too small")
	}
	w := UTF8ToWide("😀😀😀😀")
	if len(WideToUTF16(w)) > WideToUTF16BufferSize(len(w), 1) {
		t.Errorf("wide to UTF-16 estimate too small")
	}
}
