package codec

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// ByteOrder selects the serialization of UTF-16 and UTF-32 code units.
type ByteOrder int8

// Byte orders for EncodeUTF16/EncodeUTF32 and their decoding counterparts.
const (
	BigEndian ByteOrder = iota
	LittleEndian
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "LE"
	}
	return "BE"
}

// EncodeUTF16 serializes s as UTF-16 in the given byte order, optionally
// preceded by a byte order mark.
func EncodeUTF16(s string, order ByteOrder, bom bool) ([]byte, error) {
	return encode(utf16Encoding(order, bom), s)
}

// DecodeUTF16 reads serialized UTF-16. A leading byte order mark overrides
// order. Ill-formed input is replaced by U+FFFD.
func DecodeUTF16(b []byte, order ByteOrder) (string, error) {
	return decode(utf16Encoding(order, true), b)
}

// EncodeUTF32 serializes s as UTF-32 in the given byte order, optionally
// preceded by a byte order mark.
func EncodeUTF32(s string, order ByteOrder, bom bool) ([]byte, error) {
	return encode(utf32Encoding(order, bom), s)
}

// DecodeUTF32 reads serialized UTF-32. A leading byte order mark overrides
// order. Ill-formed input is replaced by U+FFFD.
func DecodeUTF32(b []byte, order ByteOrder) (string, error) {
	return decode(utf32Encoding(order, true), b)
}

func utf16Encoding(order ByteOrder, bom bool) encoding.Encoding {
	e, policy := unicode.BigEndian, unicode.IgnoreBOM
	if order == LittleEndian {
		e = unicode.LittleEndian
	}
	if bom {
		policy = unicode.UseBOM
	}
	return unicode.UTF16(e, policy)
}

func utf32Encoding(order ByteOrder, bom bool) encoding.Encoding {
	e, policy := utf32.BigEndian, utf32.IgnoreBOM
	if order == LittleEndian {
		e = utf32.LittleEndian
	}
	if bom {
		policy = utf32.UseBOM
	}
	return utf32.UTF32(e, policy)
}

func encode(enc encoding.Encoding, s string) ([]byte, error) {
	b, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		tracer().Errorf("encoding to %v failed: %v", enc, err)
	}
	return b, err
}

func decode(enc encoding.Encoding, b []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		tracer().Errorf("decoding from %v failed: %v", enc, err)
		return "", err
	}
	return string(out), nil
}
