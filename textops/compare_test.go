package textops

import (
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unistr/locale"
)

// Five encodings of LATIN SMALL LETTER O WITH CIRCUMFLEX AND DOT BELOW.
const (
	variant1 = "\x6f\xcc\x82\xcc\xa3"
	variant2 = "\x6f\xcc\xa3\xcc\x82"
	variant3 = "\xc3\xb4\xcc\xa3"
	variant4 = "\xe1\xbb\x8d\xcc\x82"
	variant5 = "\xe1\xbb\x99"
)

var variants = []string{variant1, variant2, variant3, variant4, variant5}

func TestNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.textops")
	defer teardown()
	//
	for i, v := range variants {
		if s := Normalize(v, 0, NFD); s != variant2 {
			t.Errorf("NFD of variant %d: expected %q, have %q", i+1, variant2, s)
		}
		if s := Normalize(v, 0, NFKD); s != variant2 {
			t.Errorf("NFKD of variant %d: expected %q, have %q", i+1, variant2, s)
		}
		if s := Normalize(v, 0, NFC); s != variant5 {
			t.Errorf("NFC of variant %d: expected %q, have %q", i+1, variant5, s)
		}
		if s := Normalize(v, 0, NFKC); s != variant5 {
			t.Errorf("NFKC of variant %d: expected %q, have %q", i+1, variant5, s)
		}
		nfc := Normalize(v, 0, NFC)
		if Normalize(nfc, 0, NFC) != nfc {
			t.Errorf("NFC not idempotent for variant %d", i+1)
		}
	}
	if s := Normalize("ﬁ Ä", 0, NFKCCaseFold); s != "fi ä" {
		t.Errorf("expected NFKC_Casefold 'fi ä', have %q", s)
	}
}

func TestEquals(t *testing.T) {
	for i, a := range variants {
		for j, b := range variants {
			if !Equals(a, b, true) {
				t.Errorf("expected variants %d and %d to be equal after normalization", i+1, j+1)
			}
		}
	}
	if Equals(variant1, variant5, false) {
		t.Errorf("expected variants 1 and 5 to differ without normalization")
	}
	if !Equals("test", "test\x00trailer", false) {
		t.Errorf("expected second argument to end at NUL")
	}
	if Equals("test\x00trailer", "test", false) {
		t.Errorf("expected first argument to be taken as a whole")
	}
}

func TestCompare(t *testing.T) {
	if Compare("abc", "abd", false) >= 0 || Compare("b", "a", false) <= 0 || Compare("x", "x", false) != 0 {
		t.Errorf("unexpected code point comparison result")
	}
	if Compare(variant1, variant5, true) != 0 {
		t.Errorf("expected normalized comparison of variants to be equal")
	}
}

func TestCompareNoCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.textops")
	defer teardown()
	//
	if CompareNoCase("", "", 0, false) != 0 {
		t.Errorf("expected empty strings to compare equal")
	}
	if CompareNoCase("", "x", 0, false) != -1 || CompareNoCase("x", "", 0, false) != 1 {
		t.Errorf("expected empty string to sort first")
	}
	if CompareNoCase("TeSt", "test", 0, false) != 0 {
		t.Errorf("expected TeSt and test to compare equal")
	}
	if CompareNoCase("abc", "ABD", 0, false) >= 0 {
		t.Errorf("expected abc < ABD")
	}
	if !EqualsNoCase(german, "ÓÓSSCHLOË", 0, false) {
		t.Errorf("expected %q to equal ÓÓSSCHLOË ignoring case", german)
	}
	if EqualsNoCase(variant5, variant1, 0, false) {
		t.Errorf("expected variants to differ without normalization")
	}
	if !EqualsNoCase(variant5, variant1, 0, true) {
		t.Errorf("expected variants to be equal with normalization")
	}
	if EqualsNoCase("ıI", "ıIxx", locale.FoldCaseExcludeSpecialI, false) {
		t.Errorf("expected strings of different length to differ")
	}
	if !EqualsNoCase("ıI", "II", locale.FoldCaseExcludeSpecialI, false) {
		t.Errorf("expected ıI and II to be equal with FoldCaseExcludeSpecialI")
	}
}

func TestCompareCodeUnitOrder(t *testing.T) {
	a, b := "Ａ", "\U0001F600" // FULLWIDTH A, emoji
	if CompareNoCase(a, b, 0, false) <= 0 {
		t.Errorf("expected U+FF21 after U+1F600 in code unit order")
	}
	if CompareNoCase(a, b, locale.CompareCodePointOrder, false) >= 0 {
		t.Errorf("expected U+FF21 before U+1F600 in code point order")
	}
}

func TestStartsEndsWith(t *testing.T) {
	tests := []struct {
		s, affix  string
		startsW   bool
		startsWNC bool
		endsW     bool
		endsWNC   bool
	}{
		{"", "", true, true, true, true},
		{"test", "", true, false, true, false},
		{"", "Four score and seven years ago", false, false, false, false},
		{"test", "test\x00", true, true, true, true},
		{"test", "TesT", false, true, false, true},
		{"test", "sT", false, false, false, true},
		{"test", "te", true, true, false, false},
	}
	for _, tt := range tests {
		if StartsWith(tt.s, tt.affix) != tt.startsW {
			t.Errorf("StartsWith(%q, %q): expected %v", tt.s, tt.affix, tt.startsW)
		}
		if StartsWithNoCase(tt.s, tt.affix, 0) != tt.startsWNC {
			t.Errorf("StartsWithNoCase(%q, %q): expected %v", tt.s, tt.affix, tt.startsWNC)
		}
		if EndsWith(tt.s, tt.affix) != tt.endsW {
			t.Errorf("EndsWith(%q, %q): expected %v", tt.s, tt.affix, tt.endsW)
		}
		if EndsWithNoCase(tt.s, tt.affix, 0) != tt.endsWNC {
			t.Errorf("EndsWithNoCase(%q, %q): expected %v", tt.s, tt.affix, tt.endsWNC)
		}
	}
}

func TestAlphaNumericCompare(t *testing.T) {
	if AlphaNumericCompare("123abc", "abc123") >= 0 {
		t.Errorf("expected 123abc < abc123")
	}
	if AlphaNumericCompare("file9", "file10") >= 0 {
		t.Errorf("expected file9 < file10")
	}
	if AlphaNumericCompare("File10", "file10") != 0 {
		t.Errorf("expected File10 == file10")
	}
	if AlphaNumericCompare("abc", "abcd") >= 0 || AlphaNumericCompare("abcd", "abc") <= 0 {
		t.Errorf("expected shorter string to sort first")
	}
	if AlphaNumericCompare("a100", "a20") != 80 {
		t.Errorf("expected numeric difference of 80, have %d", AlphaNumericCompare("a100", "a20"))
	}
}

func TestSortByName(t *testing.T) {
	names := []string{"B", "c", "a"}
	sort.Slice(names, func(i, j int) bool { return SortByName(names[i], names[j]) })
	if names[0] != "a" || names[1] != "B" || names[2] != "c" {
		t.Errorf("expected [a B c], have %v", names)
	}
}

func TestContains(t *testing.T) {
	if ContainsNonASCII("plain ASCII") || !ContainsNonASCII(german) {
		t.Errorf("ContainsNonASCII failed")
	}
	if !ContainsAnyNoCase("The Farmer's Daughter", []string{"xyz", "DAUGHTER"}, 0) {
		t.Errorf("expected keyword DAUGHTER to be found")
	}
	if ContainsAnyNoCase("The Farmer's Daughter", []string{"", "son"}, 0) {
		t.Errorf("expected no keyword to be found")
	}
}
