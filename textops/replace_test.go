package textops

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFindAndReplace(t *testing.T) {
	if s := FindAndReplace("test test", "s", "x"); s != "text text" {
		t.Errorf("expected 'text text', have %q", s)
	}
	if s := FindAndReplace("test", "", "x"); s != "test" {
		t.Errorf("expected empty pattern to leave string unchanged, have %q", s)
	}
	if s := FindAndReplace("Straße", "ß", "ss"); s != "Strasse" {
		t.Errorf("expected 'Strasse', have %q", s)
	}
}

func TestRegexReplaceAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.textops")
	defer teardown()
	//
	tests := []struct {
		s, pattern, repl string
		flags            RegexFlags
		expected         string
	}{
		{"Hello World", "world", "Go", CaseInsensitive, "Hello Go"},
		{"Hello World", "world", "Go", 0, "Hello World"},
		{"a.b.c", ".", "-", Literal, "a-b-c"},
		{"a.b.c", ".", "-", 0, "-----"},
		{"x\nx", "^x", "y", 0, "y\nx"},
		{"x\nx", "^x", "y", Multiline, "y\ny"},
		{"a\nb", "a.b", "_", 0, "a\nb"},
		{"a\nb", "a.b", "_", DotAll, "_"},
		{"xabcx", "a b # letters\nc", "_", Comments, "x_x"},
		{"x[ ]x", "[ ] # a class", "_", Comments, "x[_]x"},
		{"John Smith", `(\w+) (\w+)`, "$2 $1", 0, "Smith John"},
	}
	for _, tt := range tests {
		s, err := RegexReplaceAll(tt.s, tt.pattern, tt.repl, tt.flags)
		if err != nil {
			t.Errorf("pattern %q: unexpected error %v", tt.pattern, err)
		} else if s != tt.expected {
			t.Errorf("pattern %q on %q: expected %q, have %q", tt.pattern, tt.s, tt.expected, s)
		}
	}
}

func TestRegexErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.textops")
	defer teardown()
	//
	s, err := RegexReplaceAll("(test)", "(", "x", 0)
	if err == nil {
		t.Errorf("expected error for invalid pattern")
	}
	if s != "(test)" {
		t.Errorf("expected string to be unchanged on error, have %q", s)
	}
	if _, err = RegexReplaceAll("(test)", "(", "x", Literal); err != nil {
		t.Errorf("expected literal pattern to compile, have %v", err)
	}
	if _, err = CompileRegex(`\q`, ErrorOnUnknownEscapes); err == nil {
		t.Errorf("expected error for unknown escape")
	}
}

func TestCountOccurrences(t *testing.T) {
	if n := FindNumber("aabcaadeaa", "aa"); n != 3 {
		t.Errorf("expected 3 occurrences of aa, have %d", n)
	}
	if n := FindNumber("aabcaadeaa", "b"); n != 1 {
		t.Errorf("expected 1 occurrence of b, have %d", n)
	}
	if n := CountOccurrences("a.a.a", "."); n != 2 {
		t.Errorf("expected '.' to be taken literally, have %d", n)
	}
	if n := CountOccurrences("aaaa", "aa"); n != 2 {
		t.Errorf("expected 2 non-overlapping occurrences, have %d", n)
	}
	if n := CountOccurrences("abc", ""); n != 0 {
		t.Errorf("expected empty pattern never to be found, have %d", n)
	}
}
