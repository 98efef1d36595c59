package segment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWhitespace1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.segment")
	defer teardown()
	seg := NewSegmenter(Words)
	seg.Init(strings.NewReader("Hello World!"))
	n := 0
	for seg.Next() {
		t.Logf("segment = '%s' at %d", seg.Text(), seg.Position())
		n++
	}
	if n != 4 {
		t.Errorf("Expected 4 segments, have %d", n)
	}
}

func TestWhitespace2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.segment")
	defer teardown()
	input := "	for (i=0; i<5; i++)   count += i;"
	seg := NewSegmenter(Words)
	seg.InitString(input)
	var b strings.Builder
	for seg.Next() {
		if int(seg.Position()) != b.Len() {
			t.Errorf("segment '%s' at unexpected position %d", seg.Text(), seg.Position())
		}
		b.WriteString(seg.Text())
	}
	if b.String() != input {
		t.Errorf("expected segments to reproduce input, have %q", b.String())
	}
}

func TestWordSegmenter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.segment")
	defer teardown()
	segs := Segments("lime-tree", Words)
	if len(segs) != 3 || segs[0] != "lime" || segs[2] != "tree" {
		t.Errorf("Expected [lime - tree], have %v", segs)
	}
	segs = Segments("Hello World, how are you?", Words)
	if len(segs) != 11 {
		t.Errorf("Expected 11 segments, have %d: %q", len(segs), segs)
	}
}

func TestSentenceSegmenter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.segment")
	defer teardown()
	segs := Segments("This is a test. Another one! And a third", Sentences)
	if len(segs) != 3 {
		t.Fatalf("Expected 3 sentences, have %d: %q", len(segs), segs)
	}
	if segs[1] != "Another one! " {
		t.Errorf("Expected 2nd sentence 'Another one! ', have %q", segs[1])
	}
}

func TestGraphemeSegmenter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.segment")
	defer teardown()
	segs := Segments("ộ世界", Graphemes)
	if len(segs) != 3 || segs[0] != "ộ" {
		t.Errorf("Expected 3 graphemes, have %q", segs)
	}
}

func TestBoundedNext(t *testing.T) {
	seg := NewSegmenter(Graphemes)
	seg.InitString("abcdef")
	n := 0
	for seg.BoundedNext(3) {
		n++
	}
	if n != 3 {
		t.Errorf("Expected 3 segments before bound, have %d", n)
	}
}

func TestSegmenterErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.segment")
	defer teardown()
	seg := NewSegmenter(Words)
	if seg.Next() || seg.Err() != ErrNotInitialized {
		t.Errorf("Expected ErrNotInitialized, have %v", seg.Err())
	}
	seg.InitString(strings.Repeat("x", 100))
	seg.MaxSegmentLen(10)
	if seg.Next() || seg.Err() != ErrTooLong {
		t.Errorf("Expected ErrTooLong, have %v", seg.Err())
	}
	seg.InitString("")
	if seg.Next() || seg.Err() != nil {
		t.Errorf("Expected empty input to stop without error, have %v", seg.Err())
	}
}

func ExampleSegmenter() {
	seg := NewSegmenter(Words)
	seg.Init(strings.NewReader("Hello World!"))
	for seg.Next() {
		fmt.Printf("segment: '%s' at position %d\n", seg.Text(), seg.Position())
	}
	// Output:
	// segment: 'Hello' at position 0
	// segment: ' ' at position 5
	// segment: 'World' at position 6
	// segment: '!' at position 11
}
