package textops

import (
	"testing"
)

func TestTimeStringToSeconds(t *testing.T) {
	tests := []struct {
		s    string
		secs int
	}{
		{"21:30:55", 77455},
		{"7 min\t", 420},
		{"154 min", 9240},
		{"1:01", 61},
		{"   2:4:3", 7443},
		{"2:04:03", 7443},
		{"01:05:02:04:03", 3902},
		{"blah", 0},
		{"ля-ля", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if secs := TimeStringToSeconds(tt.s); secs != tt.secs {
			t.Errorf("TimeStringToSeconds(%q): expected %d, have %d", tt.s, tt.secs, secs)
		}
	}
}

func TestDateStringToYYYYMMDD(t *testing.T) {
	tests := []struct {
		s    string
		date int
	}{
		{"2012-07-20", 20120720},
		{"2012-07", 201207},
		{"2012", 2012},
		{"2012-07-20-01", -1},
	}
	for _, tt := range tests {
		if date := DateStringToYYYYMMDD(tt.s); date != tt.date {
			t.Errorf("DateStringToYYYYMMDD(%q): expected %d, have %d", tt.s, tt.date, date)
		}
	}
}

func TestParamify(t *testing.T) {
	if s := Paramify(`a"b\c`); s != `"a\"b\\c"` {
		t.Errorf(`expected "a\"b\\c", have %s`, s)
	}
	if s := Paramify(""); s != `""` {
		t.Errorf(`expected "", have %s`, s)
	}
}
