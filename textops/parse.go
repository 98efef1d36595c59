package textops

import (
	"strings"

	"github.com/npillmayer/unistr/locale"
)

// TimeStringToSeconds parses a duration. Accepted forms are "nnn min" and
// "hh:mm:ss", where the colon form may have fewer fields ("mm:ss", "ss").
// Fields beyond the third are ignored. Leading and trailing white space is
// ignored. Unparsable fields count as 0.
//
//    "21:30:55"        77455
//    "154 min"         9240
//    "01:05:02:04:03"  3902
func TimeStringToSeconds(s string) int {
	s = Trim(s)
	if EndsWithNoCase(s, " min", locale.FoldCaseDefault) {
		return 60 * atoi(s)
	}
	secs := 0
	for i, field := range strings.Split(s, ":") {
		if i >= 3 {
			break
		}
		secs = secs*60 + atoi(Trim(field))
	}
	return secs
}

// DateStringToYYYYMMDD converts a date of the form "YYYY", "YYYY-MM" or
// "YYYY-MM-DD" to an integer YYYYMMDD, YYYYMM or YYYY. Other forms result in -1.
func DateStringToYYYYMMDD(s string) int {
	fields := strings.Split(s, "-")
	switch len(fields) {
	case 1:
		return atoi(fields[0])
	case 2:
		return atoi(fields[0])*100 + atoi(fields[1])
	case 3:
		return atoi(fields[0])*10000 + atoi(fields[1])*100 + atoi(fields[2])
	}
	return -1
}

// atoi converts the leading decimal digits of s (after an optional sign) to
// an integer. If s does not start with a digit, the result is 0.
func atoi(s string) int {
	i, neg := 0, false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

// Paramify quotes s for use as a parameter: backslashes and double quotes
// are escaped and the result is enclosed in double quotes.
func Paramify(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
