package textops

import (
	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/unistr/locale"
	"golang.org/x/text/language"
)

// Width returns the display width of s in terminal cells, i.e. in units of
// half a full width character. Characters of East Asian width class
// “ambiguous” count as wide if loc denotes an East Asian language or script.
func Width(s string, loc locale.Locale) int {
	return widthCondition(loc).StringWidth(s)
}

// TruncateWidth truncates s to a display width of at most w cells, appending
// tail if s has been truncated. See Width.
func TruncateWidth(s string, w int, tail string, loc locale.Locale) string {
	return widthCondition(loc).Truncate(s, w, tail)
}

func widthCondition(loc locale.Locale) *runewidth.Condition {
	return &runewidth.Condition{
		EastAsianWidth:     isEastAsian(tagFor(loc)),
		StrictEmojiNeutral: true,
	}
}

func isEastAsian(tag language.Tag) bool {
	if tag.IsRoot() {
		return false
	}
	if script, conf := tag.Script(); conf != language.No {
		switch script.String() {
		case "Bopo", "Hanb", "Hani", "Hans", "Hant", "Hang", "Hira", "Kana", "Jpan", "Kore":
			return true
		}
	}
	_, _, confidence := eaMatch.Match(tag)
	return confidence != language.No
}

var eaMatch = language.NewMatcher([]language.Tag{
	language.Chinese, // The first language is used as fallback.
	language.Japanese,
	language.Korean,
	language.Vietnamese,
	language.Thai,
	language.Mongolian,
	language.Burmese,
	language.Khmer,
})
