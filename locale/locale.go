package locale

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Locale is an immutable locale identifier. The zero value is the root
// locale.
type Locale struct {
	lang     string
	country  string
	variant  string
	keywords map[string]string
	tag      language.Tag
	bogus    bool
}

// Predefined locales.
var (
	Root      = GetLocale("", "", "", "")
	English   = GetLocale("en", "", "", "")
	USEnglish = GetLocale("en", "US", "", "")
	German    = GetLocale("de", "DE", "", "")
	Turkish   = GetLocale("tr", "TR", "", "")
	Chinese   = GetLocale("zh", "CN", "", "")
	Ukrainian = GetLocale("uk", "UA", "", "")
)

// GetLocale creates a locale from a language code (ISO 639), a country code
// (ISO 3166), a variant and a keyword list. Keywords have the form
// "key=value;key=value", e.g. "collation=phonebook". All parameters except
// language may be empty.
//
// If language or country are malformed, the locale is bogus and will behave
// like the root locale.
func GetLocale(lang, country, variant, keywords string) Locale {
	l := Locale{
		lang:    strings.ToLower(strings.TrimSpace(lang)),
		country: strings.ToUpper(strings.TrimSpace(country)),
		variant: strings.ToUpper(strings.TrimSpace(variant)),
	}
	var parts []interface{}
	if l.lang != "" {
		base, err := language.ParseBase(l.lang)
		if err != nil {
			return bogusLocale(l, "language", err)
		}
		parts = append(parts, base)
	}
	if l.country != "" {
		region, err := language.ParseRegion(l.country)
		if err != nil {
			return bogusLocale(l, "country", err)
		}
		parts = append(parts, region)
	}
	if l.variant != "" {
		if v, err := language.ParseVariant(l.variant); err != nil {
			tracer().Infof("ignoring locale variant %q: %v", l.variant, err)
		} else {
			parts = append(parts, v)
		}
	}
	l.keywords = parseKeywords(keywords)
	if ext := unicodeExtension(l.keywords); ext != "" {
		if e, err := language.ParseExtension(ext); err != nil {
			tracer().Infof("ignoring locale keywords %q: %v", keywords, err)
		} else {
			parts = append(parts, e)
		}
	}
	if len(parts) == 0 {
		l.tag = language.Und
		return l
	}
	tag, err := language.Compose(parts...)
	if err != nil {
		tracer().Infof("locale %q composed with error: %v", LocaleID(l), err)
	}
	l.tag = tag
	return l
}

// Parse creates a locale from a locale identifier, like "tr_TR", "de-DE" or
// "en_US.UTF-8". An empty identifier yields the root locale.
func Parse(id string) Locale {
	id = strings.TrimSpace(id)
	if i := strings.IndexAny(id, ".@"); i >= 0 { // POSIX charset and modifier
		id = id[:i]
	}
	if id == "" || id == "C" || id == "POSIX" {
		return Root
	}
	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return bogusLocale(Locale{lang: id}, "identifier", err)
	}
	return FromTag(tag)
}

// FromTag adapts a BCP 47 language tag.
func FromTag(tag language.Tag) Locale {
	base, conf := tag.Base()
	if tag == language.Und || conf == language.No {
		return Root
	}
	lang := base.String()
	var country, variant string
	if region, conf := tag.Region(); conf == language.Exact {
		country = region.String()
	}
	if vv := tag.Variants(); len(vv) > 0 {
		variant = vv[0].String()
	}
	var kw []string
	for key, bcp := range keywordKeys {
		if t := tag.TypeForKey(bcp); t != "" {
			kw = append(kw, key+"="+t)
		}
	}
	sort.Strings(kw)
	return GetLocale(lang, country, variant, strings.Join(kw, ";"))
}

func bogusLocale(l Locale, what string, err error) Locale {
	tracer().Errorf("bogus locale, malformed %s: %v", what, err)
	l.bogus = true
	l.tag = language.Und
	l.keywords = nil
	return l
}

// Language returns the lowercase language code, or "" for the root locale.
func (l Locale) Language() string { return l.lang }

// Country returns the uppercase country code, if any.
func (l Locale) Country() string { return l.country }

// Variant returns the locale variant, if any.
func (l Locale) Variant() string { return l.variant }

// Keyword returns the value of a locale keyword, e.g. Keyword("collation").
func (l Locale) Keyword(key string) string {
	return l.keywords[strings.ToLower(key)]
}

// Tag returns the BCP 47 language tag for l. Bogus locales return
// language.Und.
func (l Locale) Tag() language.Tag { return l.tag }

// IsBogus is true if l has been constructed from malformed parameters.
func (l Locale) IsBogus() bool { return l.bogus }

// Is checks if two locales denote the same language tag.
func (l Locale) Is(other Locale) bool {
	return l.bogus == other.bogus && l.tag == other.tag
}

func (l Locale) String() string {
	if l.bogus {
		return "bogus(" + l.lang + "_" + l.country + ")"
	}
	return l.tag.String()
}

// LocaleID returns the identifier of a locale in the form "ll_CC", or "ll"
// if l has no country. If the language is unspecified, "en" is used.
func LocaleID(l Locale) string {
	lang := l.lang
	if lang == "" {
		lang = "en"
	}
	if l.country == "" {
		return lang
	}
	return lang + "_" + l.country
}

// --- Keywords --------------------------------------------------------------

// keywordKeys maps long keyword names to BCP 47 -u- extension keys.
var keywordKeys = map[string]string{
	"collation": "co",
	"calendar":  "ca",
	"numbers":   "nu",
	"currency":  "cu",
}

// keywordValues maps long keyword values to their BCP 47 form.
var keywordValues = map[string]string{
	"phonebook":   "phonebk",
	"traditional": "trad",
	"dictionary":  "dict",
	"gregorian":   "gregory",
	"pinyin":      "pinyin",
	"stroke":      "stroke",
}

func parseKeywords(kw string) map[string]string {
	kw = strings.TrimSpace(kw)
	if kw == "" {
		return nil
	}
	m := make(map[string]string)
	for _, pair := range strings.Split(kw, ";") {
		k, v, found := strings.Cut(pair, "=")
		k, v = strings.ToLower(strings.TrimSpace(k)), strings.ToLower(strings.TrimSpace(v))
		if !found || k == "" || v == "" {
			tracer().Infof("ignoring malformed locale keyword %q", pair)
			continue
		}
		m[k] = v
	}
	return m
}

func unicodeExtension(keywords map[string]string) string {
	var ext []string
	for key, value := range keywords {
		bcp, ok := keywordKeys[key]
		if !ok {
			continue
		}
		if v, ok := keywordValues[value]; ok {
			value = v
		}
		ext = append(ext, bcp+"-"+value)
	}
	if len(ext) == 0 {
		return ""
	}
	sort.Strings(ext)
	return "u-" + strings.Join(ext, "-")
}
