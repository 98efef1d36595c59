package collation

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/unistr/locale"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NumericConfigKey is the configuration key to switch off numeric ordering
// of digit sequences for new collators.
const NumericConfigKey = "unistr.collation.numeric"

// Collator orders strings by the collation rules of a locale.
// A Collator is not safe for concurrent use.
type Collator struct {
	loc       locale.Locale
	normalize bool
	numeric   bool
	coll      *collate.Collator
}

// NewCollator creates a collator for a locale. If normalize is set, strings
// are brought into NFD before they are compared.
// A bogus locale results in a collator for the root locale.
func NewCollator(loc locale.Locale, normalize bool) *Collator {
	c := &Collator{loc: loc, normalize: normalize, numeric: true}
	if gconf.IsSet(NumericConfigKey) {
		c.numeric = gconf.GetBool(NumericConfigKey)
	}
	tag := loc.Tag()
	if loc.IsBogus() {
		tracer().Errorf("collator for bogus locale %v uses root collation", loc)
		tag = language.Und
	}
	var opts []collate.Option
	if c.numeric {
		opts = append(opts, collate.Numeric)
	}
	c.coll = collate.New(tag, opts...)
	return c
}

// Locale returns the locale of c.
func (c *Collator) Locale() locale.Locale {
	return c.loc
}

// Compare returns an integer comparing two strings by the collation rules
// of c: 0 if a == b, -1 if a < b and +1 if a > b.
func (c *Collator) Compare(a, b string) int {
	if c.normalize {
		a, b = norm.NFD.String(a), norm.NFD.String(b)
	}
	return c.coll.CompareString(a, b)
}

// CompareWide compares two strings given as code points.
func (c *Collator) CompareWide(a, b []rune) int {
	return c.Compare(string(a), string(b))
}
