package locale

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/language"
)

func TestLocaleID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.locale")
	defer teardown()
	//
	tests := []struct {
		l      Locale
		expect string
	}{
		{GetLocale("tr", "TR", "", ""), "tr_TR"},
		{GetLocale("DE", "de", "", ""), "de_DE"},
		{GetLocale("uk", "", "", ""), "uk"},
		{GetLocale("", "", "", ""), "en"},
		{GetLocale("", "US", "", ""), "en_US"},
		{Parse("zh_CN"), "zh_CN"},
		{Parse("de-AT"), "de_AT"},
		{Parse("en_GB.UTF-8"), "en_GB"},
	}
	for i, tt := range tests {
		if id := LocaleID(tt.l); id != tt.expect {
			t.Errorf("test #%d: expected locale ID %q, have %q", i, tt.expect, id)
		}
	}
}

func TestLocaleTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.locale")
	defer teardown()
	//
	if Turkish.Tag() != language.MustParse("tr-TR") {
		t.Errorf("expected tag tr-TR, have %v", Turkish.Tag())
	}
	if !Root.Tag().IsRoot() {
		t.Errorf("expected root locale to have root tag, have %v", Root.Tag())
	}
	if !Parse("tr_TR").Is(Turkish) {
		t.Errorf("expected parsed tr_TR to be Turkish")
	}
	if !FromTag(language.German).Is(GetLocale("de", "", "", "")) {
		t.Errorf("expected FromTag(German) to equal de")
	}
	if !Parse("POSIX").Is(Root) {
		t.Errorf("expected POSIX locale to be root")
	}
}

func TestBogusLocale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.locale")
	defer teardown()
	//
	for _, l := range []Locale{
		GetLocale("12345", "", "", ""),
		GetLocale("en", "not a country", "", ""),
		Parse("!!garbage!!"),
	} {
		if !l.IsBogus() {
			t.Errorf("expected locale %v to be bogus", l)
		}
		if l.Tag() != language.Und {
			t.Errorf("expected bogus locale to fall back to root, have %v", l.Tag())
		}
	}
	if Turkish.IsBogus() {
		t.Errorf("Turkish locale should not be bogus")
	}
}

func TestLocaleKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.locale")
	defer teardown()
	//
	l := GetLocale("de", "DE", "", "collation=phonebook;calendar=gregorian")
	if l.IsBogus() {
		t.Fatalf("locale with keywords should not be bogus")
	}
	if l.Keyword("collation") != "phonebook" {
		t.Errorf("expected collation keyword 'phonebook', have %q", l.Keyword("collation"))
	}
	if co := l.Tag().TypeForKey("co"); co != "phonebk" {
		t.Errorf("expected tag to carry collation type 'phonebk', have %q (%v)", co, l.Tag())
	}
	if ca := l.Tag().TypeForKey("ca"); ca != "gregory" {
		t.Errorf("expected tag to carry calendar 'gregory', have %q", ca)
	}
	l = GetLocale("de", "", "", "collation")
	if l.IsBogus() || l.Keyword("collation") != "" {
		t.Errorf("expected malformed keyword to be ignored")
	}
}

func TestDefaultLocaleFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.locale")
	defer teardown()
	defer gconf.Initialize(testconfig.Conf{})
	//
	gconf.Initialize(testconfig.Conf{ConfigKey: "tr_TR"})
	if l := Default(); !l.Is(Turkish) {
		t.Errorf("expected configured default locale tr_TR, have %v", l)
	}
	gconf.Initialize(testconfig.Conf{ConfigKey: "!!garbage!!"})
	if l := Default(); l.IsBogus() {
		t.Errorf("expected malformed configuration to be ignored, have %v", l)
	}
}

func TestSystemLocale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistr.locale")
	defer teardown()
	//
	l := System()
	if l.IsBogus() || l.Tag().IsRoot() {
		t.Errorf("expected usable system locale, have %v", l)
	}
	t.Logf("user environment has locale %v", l)
}

func TestOptions(t *testing.T) {
	opts := TitleCaseNoLowercase | CompareCodePointOrder
	if !opts.Has(TitleCaseNoLowercase) || opts.Has(FoldCaseExcludeSpecialI) {
		t.Errorf("flag test failed for %v", opts)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("expected %v to be valid, have %v", opts, err)
	}
	if err := (TitleCaseWholeString | TitleCaseSentences).Validate(); err != ErrExclusiveOptions {
		t.Errorf("expected WholeString|Sentences to be rejected")
	}
	if err := (TitleCaseNoBreakAdjustment | TitleCaseAdjustToCased).Validate(); err != ErrExclusiveOptions {
		t.Errorf("expected NoBreakAdjustment|AdjustToCased to be rejected")
	}
	if s := opts.String(); s != "TitleCaseNoLowercase|CompareCodePointOrder" {
		t.Errorf("unexpected string for options: %q", s)
	}
}

func ExampleGetLocale() {
	tr := GetLocale("tr", "TR", "", "")
	fmt.Println(LocaleID(tr), tr.Tag())
	// Output:
	// tr_TR tr-TR
}
