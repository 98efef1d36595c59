package locale

import (
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/gconf"
)

// ConfigKey is the configuration key for the default locale.
const ConfigKey = "unistr.locale"

var (
	systemOnce   sync.Once
	systemLocale Locale
)

// Default returns the default locale for text operations. It is taken from
// configuration key "unistr.locale", if set. Otherwise it is the locale of
// the user environment, or en_US if detection fails.
func Default() Locale {
	if gconf.IsSet(ConfigKey) {
		if id := gconf.GetString(ConfigKey); id != "" {
			if l := Parse(id); !l.IsBogus() {
				return l
			}
			tracer().Errorf("configured locale %q is malformed, ignoring it", id)
		}
	}
	return System()
}

// System returns the locale of the user environment. Detection happens once.
func System() Locale {
	systemOnce.Do(func() {
		userLocale, err := jj.DetectIETF()
		if err != nil || userLocale == "" {
			tracer().Infof("cannot detect user locale, using en-US")
			systemLocale = USEnglish
			return
		}
		systemLocale = Parse(userLocale)
		if systemLocale.IsBogus() || systemLocale.Tag().IsRoot() {
			tracer().Infof("user locale %q not usable, using en-US", userLocale)
			systemLocale = USEnglish
			return
		}
		tracer().Infof("detected user locale %v", systemLocale)
	})
	return systemLocale
}
