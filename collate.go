package unistr

import (
	"sync"

	"github.com/npillmayer/unistr/collation"
	"github.com/npillmayer/unistr/locale"
)

// shared is the process-wide collation scope.
var shared struct {
	sync.Mutex
	scope collation.Scope
}

// InitializeCollator sets up the process-wide collator for a locale. It
// returns false if loc is bogus, in which case the root locale is used.
//
// Collate and SortCompleted serialize on a mutex. For concurrent sorts,
// use a collation.Scope per goroutine instead.
func InitializeCollator(loc locale.Locale, normalize bool) bool {
	shared.Lock()
	defer shared.Unlock()
	return shared.scope.Initialize(loc, normalize)
}

// Collate compares a and b using the process-wide collator. If
// InitializeCollator has not been called, a and b are compared by code points.
func Collate(a, b string) int {
	shared.Lock()
	defer shared.Unlock()
	return shared.scope.Collate(a, b)
}

// SortCompleted reports a finished sort of n items using the process-wide
// collator.
func SortCompleted(n int) {
	shared.Lock()
	defer shared.Unlock()
	shared.scope.SortCompleted(n)
}
