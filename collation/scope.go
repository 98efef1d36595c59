package collation

import (
	"context"
	"strings"
	"time"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/unistr/locale"
)

// Scope holds the collator for a series of comparisons, like sorting a table.
// A Scope is owned by a single goroutine and must not be shared.
//
// The zero value is an uninitialized scope, which orders strings by code points.
type Scope struct {
	coll    *Collator
	started time.Time
	warned  bool
}

// NewScope creates an uninitialized scope.
func NewScope() *Scope {
	return &Scope{}
}

// Initialize sets up the collator of s for a locale. It returns false if
// loc is bogus; s will then use the collation rules of the root locale.
func (s *Scope) Initialize(loc locale.Locale, normalize bool) bool {
	s.coll = NewCollator(loc, normalize)
	s.started = time.Now()
	s.warned = false
	tracer().Debugf("collation scope initialized for %v, normalize=%v", loc, normalize)
	return !loc.IsBogus()
}

// Initialized is true if Initialize has been called for s.
func (s *Scope) Initialized() bool {
	return s != nil && s.coll != nil
}

// Collator returns the collator of s, or nil if s is uninitialized.
func (s *Scope) Collator() *Collator {
	if !s.Initialized() {
		return nil
	}
	return s.coll
}

// Collate compares two strings with the collator of s. If s has not been
// initialized, strings are compared by code points and a warning is traced
// once.
func (s *Scope) Collate(a, b string) int {
	if !s.Initialized() {
		if s != nil && !s.warned {
			tracer().Errorf("collation scope used before initialization, using code point order")
			s.warned = true
		}
		return strings.Compare(a, b)
	}
	return s.coll.Compare(a, b)
}

// CollateWide compares two strings given as code points.
func (s *Scope) CollateWide(a, b []rune) int {
	return s.Collate(string(a), string(b))
}

// SortCompleted is called after a sort operation using s is done. It traces the
// number of sorted items and the time since s has been initialized.
func (s *Scope) SortCompleted(n int) {
	if !s.Initialized() {
		return
	}
	tracer().Infof("sorted %d items with locale %v in %v", n, s.coll.loc, time.Since(s.started))
}

// --- Context seam ----------------------------------------------------------

type scopeKey struct{}

// WithScope returns a copy of ctx carrying scope s.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// FromContext returns the scope carried by ctx, or nil.
func FromContext(ctx context.Context) *Scope {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(scopeKey{}).(*Scope)
	return s
}

// --- Sorting ---------------------------------------------------------------

// Sort sorts a slice of strings in place, using the collator of scope s.
func Sort(s *Scope, items []string) {
	values := make([]interface{}, len(items))
	for i, item := range items {
		values[i] = item
	}
	utils.Sort(values, func(a, b interface{}) int {
		return s.Collate(a.(string), b.(string))
	})
	for i, v := range values {
		items[i] = v.(string)
	}
}
