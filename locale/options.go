package locale

import (
	"errors"
	"strings"
)

// StringOptions is a set of flags controlling case folding, title casing and
// comparison. Flags may be combined with '|'. The zero value selects the
// default behaviour for every operation.
type StringOptions uint32

// Flags for StringOptions.
const (
	FoldCaseDefault            StringOptions = 0
	FoldCaseExcludeSpecialI    StringOptions = 0x1
	TitleCaseWholeString       StringOptions = 0x20
	TitleCaseSentences         StringOptions = 0x40
	TitleCaseNoLowercase       StringOptions = 0x100
	TitleCaseNoBreakAdjustment StringOptions = 0x200
	TitleCaseAdjustToCased     StringOptions = 0x400
	EditsNoReset               StringOptions = 0x2000
	OmitUnchangedText          StringOptions = 0x4000
	CompareCodePointOrder      StringOptions = 0x8000
	CompareIgnoreCase          StringOptions = 0x10000
	NormInputIsFCD             StringOptions = 0x20000
)

// ErrExclusiveOptions is returned by Validate for flag combinations which
// exclude each other.
var ErrExclusiveOptions = errors.New("mutually exclusive string options")

// Has is true if all flags of f are set in o.
func (o StringOptions) Has(f StringOptions) bool {
	return o&f == f
}

// Validate checks o for combinations of mutually exclusive flags. Text
// operations do not reject such options; the result is unspecified.
func (o StringOptions) Validate() error {
	if o.Has(TitleCaseWholeString | TitleCaseSentences) {
		return ErrExclusiveOptions
	}
	if o.Has(TitleCaseNoBreakAdjustment | TitleCaseAdjustToCased) {
		return ErrExclusiveOptions
	}
	return nil
}

var optionNames = []struct {
	flag StringOptions
	name string
}{
	{FoldCaseExcludeSpecialI, "FoldCaseExcludeSpecialI"},
	{TitleCaseWholeString, "TitleCaseWholeString"},
	{TitleCaseSentences, "TitleCaseSentences"},
	{TitleCaseNoLowercase, "TitleCaseNoLowercase"},
	{TitleCaseNoBreakAdjustment, "TitleCaseNoBreakAdjustment"},
	{TitleCaseAdjustToCased, "TitleCaseAdjustToCased"},
	{EditsNoReset, "EditsNoReset"},
	{OmitUnchangedText, "OmitUnchangedText"},
	{CompareCodePointOrder, "CompareCodePointOrder"},
	{CompareIgnoreCase, "CompareIgnoreCase"},
	{NormInputIsFCD, "NormInputIsFCD"},
}

func (o StringOptions) String() string {
	if o == FoldCaseDefault {
		return "Default"
	}
	var names []string
	for _, n := range optionNames {
		if o.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
