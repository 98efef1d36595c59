package textops

import (
	"github.com/npillmayer/unistr/locale"
	"golang.org/x/text/unicode/norm"
)

// NormalizationForm is a Unicode normalization form.
type NormalizationForm int8

// Normalization forms. NFKCCaseFold applies NFKC after case folding.
const (
	NFD NormalizationForm = iota
	NFC
	NFKD
	NFKC
	NFKCCaseFold
)

func (f NormalizationForm) String() string {
	switch f {
	case NFD:
		return "NFD"
	case NFC:
		return "NFC"
	case NFKD:
		return "NFKD"
	case NFKC:
		return "NFKC"
	case NFKCCaseFold:
		return "NFKC_Casefold"
	}
	return "<unknown form>"
}

// Normalize brings s into normalization form f. Canonically equivalent
// strings have identical NFC and NFD forms.
// opts is used for the case folding step of NFKCCaseFold only.
func Normalize(s string, opts locale.StringOptions, f NormalizationForm) string {
	switch f {
	case NFD:
		return norm.NFD.String(s)
	case NFC:
		return norm.NFC.String(s)
	case NFKD:
		return norm.NFKD.String(s)
	case NFKC:
		return norm.NFKC.String(s)
	case NFKCCaseFold:
		return norm.NFKC.String(FoldCase(norm.NFKC.String(s), opts))
	}
	tracer().Errorf("unknown normalization form %d, string left unchanged", f)
	return s
}
