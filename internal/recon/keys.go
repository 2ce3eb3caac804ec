package recon

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	numericKeyPattern = regexp.MustCompile(`[0-9]{8,}`)
	tokenPattern      = regexp.MustCompile(`[A-Z0-9]+`)
)

// stopwords are description words that carry no correlation signal.
var stopwords = map[string]struct{}{
	"THE": {}, "AND": {}, "OR": {}, "A": {}, "AN": {}, "BUT": {},
	"OF": {}, "TO": {}, "FOR": {}, "WITH": {}, "ON": {}, "FROM": {},
	"REVERSAL": {}, "REF": {}, "TRF": {}, "PAYMENT": {}, "PAID": {},
}

// NumericKey returns the first run of 8 or more consecutive digits in the
// description, verbatim. Later digit runs are ignored. Empty when the
// description is absent or carries no such run.
func NumericKey(desc string) string {
	if desc == "" {
		return ""
	}
	return numericKeyPattern.FindString(desc)
}

// TextKey builds a canonical signature from the description: uppercase
// alphanumeric tokens minus stopwords and tokens of 2 characters or fewer,
// deduplicated, sorted, first three joined with no separator. Empty when
// nothing survives. Identical descriptions always yield identical keys.
func TextKey(desc string) string {
	if desc == "" {
		return ""
	}
	seen := make(map[string]struct{})
	var tokens []string
	for _, tok := range tokenPattern.FindAllString(strings.ToUpper(desc), -1) {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	if len(tokens) > 3 {
		tokens = tokens[:3]
	}
	return strings.Join(tokens, "")
}

const noKeyPrefix = "NO_KEY_VALUE_"

// MatchKey combines the derived keys and the row's net value into the
// canonical grouping key. A numeric reference is authoritative: when present
// it is the key outright, regardless of amount or text. Otherwise the text
// key is qualified with the absolute net, and keyless rows fall back to the
// signed net alone.
func MatchKey(numericKey, textKey string, net decimal.Decimal) string {
	if numericKey != "" {
		return numericKey
	}
	if textKey != "" {
		return textKey + "_" + fmtAmount(net.Abs())
	}
	return noKeyPrefix + fmtAmount(net)
}

// fmtAmount renders an amount rounded to 2 decimal places with a fixed
// decimal point and at least one fractional digit: "1000.0", "12.5", "12.34".
func fmtAmount(d decimal.Decimal) string {
	s := d.Round(2).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
