package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify lower-cases s, strips diacritics and joins alphanumeric runs with
// single hyphens: "São Paulo, SP" -> "sao-paulo-sp".
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// TitleCase normalizes whitespace and title-cases every word:
// "  los   ANGELES " -> "Los Angeles".
func TitleCase(s string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
}

// UpperFirst upper-cases only the first rune of s.
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	first := []rune(cases.Upper(language.English).String(string(r[0])))
	return string(first) + string(r[1:])
}
