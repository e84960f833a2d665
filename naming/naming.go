package naming

import (
	"strings"
	"unicode"
)

// FieldName converts a raw column name into a lowerCamel identifier.
// Acronym runs are broken apart first so camel-casing keeps their word
// boundaries: NDB_No becomes ndbNo, FLDNum_Can becomes fldNumCan.
func FieldName(raw string) string {
	return camelCase(deAcronym(raw))
}

// ClassName converts a raw table name into an UpperCamel type name,
// splitting on underscores: user_accounts becomes UserAccounts.
func ClassName(raw string) string {
	return ClassNameSplit(raw, '_')
}

// ClassNameSplit is ClassName with a caller-chosen separator.
func ClassNameSplit(raw string, sep rune) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, piece := range strings.FieldsFunc(raw, func(r rune) bool { return r == sep }) {
		b.WriteString(titleCase(piece))
	}
	return b.String()
}

// ExportName upper-cases the first rune of a field name, yielding the
// fragment used in accessor method names (id -> Id, userName -> UserName).
func ExportName(field string) string {
	if field == "" {
		return ""
	}
	rs := []rune(field)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

// deAcronym breaks maximal runs of two or more upper-case letters by
// lower-casing everything after the run's first letter. When the run is
// followed by a lower-case letter, the run's last letter is the start of
// the following word and keeps its case. A string with no lower-case
// letter at all is treated as a single shouted token and lowered whole.
func deAcronym(raw string) string {
	if !strings.ContainsFunc(raw, unicode.IsLower) {
		return strings.ToLower(raw)
	}
	rs := []rune(raw)
	for i := 0; i < len(rs); {
		if !unicode.IsUpper(rs[i]) {
			i++
			continue
		}
		j := i
		for j < len(rs) && unicode.IsUpper(rs[j]) {
			j++
		}
		if j-i >= 2 {
			end := j
			if j < len(rs) && unicode.IsLower(rs[j]) {
				end = j - 1
			}
			for k := i + 1; k < end; k++ {
				rs[k] = unicode.ToLower(rs[k])
			}
		}
		i = j
	}
	return string(rs)
}

// camelCase drops every non-alphanumeric rune and starts a new word after
// each one and at each lower-to-upper transition. The first word's first
// rune is lowered, every later word's first rune is uppered, everything
// else is left as deAcronym produced it.
func camelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	newWord := false
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			newWord = b.Len() > 0
			prev = 0
			continue
		}
		switch {
		case b.Len() == 0:
			b.WriteRune(unicode.ToLower(r))
		case newWord || (unicode.IsLower(prev) && unicode.IsUpper(r)):
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(r)
		}
		newWord = false
		prev = r
	}
	return b.String()
}

func titleCase(s string) string {
	rs := []rune(s)
	for i := range rs {
		if i == 0 {
			rs[i] = unicode.ToUpper(rs[i])
		} else {
			rs[i] = unicode.ToLower(rs[i])
		}
	}
	return string(rs)
}
