package formula

import (
	"strings"
	"unicode"
)

// Normalize rewrites the shorthand people write on paper into explicit
// operators: "2x" becomes "2*x", "3(x+1)" becomes "3*(x+1)", ")(" becomes
// ")*(" and "x(" becomes "x*(". Function calls such as "sin(" are left alone.
//
// A digit is only joined to a following letter when that letter starts the
// bare variable x or a known name, so exponents like "1e3" keep working.
// A lone "e" after a digit is the constant unless a digit or sign follows:
// "2e" becomes "2*e" while "1e3" and "1e-3" stay numbers.
func Normalize(src string) string {
	runes := []rune(src)
	var sb strings.Builder
	sb.Grow(len(src) + 8)

	for i, r := range runes {
		if !unicode.IsSpace(r) && needsStar(runes, i) {
			sb.WriteRune('*')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// needsStar reports whether an implicit multiplication sits right before runes[i].
func needsStar(runes []rune, i int) bool {
	pj := prevNonSpace(runes, i)
	if pj < 0 {
		return false
	}
	prev, cur := runes[pj], runes[i]

	switch {
	case prev == ')' && (cur == '(' || unicode.IsDigit(cur) || unicode.IsLetter(cur)):
		return true
	case unicode.IsDigit(prev) && cur == '(':
		return !inIdentifier(runes, pj)
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		if inIdentifier(runes, pj) {
			return false
		}
		word := identifierAt(runes, i)
		if word == "e" {
			return !exponentFollows(runes, i+1)
		}
		return word == "x" || word == "pi" || knownFunc(word)
	case prev == 'x' && cur == '(':
		return identifierEndingAt(runes, pj) == "x"
	}
	return false
}

// exponentFollows reports whether runes[i] continues a number exponent.
func exponentFollows(runes []rune, i int) bool {
	if i >= len(runes) {
		return false
	}
	r := runes[i]
	return unicode.IsDigit(r) || r == '+' || r == '-'
}

// prevNonSpace returns the index of the last non-space rune before i, or -1.
func prevNonSpace(runes []rune, i int) int {
	for j := i - 1; j >= 0; j-- {
		if !unicode.IsSpace(runes[j]) {
			return j
		}
	}
	return -1
}

// inIdentifier reports whether the digit at j belongs to a name like "log10".
func inIdentifier(runes []rune, j int) bool {
	for k := j; k >= 0; k-- {
		r := runes[k]
		if unicode.IsLetter(r) || r == '_' {
			return true
		}
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return false
}

// identifierAt returns the identifier starting at i.
func identifierAt(runes []rune, i int) string {
	j := i
	for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
		j++
	}
	return string(runes[i:j])
}

// identifierEndingAt returns the identifier whose last rune is at j.
func identifierEndingAt(runes []rune, j int) string {
	k := j
	for k >= 0 && (unicode.IsLetter(runes[k]) || unicode.IsDigit(runes[k]) || runes[k] == '_') {
		k--
	}
	return string(runes[k+1 : j+1])
}

func knownFunc(name string) bool {
	_, ok := newEnv(0)[name]
	return ok && name != "x" && name != "e"
}
