package tokenize

import (
	"regexp"
	"strings"
)

// rule is a single regexp rewrite step.
type rule struct {
	re   *regexp.Regexp
	repl string
}

func (r rule) apply(s string) string {
	return r.re.ReplaceAllString(s, r.repl)
}

func applyAll(rules []rule, s string) string {
	for _, r := range rules {
		s = r.apply(s)
	}
	return s
}

func mustRule(expr, repl string) rule {
	return rule{re: regexp.MustCompile(expr), repl: repl}
}

var startingQuotes = []rule{
	mustRule("([«“‘„]|`+)", " ${1} "),
	mustRule(`^"`, "``"),
	mustRule("(``)", " ${1} "),
	mustRule(`([ (\[{<])("|'')`, "${1} `` "),
}

// leadingApostrophe matches an apostrophe glued to a one-letter word.
// Clitic letters are filtered in splitLeadingApostrophe since RE2 has no lookahead.
var leadingApostrophe = regexp.MustCompile(`'\w\b`)

func splitLeadingApostrophe(s string) string {
	return leadingApostrophe.ReplaceAllStringFunc(s, func(m string) string {
		if strings.ContainsAny(m[1:], "mtsdnMTSDN") {
			return m
		}
		return "' " + m[1:]
	})
}

var punctuation = []rule{
	mustRule(`([^.])(\.)([\])}>"']*)\s*$`, "${1} ${2} ${3} "),
	mustRule(`([:,])([^\d])`, " ${1} ${2}"),
	mustRule(`([:,])$`, " ${1} "),
	mustRule(`\.{2,}`, " ${0} "),
	mustRule(`[;@#$%&]`, " ${0} "),
	mustRule(`[?!]`, " ${0} "),
	mustRule(`([^'])' `, "${1} ' "),
	mustRule(`[*]`, " ${0} "),
}

var (
	parensBrackets = mustRule(`[\]\[(){}<>]`, " ${0} ")
	doubleDashes   = mustRule(`--`, " -- ")
)

var endingQuotes = []rule{
	mustRule(`([»”’])`, " ${1} "),
	mustRule(`''`, " '' "),
	mustRule(`"`, " '' "),
	mustRule(`([^' ])('[sS]|'[mM]|'[dD]|') `, "${1} ${2} "),
	mustRule(`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `, "${1} ${2} "),
}

var contractions = []rule{
	mustRule(`(?i)\b(can)(not)\b`, " ${1} ${2} "),
	mustRule(`(?i)\b(d)('ye)\b`, " ${1} ${2} "),
	mustRule(`(?i)\b(gim)(me)\b`, " ${1} ${2} "),
	mustRule(`(?i)\b(gon)(na)\b`, " ${1} ${2} "),
	mustRule(`(?i)\b(got)(ta)\b`, " ${1} ${2} "),
	mustRule(`(?i)\b(lem)(me)\b`, " ${1} ${2} "),
	mustRule(`(?i)\b(more)('n)\b`, " ${1} ${2} "),
	mustRule(`(?i)\b(wan)(na)(\s)`, " ${1} ${2} ${3}"),
	mustRule(`(?i) ('t)(is)\b`, " ${1} ${2} "),
	mustRule(`(?i) ('t)(was)\b`, " ${1} ${2} "),
}
