// Package scoring assigns a deterministic 0-100 priority score to a raw
// lead utterance. Scores are computed from the text alone so the registry
// can rank and tier leads without waiting on the interpreter.
package scoring

import (
	"regexp"
	"strings"
)

const (
	// BaseScore is the floor every utterance starts from. The automated
	// path never goes below it.
	BaseScore = 70

	// MaxScore caps the automated path. 96-100 are reserved for manual
	// overrides through the registry edit path.
	MaxScore = 95
)

// personalDomain marks a sender that is capped at the base score
// regardless of any other signal in the utterance.
const personalDomain = "@gmail.com"

var (
	execTitles     = []string{"cto", "cfo", "cio", "vp", "director", "head", "chief"}
	premiumTokens  = []string{"enterprise", "corp", "io", "co", "tech", "ai"}
	intentPhrases  = []string{"ready to buy", "need now", "urgent", "approved"}
	timelineTokens = []string{"q1", "q2", "q3", "q4", "next month"}

	budgetPattern = regexp.MustCompile(`\$\d+[km]?`)
)

// Rule is one named scoring signal. Eval returns the points the rule
// contributes for a lower-cased utterance.
type Rule struct {
	Name string
	Eval func(text string) int
}

// Rules returns the signal table in evaluation order. Each rule is
// independently testable; the score is the clamped sum over the table.
func Rules() []Rule {
	return []Rule{
		{Name: "exec-title", Eval: func(t string) int { return 8 * countTokens(t, execTitles) }},
		{Name: "premium-domain", Eval: func(t string) int { return flat(12, containsAny(t, premiumTokens)) }},
		{Name: "buy-intent", Eval: func(t string) int { return 8 * countTokens(t, intentPhrases) }},
		{Name: "budget", Eval: func(t string) int { return flat(12, budgetPattern.MatchString(t)) }},
		{Name: "timeline", Eval: func(t string) int { return flat(10, containsAny(t, timelineTokens)) }},
	}
}

// Score computes the lead priority for a raw utterance. Matching is
// case-insensitive; distinct tokens count once each no matter how often
// they occur.
func Score(rawInput string) int {
	text := strings.ToLower(rawInput)

	if strings.Contains(text, personalDomain) {
		return BaseScore
	}

	score := BaseScore
	for _, r := range Rules() {
		score += r.Eval(text)
	}
	if score > MaxScore {
		score = MaxScore
	}
	return score
}

var tokenPatterns = map[string]*regexp.Regexp{}

func init() {
	for _, group := range [][]string{execTitles, premiumTokens, intentPhrases, timelineTokens} {
		for _, tok := range group {
			tokenPatterns[tok] = regexp.MustCompile(`\b` + regexp.QuoteMeta(tok) + `\b`)
		}
	}
}

// countTokens counts how many distinct tokens appear in the text as whole
// words. Word boundaries keep "director" from also counting as "cto" and
// ".com" from counting as "co".
func countTokens(text string, tokens []string) int {
	n := 0
	for _, tok := range tokens {
		if tokenPatterns[tok].MatchString(text) {
			n++
		}
	}
	return n
}

func containsAny(text string, tokens []string) bool {
	return countTokens(text, tokens) > 0
}

func flat(points int, matched bool) int {
	if matched {
		return points
	}
	return 0
}
