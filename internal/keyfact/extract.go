// Package keyfact condenses a raw lead utterance into a short annotation of
// its most business-critical signals. Extraction is a pure function of the
// input text: each matching category contributes one token, joined with
// " | " in a fixed category order.
package keyfact

import (
	"regexp"
	"strings"
)

// NoFacts is the sentinel returned when no category matches.
const NoFacts = "N/A"

var (
	titleTokens = []string{"cto", "cfo", "cio", "vp", "director", "head"}

	euroAmount   = regexp.MustCompile(`(?i)(\d+(?:,\d{3})*[km]?)€`)
	dollarAmount = regexp.MustCompile(`(?i)\$(\d+(?:,\d{3})*[km]?)`)
	budgetPhrase = regexp.MustCompile(`(?i)(\d+)k?\s*budget`)

	yearTimeline = regexp.MustCompile(`\b20[2-9]\d\b`)
	quarterToken = regexp.MustCompile(`(?i)\bq[1-4]\b`)

	negativeIntent = []string{"not ready", "not interested", "won't buy"}
	intentPhrases  = []string{"wants to buy", "ready to buy", "need now", "urgent", "approved", "looking for", "interested in"}

	titlePatterns = map[string]*regexp.Regexp{}
)

func init() {
	for _, tok := range titleTokens {
		titlePatterns[tok] = regexp.MustCompile(`\b` + tok + `\b`)
	}
}

// factRule is one extraction category. find returns the rendered fact and
// whether the category matched.
type factRule struct {
	name string
	find func(raw, lower string) (string, bool)
}

// factRules is the category table. Output order follows this table, never
// the position of the matched text in the utterance.
var factRules = []factRule{
	{name: "title", find: findTitle},
	{name: "budget", find: findBudget},
	{name: "year-timeline", find: findYear},
	{name: "quarter-timeline", find: findQuarter},
	{name: "intent", find: findIntent},
}

// Extract returns the pipe-joined annotation for an utterance, or NoFacts
// when nothing matches. It never fails.
func Extract(rawInput string) string {
	lower := strings.ToLower(rawInput)

	var facts []string
	for _, rule := range factRules {
		if fact, ok := rule.find(rawInput, lower); ok {
			facts = append(facts, fact)
		}
	}

	if len(facts) == 0 {
		return NoFacts
	}
	return strings.Join(facts, " | ")
}

// findTitle emits the first matching decision-maker title, upper-cased.
// One title at most per utterance.
func findTitle(_, lower string) (string, bool) {
	for _, tok := range titleTokens {
		if titlePatterns[tok].MatchString(lower) {
			return strings.ToUpper(tok), true
		}
	}
	return "", false
}

// findBudget tries the budget patterns in strict priority order: Euro
// amount, then dollar amount, then a bare "<n>k budget" phrase. The first
// match wins; the branches are never combined.
func findBudget(raw, _ string) (string, bool) {
	if m := euroAmount.FindStringSubmatch(raw); m != nil {
		return m[1] + "€", true
	}
	if m := dollarAmount.FindStringSubmatch(raw); m != nil {
		return "$" + m[1], true
	}
	if m := budgetPhrase.FindStringSubmatch(raw); m != nil {
		return m[1] + "k budget", true
	}
	return "", false
}

// findYear emits a 2020-2099 year as "<year> timeline".
func findYear(raw, _ string) (string, bool) {
	if m := yearTimeline.FindString(raw); m != "" {
		return m + " timeline", true
	}
	return "", false
}

// findQuarter emits a quarter token upper-cased.
func findQuarter(raw, _ string) (string, bool) {
	if m := quarterToken.FindString(raw); m != "" {
		return strings.ToUpper(m), true
	}
	return "", false
}

// findIntent emits "HIGH INTENT" on any positive buying signal. A negative
// phrase anywhere in the utterance suppresses the category entirely.
func findIntent(_, lower string) (string, bool) {
	for _, neg := range negativeIntent {
		if strings.Contains(lower, neg) {
			return "", false
		}
	}
	for _, phrase := range intentPhrases {
		if strings.Contains(lower, phrase) {
			return "HIGH INTENT", true
		}
	}
	return "", false
}
