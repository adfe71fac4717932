package scoring

// Tier is the coarse priority bucket derived from a lead score.
type Tier string

const (
	TierLead     Tier = "Lead"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// AllTiers returns the tiers ordered from lowest to highest priority.
func AllTiers() []Tier {
	return []Tier{TierLead, TierGold, TierPlatinum}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierLead, TierGold, TierPlatinum:
		return true
	}
	return false
}

// Classify maps a score to its tier. The boundaries are coupled to the range
// the rule table emits; revisit them together with any scoring change.
func Classify(score int) Tier {
	switch {
	case score >= 90:
		return TierPlatinum
	case score >= 80:
		return TierGold
	default:
		return TierLead
	}
}
