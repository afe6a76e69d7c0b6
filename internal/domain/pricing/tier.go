package pricing

import "fmt"

// GuestTierFor returns the first tier in the supplied order whose range
// contains guestCount. Overlapping tiers resolve to the earlier one.
// Returns nil when no tier matches; callers treat that as "pricing
// unavailable", not an error.
func GuestTierFor(guestCount int, tiers []GuestTier) *GuestTier {
	for i := range tiers {
		if tiers[i].Contains(guestCount) {
			tier := tiers[i]
			return &tier
		}
	}
	return nil
}

// TierOverlapWarnings reports every pair of tiers sharing guest counts.
// Overlaps are a configuration hazard, not a resolver error: first-match
// still wins at quote time, so these surface as save-time warnings only.
func TierOverlapWarnings(tiers []GuestTier) []string {
	var warnings []string
	for i := 0; i < len(tiers); i++ {
		for j := i + 1; j < len(tiers); j++ {
			if tiers[i].Overlaps(tiers[j]) {
				warnings = append(warnings, fmt.Sprintf(
					"guest tiers %q and %q overlap; guests in both ranges will be priced by %q",
					tiers[i].Label, tiers[j].Label, tiers[i].Label,
				))
			}
		}
	}
	return warnings
}
