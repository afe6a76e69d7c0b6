package pricing

import "testing"

func intp(v int) *int { return &v }

func TestGuestTierForFirstMatch(t *testing.T) {
	tiers := []GuestTier{
		{ID: "t1", Label: "1-20", MinGuests: 1, MaxGuests: intp(20)},
		{ID: "t2", Label: "21-30", MinGuests: 21, MaxGuests: intp(30)},
	}

	if tier := GuestTierFor(15, tiers); tier == nil || tier.ID != "t1" {
		t.Fatalf("guestCount=15: got %+v, want t1", tier)
	}
	if tier := GuestTierFor(25, tiers); tier == nil || tier.ID != "t2" {
		t.Fatalf("guestCount=25: got %+v, want t2", tier)
	}
	if tier := GuestTierFor(0, tiers); tier != nil {
		t.Fatalf("guestCount=0: got %+v, want nil", tier)
	}
	if tier := GuestTierFor(31, tiers); tier != nil {
		t.Fatalf("guestCount=31 with no unbounded tier: got %+v, want nil", tier)
	}
}

func TestGuestTierForOverlapEarlierWins(t *testing.T) {
	tiers := []GuestTier{
		{ID: "promo", MinGuests: 10, MaxGuests: intp(15)},
		{ID: "base", MinGuests: 1, MaxGuests: nil},
	}
	if tier := GuestTierFor(12, tiers); tier == nil || tier.ID != "promo" {
		t.Fatalf("overlapping tiers: got %+v, want promo", tier)
	}
	if tier := GuestTierFor(40, tiers); tier == nil || tier.ID != "base" {
		t.Fatalf("unbounded tier: got %+v, want base", tier)
	}
}

func TestTierOverlapWarnings(t *testing.T) {
	disjoint := []GuestTier{
		{ID: "t1", Label: "small", MinGuests: 1, MaxGuests: intp(20)},
		{ID: "t2", Label: "large", MinGuests: 21, MaxGuests: nil},
	}
	if w := TierOverlapWarnings(disjoint); w != nil {
		t.Fatalf("disjoint tiers warned: %v", w)
	}

	overlapping := []GuestTier{
		{ID: "t1", Label: "small", MinGuests: 1, MaxGuests: intp(20)},
		{ID: "t2", Label: "large", MinGuests: 15, MaxGuests: nil},
	}
	if w := TierOverlapWarnings(overlapping); len(w) != 1 {
		t.Fatalf("expected one overlap warning, got %v", w)
	}
}
