package profile

import "github.com/kailas-cloud/stayrec/internal/domain/activity"

// BudgetTier groups guests by spending preference.
type BudgetTier string

const (
	// BudgetLow prefers activities priced at 30 or less.
	BudgetLow BudgetTier = "low"
	// BudgetMedium prefers activities priced between 20 and 60.
	BudgetMedium BudgetTier = "medium"
	// BudgetHigh prefers activities priced at 40 or more.
	BudgetHigh BudgetTier = "high"
)

// IsValid checks whether the tier is one of low/medium/high.
func (b BudgetTier) IsValid() bool {
	return b == BudgetLow || b == BudgetMedium || b == BudgetHigh
}

// AgeGroup is a derived, informational-only guest bracket.
type AgeGroup string

const (
	// AgeYoung is the under-30 bracket.
	AgeYoung AgeGroup = "young"
	// AgeAdult is the default bracket.
	AgeAdult AgeGroup = "adult"
	// AgeSenior is the 60+ bracket.
	AgeSenior AgeGroup = "senior"
)

// Profile holds a guest's preference signals for one recommendation request.
// It is constructed per request and never persisted by the engine; concurrent
// requests for different guests share nothing.
type Profile struct {
	UserID    int64
	Interests []activity.Category
	Budget    BudgetTier
	Age       AgeGroup
	// History holds previously consumed activity ids, oldest first. Ids not
	// present in the current catalog are tolerated and skipped downstream.
	History []int64
}

// HasInterest reports whether the category is among the guest's interests.
func (p Profile) HasInterest(c activity.Category) bool {
	for _, i := range p.Interests {
		if i == c {
			return true
		}
	}
	return false
}

// HasVisited reports whether the activity id appears in the guest's history.
func (p Profile) HasVisited(id int64) bool {
	for _, h := range p.History {
		if h == id {
			return true
		}
	}
	return false
}

// syntheticPairs are the five canned (interests, budget) combinations the
// fallback rotates through by userID mod 5.
var syntheticPairs = [5]struct {
	interests []activity.Category
	budget    BudgetTier
}{
	{[]activity.Category{activity.Cultural, activity.Culinary}, BudgetHigh},
	{[]activity.Category{activity.Wellness, activity.Entertainment}, BudgetMedium},
	{[]activity.Category{activity.Adventure, activity.Cultural}, BudgetLow},
	{[]activity.Category{activity.Culinary, activity.Wellness}, BudgetHigh},
	{[]activity.Category{activity.Entertainment, activity.Adventure}, BudgetMedium},
}

// Synthetic derives a deterministic profile from the user id alone. It is the
// documented fallback when the preference upstream is unreachable: the same id
// always yields the same profile, which keeps repeated requests idempotent.
func Synthetic(userID int64) Profile {
	// Go's % keeps the sign of the dividend; normalize so negative ids
	// select a pair instead of panicking.
	pair := syntheticPairs[((userID%5)+5)%5]

	interests := make([]activity.Category, len(pair.interests))
	copy(interests, pair.interests)

	band := ((userID % 10) + 10) % 10
	age := AgeSenior
	switch {
	case band < 3:
		age = AgeYoung
	case band < 7:
		age = AgeAdult
	}

	return Profile{
		UserID:    userID,
		Interests: interests,
		Budget:    pair.budget,
		Age:       age,
		History:   []int64{},
	}
}
