package profile

import (
	"reflect"
	"testing"

	"github.com/kailas-cloud/stayrec/internal/domain/activity"
)

func TestSynthetic_Deterministic(t *testing.T) {
	for _, id := range []int64{1, 7, 42, 1000003} {
		a := Synthetic(id)
		b := Synthetic(id)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Synthetic(%d) not reproducible: %+v vs %+v", id, a, b)
		}
	}
}

func TestSynthetic_ModuloPairs(t *testing.T) {
	tests := []struct {
		userID    int64
		interests []activity.Category
		budget    BudgetTier
		age       AgeGroup
	}{
		{10, []activity.Category{activity.Cultural, activity.Culinary}, BudgetHigh, AgeYoung},
		{1, []activity.Category{activity.Wellness, activity.Entertainment}, BudgetMedium, AgeYoung},
		{2, []activity.Category{activity.Adventure, activity.Cultural}, BudgetLow, AgeYoung},
		{3, []activity.Category{activity.Culinary, activity.Wellness}, BudgetHigh, AgeAdult},
		{4, []activity.Category{activity.Entertainment, activity.Adventure}, BudgetMedium, AgeAdult},
		{19, []activity.Category{activity.Entertainment, activity.Adventure}, BudgetMedium, AgeSenior},
		{25, []activity.Category{activity.Cultural, activity.Culinary}, BudgetHigh, AgeAdult},
		// Negative ids must select a pair, not panic.
		{-1, []activity.Category{activity.Entertainment, activity.Adventure}, BudgetMedium, AgeSenior},
		{-10, []activity.Category{activity.Cultural, activity.Culinary}, BudgetHigh, AgeYoung},
	}

	for _, tt := range tests {
		p := Synthetic(tt.userID)
		if !reflect.DeepEqual(p.Interests, tt.interests) {
			t.Errorf("user %d: interests = %v, want %v", tt.userID, p.Interests, tt.interests)
		}
		if p.Budget != tt.budget {
			t.Errorf("user %d: budget = %s, want %s", tt.userID, p.Budget, tt.budget)
		}
		if p.Age != tt.age {
			t.Errorf("user %d: age = %s, want %s", tt.userID, p.Age, tt.age)
		}
		if len(p.History) != 0 {
			t.Errorf("user %d: synthetic history must be empty", tt.userID)
		}
	}
}

func TestProfile_HasInterestAndVisited(t *testing.T) {
	p := Profile{
		UserID:    5,
		Interests: []activity.Category{activity.Wellness},
		History:   []int64{3, 8},
	}

	if !p.HasInterest(activity.Wellness) {
		t.Error("expected interest in WELLNESS")
	}
	if p.HasInterest(activity.Adventure) {
		t.Error("unexpected interest in ADVENTURE")
	}
	if !p.HasVisited(8) {
		t.Error("expected id 8 in history")
	}
	if p.HasVisited(4) {
		t.Error("unexpected id 4 in history")
	}
}
