package activity

import "testing"

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		actName  string
		price    float64
		capacity int
		slots    int
		category Category
		wantErr  bool
	}{
		{"valid", 1, "Spa Day", 50, 10, 5, Wellness, false},
		{"valid untagged", 2, "Mystery", 0, 10, 10, "", false},
		{"zero id", 0, "Spa Day", 50, 10, 5, Wellness, true},
		{"negative id", -3, "Spa Day", 50, 10, 5, Wellness, true},
		{"missing name", 1, "", 50, 10, 5, Wellness, true},
		{"negative price", 1, "Spa Day", -1, 10, 5, Wellness, true},
		{"slots above capacity", 1, "Spa Day", 50, 10, 11, Wellness, true},
		{"negative slots", 1, "Spa Day", 50, 10, -1, Wellness, true},
		{"bogus category", 1, "Spa Day", 50, 10, 5, Category("SHOPPING"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, tt.actName, "desc", tt.category, tt.price, tt.capacity, tt.slots, "", "", 4.5, 1, "hotel")
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAvailabilityRatio(t *testing.T) {
	a, err := New(1, "Spa", "", Wellness, 50, 10, 5, "", "", 4.5, 1, "")
	if err != nil {
		t.Fatal(err)
	}
	if got := a.AvailabilityRatio(); got != 0.5 {
		t.Errorf("ratio = %g, want 0.5", got)
	}

	// Zero capacity must not divide by zero.
	b, err := New(2, "Full", "", Wellness, 50, 0, 0, "", "", 4.5, 1, "")
	if err != nil {
		t.Fatal(err)
	}
	if got := b.AvailabilityRatio(); got != 0 {
		t.Errorf("zero-capacity ratio = %g, want 0", got)
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	tests := []struct {
		name        string
		actName     string
		description string
		want        Category
	}{
		{"wellness keyword", "Thai Massage", "relaxing treatment", Wellness},
		{"culinary keyword", "Thai Cooking Class", "learn from a chef", Culinary},
		{"adventure keyword", "Muay Thai Match", "ringside seats", Adventure},
		{"cultural keyword", "Grand Palace Visit", "historical landmark", Cultural},
		{"entertainment keyword", "Cabaret Show", "evening performance", Entertainment},
		// WELLNESS outranks CULINARY when both match.
		{"wellness beats culinary", "Spa and Dinner", "food after your massage", Wellness},
		// CULTURAL outranks ENTERTAINMENT.
		{"cultural beats entertainment", "Temple Night Walk", "evening tour", Cultural},
		{"no keyword falls back to cultural", "Morning Stroll", "a quiet walk", Cultural},
		{"case insensitive", "YOGA Retreat", "", Wellness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.actName, tt.description); got != tt.want {
				t.Errorf("Classify(%q, %q) = %s, want %s", tt.actName, tt.description, got, tt.want)
			}
		})
	}
}

func TestResolve_PrefersExplicitTag(t *testing.T) {
	a, err := New(1, "Spa Day", "massage and sauna", Entertainment, 50, 10, 5, "", "", 4.5, 1, "")
	if err != nil {
		t.Fatal(err)
	}
	if got := Resolve(a); got != Entertainment {
		t.Errorf("Resolve() = %s, want explicit tag ENTERTAINMENT", got)
	}

	untagged := a.WithCategory("")
	if got := Resolve(untagged); got != Wellness {
		t.Errorf("Resolve() = %s, want classified WELLNESS", got)
	}
}
