package activity

import "strings"

// classificationRule maps a category to the keywords that select it.
type classificationRule struct {
	category Category
	keywords []string
}

// classificationRules is the ordered keyword table for untagged activities.
// Rules are tested top-down and the first hit wins, so a spa-themed food tour
// classifies as WELLNESS. Order is a policy contract: WELLNESS, CULINARY,
// ADVENTURE, CULTURAL, ENTERTAINMENT.
var classificationRules = []classificationRule{
	{Wellness, []string{"massage", "spa", "wellness", "relax", "therapy", "yoga", "traditional thai massage"}},
	{Culinary, []string{"cooking", "food", "taste", "cuisine", "chef", "restaurant"}},
	{Adventure, []string{"muay thai", "boxing", "sport", "adventure", "exciting", "match"}},
	{Cultural, []string{"temple", "tour", "historical", "culture", "tradition", "palace", "floating market"}},
	{Entertainment, []string{"show", "performance", "entertainment", "night", "music"}},
}

// Classify buckets an activity into a category by keyword matching over its
// name and description. Activities matching no rule fall back to CULTURAL:
// the default bucket is a real category, not an "unknown" marker.
func Classify(name, description string) Category {
	text := strings.ToLower(name + " " + description)
	for _, rule := range classificationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return Cultural
}

// Resolve returns the activity's own category when tagged, otherwise the
// keyword classification of its name and description.
func Resolve(a Activity) Category {
	if c := a.Category(); c.IsValid() {
		return c
	}
	return Classify(a.Name(), a.Description())
}
