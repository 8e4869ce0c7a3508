package answer

import "strings"

// Traits are prompt hints derived from the query by keyword matching.
// They are injected into the prompt as extra instructions and never used
// for branching elsewhere.
type Traits struct {
	WantsSuggestions bool
	Interests        []string
}

// suggestionCues mark a query as asking for ideas rather than facts.
var suggestionCues = []string{
	"don't know",
	"dont know",
	"bored",
	"suggest",
	"recommend",
	"help me",
	"what should",
	"any ideas",
}

// interestCategories is the fixed keyword table for interest extraction.
// Order is significant: it fixes the order interests appear in the prompt.
var interestCategories = []struct {
	Name     string
	Keywords []string
}{
	{"fitness", []string{"fitness", "gym", "workout", "exercise", "run", "running", "yoga", "training"}},
	{"food", []string{"food", "eat", "restaurant", "recipe", "cook", "cooking", "meal", "coffee"}},
	{"tech", []string{"tech", "code", "coding", "programming", "software", "app", "computer", "ai"}},
	{"career", []string{"career", "job", "interview", "resume", "work", "promotion", "networking"}},
	{"academia", []string{"study", "exam", "course", "research", "paper", "class", "lecture", "learn"}},
	{"outdoor", []string{"outdoor", "hike", "hiking", "camping", "trail", "nature", "park"}},
	{"places", []string{"place", "places", "visit", "travel", "trip", "museum", "cafe", "bar"}},
}

// Classify derives Traits from a query by case-insensitive keyword
// matching against the fixed tables above. Pure function.
func Classify(query string) Traits {
	q := strings.ToLower(query)

	var traits Traits
	for _, cue := range suggestionCues {
		if strings.Contains(q, cue) {
			traits.WantsSuggestions = true
			break
		}
	}

	for _, cat := range interestCategories {
		for _, kw := range cat.Keywords {
			if strings.Contains(q, kw) {
				traits.Interests = append(traits.Interests, cat.Name)
				break
			}
		}
	}

	return traits
}
