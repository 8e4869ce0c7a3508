package answer

import (
	"reflect"
	"testing"
)

func TestClassify_WantsSuggestions(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"I don't know what to do today", true},
		{"i'm bored", true},
		{"suggest something fun", true},
		{"can you recommend a restaurant", true},
		{"help me plan my week", true},
		{"what should I cook", true},
		{"what fitness content do I have", false},
		{"show my saved links", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Classify(tt.query)
			if got.WantsSuggestions != tt.want {
				t.Errorf("Classify(%q).WantsSuggestions = %v, want %v", tt.query, got.WantsSuggestions, tt.want)
			}
		})
	}
}

func TestClassify_Interests(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"what fitness content do I have", []string{"fitness"}},
		{"best running trail for a hike", []string{"fitness", "outdoor"}},
		{"RECIPE for pasta", []string{"food"}},
		{"interview prep and coding practice", []string{"tech", "career"}},
		{"show everything", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Classify(tt.query)
			if !reflect.DeepEqual(got.Interests, tt.want) {
				t.Errorf("Classify(%q).Interests = %v, want %v", tt.query, got.Interests, tt.want)
			}
		})
	}
}

func TestClassify_IsCaseInsensitive(t *testing.T) {
	got := Classify("SUGGEST a GYM near me")
	if !got.WantsSuggestions {
		t.Error("expected WantsSuggestions for upper-case cue")
	}
	if len(got.Interests) != 1 || got.Interests[0] != "fitness" {
		t.Errorf("expected fitness interest, got %v", got.Interests)
	}
}
