package postcheck

import "strings"

// KeywordSet is an immutable, ordered set of lowercase phrases matched by
// substring containment.
type KeywordSet struct {
	phrases []string
}

// NewKeywordSet returns a set of the given phrases, lowercased, with
// duplicates and blank entries dropped. Order of first occurrence is kept.
func NewKeywordSet(phrases ...string) KeywordSet {
	seen := make(map[string]bool, len(phrases))
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(p)
		if strings.TrimSpace(p) == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return KeywordSet{phrases: out}
}

// Len returns the number of phrases in the set.
func (k KeywordSet) Len() int {
	return len(k.phrases)
}

// Phrases returns a copy of the phrases in set order.
func (k KeywordSet) Phrases() []string {
	out := make([]string, len(k.phrases))
	copy(out, k.phrases)
	return out
}

// Matches returns every phrase contained in text, compared case-insensitively,
// in set order.
func (k KeywordSet) Matches(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, p := range k.phrases {
		if strings.Contains(lower, p) {
			found = append(found, p)
		}
	}
	return found
}

// DefaultSpamKeywords returns the phrases that flag a post as spam-like.
func DefaultSpamKeywords() KeywordSet {
	return NewKeywordSet(
		"click here", "buy now", "limited time", "act now", "don't miss",
		"free money", "guaranteed", "no risk", "make money fast", "work from home",
		"dm for details", "contact me privately", "message me", "dm me",
		"click link", "visit now", "order now", "shop now", "subscribe now",
		"earn money", "make cash", "quick money", "easy money", "free cash",
		"secret revealed", "shocking", "unbelievable", "exposed",
		"you won", "you've won", "congratulations", "claim prize",
		"verify account", "confirm identity", "update payment",
		"bitcoin", "cryptocurrency", "forex", "mlm", "network marketing",
		"weight loss", "diet pills", "miracle cure", "lose weight fast",
		"dating", "singles", "meet women", "hot singles",
		"click to see", "see what happens", "you won't believe",
		"urgent action required", "act immediately", "before it's gone",
	)
}
