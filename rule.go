package postcheck

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Thresholds used by DefaultRules.
const (
	TitleMinLength   = 10
	TitleMaxLength   = 300
	ContentMinLength = 50

	// MaxCapitalRatio is the share of A-Z letters in a title at which it reads as shouting.
	MaxCapitalRatio = 0.3

	// Content passes the spacing rule with more words than SpacingWordCount,
	// and is exempt from it up to SpacingExemptLength characters.
	SpacingWordCount    = 100
	SpacingExemptLength = 200

	MaxLinks = 5

	// MaxListedKeywords caps how many matched spam phrases a message names.
	MaxListedKeywords = 3
)

var (
	punctuationRunRe = regexp.MustCompile(`[!?]{2,}|\.{2,}`)
	linkRe           = regexp.MustCompile(`https?://|www\.`)
)

// Rule is a single named check run against a post.
// Check must not panic and must return a result for every input.
type Rule struct {
	Name  string
	Check func(p Post) CheckResult
}

// RuleSet is an ordered list of rules. Reports list results in this order.
type RuleSet []Rule

// DefaultRules returns the standard eight rules, using keywords for spam detection.
func DefaultRules(keywords KeywordSet) RuleSet {
	return RuleSet{
		TitleMinLengthRule(TitleMinLength),
		TitleMaxLengthRule(TitleMaxLength),
		ContentMinLengthRule(ContentMinLength),
		CapitalRatioRule(MaxCapitalRatio),
		PunctuationRule(),
		SpamKeywordRule(keywords, MaxListedKeywords),
		ParagraphSpacingRule(SpacingWordCount, SpacingExemptLength),
		LinkCountRule(MaxLinks),
	}
}

// Names returns the rule names in order.
func (s RuleSet) Names() []string {
	names := make([]string, len(s))
	for i, r := range s {
		names[i] = r.Name
	}
	return names
}

// TitleMinLengthRule fails titles shorter than limit characters.
func TitleMinLengthRule(limit int) Rule {
	const name = "Title minimum length"
	return Rule{Name: name, Check: func(p Post) CheckResult {
		n := charCount(p.Title)
		if n >= limit {
			return pass(name, "Title length OK (%d characters)", n)
		}
		return fail(name, "Title too short (%d/%d characters)", n, limit)
	}}
}

// TitleMaxLengthRule fails titles longer than limit characters.
func TitleMaxLengthRule(limit int) Rule {
	const name = "Title maximum length"
	return Rule{Name: name, Check: func(p Post) CheckResult {
		n := charCount(p.Title)
		if n <= limit {
			return pass(name, "Title within length limit")
		}
		return fail(name, "Title too long (%d/%d characters)", n, limit)
	}}
}

// ContentMinLengthRule fails content shorter than limit characters.
func ContentMinLengthRule(limit int) Rule {
	const name = "Content minimum length"
	return Rule{Name: name, Check: func(p Post) CheckResult {
		n := charCount(p.Content)
		if n >= limit {
			return pass(name, "Content length OK (%d characters)", n)
		}
		return fail(name, "Content too short (%d/%d characters)", n, limit)
	}}
}

// CapitalRatioRule warns when the share of A-Z letters in the title reaches
// threshold. An empty title passes; the length rules already reject it.
func CapitalRatioRule(threshold float64) Rule {
	const name = "Avoid excessive ALL CAPS"
	return Rule{Name: name, Check: func(p Post) CheckResult {
		n := charCount(p.Title)
		if n == 0 {
			return pass(name, "Title capitalization appropriate")
		}
		ratio := float64(countUpper(p.Title)) / float64(n)
		if ratio < threshold {
			return pass(name, "Title capitalization appropriate")
		}
		return warn(name, "Excessive capitals in title (%.1f%%)", ratio*100)
	}}
}

// PunctuationRule warns when the title contains runs like "!!", "?!" or "...".
func PunctuationRule() Rule {
	const name = "Avoid excessive punctuation"
	return Rule{Name: name, Check: func(p Post) CheckResult {
		if len(punctuationRunRe.FindAllStringIndex(p.Title, -1)) == 0 {
			return pass(name, "No excessive punctuation")
		}
		return warn(name, "Excessive punctuation detected")
	}}
}

// SpamKeywordRule warns when title or content contains any phrase from
// keywords. The message names at most listed matches.
func SpamKeywordRule(keywords KeywordSet, listed int) Rule {
	const name = "No spam keywords"
	return Rule{Name: name, Check: func(p Post) CheckResult {
		found := keywords.Matches(p.Title + " " + p.Content)
		if len(found) == 0 {
			return pass(name, "No spam keywords detected")
		}
		shown := found
		if len(shown) > listed {
			shown = shown[:listed]
		}
		return warn(name, "Spam keywords found (%d): %s", len(found), strings.Join(shown, ", "))
	}}
}

// ParagraphSpacingRule passes content that has a blank line or more than
// words words. Otherwise content longer than exemptLength characters gets a
// warning and shorter content passes.
func ParagraphSpacingRule(words, exemptLength int) Rule {
	const name = "Proper paragraph spacing"
	return Rule{Name: name, Check: func(p Post) CheckResult {
		if strings.Contains(p.Content, "\n\n") || len(strings.Fields(p.Content)) > words {
			return pass(name, "Content appears well-formatted")
		}
		if charCount(p.Content) > exemptLength {
			return warn(name, "Consider adding paragraph breaks")
		}
		return pass(name, "Length too short to require breaks")
	}}
}

// LinkCountRule warns when content holds more than limit links.
func LinkCountRule(limit int) Rule {
	const name = "Excessive links"
	return Rule{Name: name, Check: func(p Post) CheckResult {
		n := len(linkRe.FindAllStringIndex(p.Content, -1))
		if n <= limit {
			return pass(name, "Link count appropriate (%d links)", n)
		}
		return warn(name, "Many links detected (%d)", n)
	}}
}

func pass(rule, format string, args ...any) CheckResult {
	return CheckResult{Rule: rule, Status: StatusPass, Message: fmt.Sprintf(format, args...)}
}

func warn(rule, format string, args ...any) CheckResult {
	return CheckResult{Rule: rule, Status: StatusWarning, Message: fmt.Sprintf(format, args...)}
}

func fail(rule, format string, args ...any) CheckResult {
	return CheckResult{Rule: rule, Status: StatusFail, Message: fmt.Sprintf(format, args...)}
}

// charCount counts characters as Unicode code points.
func charCount(s string) int {
	return utf8.RuneCountInString(s)
}

// countUpper counts ASCII capital letters only.
func countUpper(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			n++
		}
	}
	return n
}
