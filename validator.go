package postcheck

// Ensure Validator implements PostValidator at compile time.
var _ PostValidator = (*Validator)(nil)

// Validator runs a fixed rule set against posts.
// Validator holds no mutable state and is safe for concurrent use.
type Validator struct {
	rules RuleSet
}

// NewValidator returns a Validator over a private copy of rules.
func NewValidator(rules RuleSet) *Validator {
	cp := make(RuleSet, len(rules))
	copy(cp, rules)
	return &Validator{rules: cp}
}

// NewDefaultValidator returns a Validator running DefaultRules with DefaultSpamKeywords.
func NewDefaultValidator() *Validator {
	return NewValidator(DefaultRules(DefaultSpamKeywords()))
}

// Rules returns a copy of the rules in evaluation order.
func (v *Validator) Rules() RuleSet {
	cp := make(RuleSet, len(v.rules))
	copy(cp, v.rules)
	return cp
}

// Validate runs every rule in order. Every rule contributes exactly one
// result, so TotalChecks always equals the number of rules.
func (v *Validator) Validate(title, content string) *Report {
	post := Post{Title: title, Content: content}
	report := &Report{
		Results: make([]CheckResult, 0, len(v.rules)),
	}
	for _, rule := range v.rules {
		result := rule.Check(post)
		if result.Rule == "" {
			result.Rule = rule.Name
		}
		report.TotalChecks++
		if result.Passed() {
			report.PassCount++
		}
		report.Results = append(report.Results, result)
	}
	report.Score = Score(report.PassCount, report.TotalChecks)
	return report
}
