package postcheck

import "math"

// Status is the verdict of a single check.
type Status string

// Status constants for CheckResult.
const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
)

// CheckResult is the outcome of one rule evaluated against a post.
type CheckResult struct {
	Rule    string `json:"rule"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// Passed reports whether the check counts towards the score.
func (r CheckResult) Passed() bool {
	return r.Status == StatusPass
}

// Tier buckets a score for presentation.
type Tier string

// Tier constants returned by Report.Tier.
const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Score thresholds for Tier.
const (
	HighScore   = 80
	MediumScore = 60
)

// Report is the result of validating a post.
// Results are in rule order, not sorted by severity.
type Report struct {
	Results     []CheckResult `json:"results"`
	Score       int           `json:"score"`
	PassCount   int           `json:"passCount"`
	TotalChecks int           `json:"totalChecks"`
}

// Tier maps the score to a presentation tier.
func (r *Report) Tier() Tier {
	switch {
	case r.Score >= HighScore:
		return TierHigh
	case r.Score >= MediumScore:
		return TierMedium
	}
	return TierLow
}

// Score returns round(passed / total * 100), or 0 when total is zero.
func Score(passed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}

// PostValidator scores a title and content pair.
type PostValidator interface {
	// Validate runs every rule and returns a fresh report.
	// Inputs are used as given; callers trim them beforehand.
	Validate(title, content string) *Report
}
