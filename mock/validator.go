package mock

import "github.com/fwojciec/postcheck"

var _ postcheck.PostValidator = (*PostValidator)(nil)

// PostValidator is a mock implementation of postcheck.PostValidator.
type PostValidator struct {
	ValidateFn func(title, content string) *postcheck.Report
}

func (v *PostValidator) Validate(title, content string) *postcheck.Report {
	return v.ValidateFn(title, content)
}
