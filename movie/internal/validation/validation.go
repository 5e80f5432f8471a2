// Package validation checks movie records before they reach the repository.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/mkvy/videoclub/movie/pkg/model"
)

// MaxTitleLength is the maximum number of characters allowed in a movie title.
const MaxTitleLength = 100

const (
	MsgIDNotPositive = "Id must be a positive integer."
	MsgTitleRequired = "Title is required."
	MsgTitleTooLong  = "Title cannot exceed 100 characters."
)

// Rule is a single check applied to a movie. Check reports whether the movie passes.
type Rule struct {
	Check   func(m *model.Movie) bool
	Message string
}

// Rules returns the default movie rules in evaluation order.
func Rules() []Rule {
	return []Rule{
		{Check: idPositive, Message: MsgIDNotPositive},
		{Check: titlePresent, Message: MsgTitleRequired},
		{Check: titleWithinLimit, Message: MsgTitleTooLong},
	}
}

// Validate checks m against the default rules and returns every violation message.
// An empty result means the movie is valid.
func Validate(m *model.Movie) []string {
	return ValidateWith(m, Rules()...)
}

// ValidateWith checks m against the given rules without stopping at the first failure.
func ValidateWith(m *model.Movie, rules ...Rule) []string {
	var violations []string
	for _, r := range rules {
		if !r.Check(m) {
			violations = append(violations, r.Message)
		}
	}
	return violations
}

func idPositive(m *model.Movie) bool {
	return m.ID >= 1
}

func titlePresent(m *model.Movie) bool {
	return strings.TrimSpace(m.Title) != ""
}

func titleWithinLimit(m *model.Movie) bool {
	return utf8.RuneCountInString(m.Title) <= MaxTitleLength
}
