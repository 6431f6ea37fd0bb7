package validation

import (
	"regexp"
	"sync"
)

// Validation rule patterns
var (
	// DefaultEmailPattern restricts accounts to the institutional domains.
	DefaultEmailPattern = `^[a-zA-Z0-9._%+\-]+@(stu\.)?uni-munich\.de$`

	// Password min length
	PasswordMinLength = 6

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 100

	// Rating bounds for mentor rating submissions
	RatingMin = 0.0
	RatingMax = 5.0
)

var (
	emailPatternMu sync.RWMutex
	emailPattern   = regexp.MustCompile(DefaultEmailPattern)
)

// SetEmailPattern replaces the institutional email pattern. Called once at
// startup when the configuration overrides the default.
func SetEmailPattern(pattern string) error {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	emailPatternMu.Lock()
	emailPattern = compiled
	emailPatternMu.Unlock()
	return nil
}

// IsInstitutionalEmail reports whether the email matches the configured
// institutional domain pattern.
func IsInstitutionalEmail(email string) bool {
	emailPatternMu.RLock()
	defer emailPatternMu.RUnlock()
	return emailPattern.MatchString(email)
}

// IsValidRating reports whether a submitted rating is within bounds.
func IsValidRating(rating float64) bool {
	return rating >= RatingMin && rating <= RatingMax
}
