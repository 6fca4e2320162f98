package valuetype

import (
	"fmt"
	"regexp"
)

// ValidateRegEx checks that value fully matches pattern, returning a descriptive
// error when it does not. Each Validate* function in this package owns its
// pattern literal, so compilation happens once per call rather than being
// cached here.
func ValidateRegEx(pattern, value string) error {
	matched, err := regexp.MatchString(pattern, value)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	if !matched {
		return fmt.Errorf("value does not match %s: %v", pattern, value)
	}
	return nil
}
