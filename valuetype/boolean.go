package valuetype

import (
	"fmt"
)

// ValidateBoolean generates a SHA3-256 hash of the given boolean.
// Returns the value unchanged and the SHA3-256 hash of the value; the error is always nil.
func ValidateBoolean(value bool) (bool, string, error) {
	return value, GenerateSHA3256(fmt.Sprint(value)), nil
}
