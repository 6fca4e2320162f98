package valuetype

import (
	"fmt"
)

// ValidateFloat takes a float64 value.
// It returns the value unchanged and its SHA3-256 hash; the error is always nil.
func ValidateFloat(value float64) (float64, string, error) {
	return value, GenerateSHA3256(fmt.Sprint(value)), nil
}
