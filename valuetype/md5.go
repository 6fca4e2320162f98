package valuetype

import (
	"strings"
)

// ValidateMD5 validates if a given string is a valid MD5 hash (32 hex characters, or the 16-character form).
// It receives a string and returns the lowercased string, its SHA3-256 hash and an error.
func ValidateMD5(value string) (string, string, error) {
	v := strings.ToLower(value)

	if len([]rune(v)) == 32 {
		e := ValidateRegEx(`^[0-9a-f]{32}$`, v)
		if e != nil {
			return "", "", e
		}
	} else {
		e := ValidateRegEx(`^[0-9a-f]{16}$`, v)
		if e != nil {
			return "", "", e
		}
	}

	return v, GenerateSHA3256(v), nil
}
