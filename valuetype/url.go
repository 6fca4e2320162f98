package valuetype

import (
	"net/url"
	"strings"
)

// ValidateURL validates a given URL string and returns the URL with its scheme and host lowercased, and its SHA3-256 hash.
// If url.ParseRequestURI rejects the value, it returns that error.
func ValidateURL(value string) (string, string, error) {
	tmp, err := url.ParseRequestURI(value)
	if err != nil {
		return "", "", err
	}
	tmp.Host = strings.ToLower(tmp.Host)
	tmp.Scheme = strings.ToLower(tmp.Scheme)

	surl := tmp.String()
	return surl, GenerateSHA3256(surl), nil
}
