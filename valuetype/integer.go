package valuetype

// ValidateInteger takes an int64 value and returns it unchanged with its
// SHA3-256 hash; the error is always nil.
func ValidateInteger(value int64) (int64, string, error) {
	return value, GenerateSHA3256(value), nil
}
