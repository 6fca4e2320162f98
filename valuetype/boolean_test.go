package valuetype

import (
	"testing"
)

func TestValidateBoolean(t *testing.T) {
	cases := []struct {
		name     string
		input    bool
		expected bool
	}{
		{name: "true", input: true, expected: true},
		{name: "false", input: false, expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, hash, err := ValidateBoolean(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if actual != tc.expected {
				t.Errorf("expected %v, but got %v", tc.expected, actual)
			}
			if hash == "" {
				t.Errorf("expected a non-empty hash")
			}
		})
	}
}
