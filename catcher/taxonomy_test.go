package catcher

import "testing"

func TestTaxonomySeverities(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *SdkError
		expected string
	}{
		{"validation", func() *SdkError { return ValidationError("bad model", nil, nil) }, "WARNING"},
		{"bad request", func() *SdkError { return BadRequest("bad envelope", nil, nil) }, "WARNING"},
		{"not found", func() *SdkError { return NotFound("no such model", nil, nil) }, "WARNING"},
		{"io error", func() *SdkError { return IOError("backend unreachable", nil, nil) }, "CRITICAL"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.build()
			if err == nil {
				t.Fatal("expected an SdkError")
			}
			if err.Severity != test.expected {
				t.Errorf("expected severity %s, got %s", test.expected, err.Severity)
			}
		})
	}
}

func TestTaxonomyPreservesCallerStatus(t *testing.T) {
	err := NotFound("no such model", nil, map[string]any{"status": 410})
	if err.Args["status"] != 410 {
		t.Errorf("expected caller-supplied status to win, got %v", err.Args["status"])
	}
	if err.Severity != "WARNING" {
		t.Errorf("expected severity WARNING for status 410, got %s", err.Severity)
	}
}
