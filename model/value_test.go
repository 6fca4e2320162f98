package model

import (
	"testing"

	"github.com/quantfall/resolution/valuetype"
)

func TestNewValueStringVsNumber(t *testing.T) {
	str, err := NewValue(valuetype.KindString, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	num, err := NewValue(valuetype.KindNumber, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if str.Equal(num) {
		t.Errorf("numeric 1 and string \"1\" must not be equal")
	}
	if str.Serialized == num.Serialized {
		t.Errorf("expected distinct serialized forms, got %q for both", str.Serialized)
	}
}

func TestNewValueRejectsInvalid(t *testing.T) {
	if _, err := NewValue(valuetype.KindEmail, "not-an-email"); err == nil {
		t.Fatal("expected an error for an invalid email value")
	}
}

func TestRuntimeAttributeAddDedups(t *testing.T) {
	attr := &RuntimeAttribute{Name: "name", Type: valuetype.KindString}

	v1, _ := NewValue(valuetype.KindString, "Alice")
	v2, _ := NewValue(valuetype.KindString, "Alice")
	v3, _ := NewValue(valuetype.KindString, "Bob")

	if !attr.Add(v1) {
		t.Error("expected first add to report newly added")
	}
	if attr.Add(v2) {
		t.Error("expected duplicate add to report not newly added")
	}
	if !attr.Add(v3) {
		t.Error("expected distinct value to report newly added")
	}
	if len(attr.Values) != 2 {
		t.Errorf("expected 2 distinct values, got %d", len(attr.Values))
	}
}

func TestRuntimeAttributeNonEmptyValues(t *testing.T) {
	attr := &RuntimeAttribute{Name: "name", Type: valuetype.KindString}
	attr.Values = []Value{
		{Type: valuetype.KindString, Serialized: `"Alice"`, Raw: "Alice"},
		{Type: valuetype.KindString, Serialized: "", Raw: ""},
	}

	got := attr.NonEmptyValues()
	if len(got) != 1 {
		t.Fatalf("expected 1 non-empty value, got %d", len(got))
	}
}
