package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

type identityProbe struct {
	ID string `validate:"required,identity"`
}

type priceProbe struct {
	Price float64 `validate:"required,gt=0,dec2"`
}

func TestIdentityValidator(t *testing.T) {
	cv := NewValidator()

	valid := []string{"alice-7f3k2", "price-oracle", "a1b2c", "x2345678901234567890123456789012345678901234567890123456789012"}
	for _, id := range valid {
		if err := cv.Validate(&identityProbe{ID: id}); err != nil {
			t.Errorf("%q rejected: %v", id, err)
		}
	}

	invalid := []string{"", "abc", "UPPER-case1", "-leading-dash", "has space x", "ünïcode-123"}
	for _, id := range invalid {
		if err := cv.Validate(&identityProbe{ID: id}); err == nil {
			t.Errorf("%q accepted", id)
		}
	}
}

func TestDec2Validator(t *testing.T) {
	cv := NewValidator()

	for _, p := range []float64{45000, 45000.5, 45000.55, 0.01} {
		if err := cv.Validate(&priceProbe{Price: p}); err != nil {
			t.Errorf("%v rejected: %v", p, err)
		}
	}
	for _, p := range []float64{45000.123, 0.001} {
		if err := cv.Validate(&priceProbe{Price: p}); err == nil {
			t.Errorf("%v accepted", p)
		}
	}
}

func TestToFieldErrors_MapsKnownTags(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&identityProbe{ID: "NOPE"})
	if err == nil {
		t.Fatal("want validation error")
	}
	details := ToFieldErrors(err)
	if !containsFieldMsg(details, "ID", "valid caller identity") {
		t.Fatalf("details = %+v", details)
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	details := ToFieldErrors(errors.New("plain failure"))
	if len(details) != 1 || details[0].Field != "_" || details[0].Message != "plain failure" {
		t.Fatalf("details = %+v", details)
	}
}
