package validation

import (
	"errors"
	"testing"
)

type form struct {
	PetID   string `json:"petId" validate:"required"`
	Service string `json:"service" validate:"required"`
	Notes   string
}

func TestFirstField_UsesJSONNameInDeclarationOrder(t *testing.T) {
	err := New().Struct(form{})
	field, tag, ok := FirstField(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if field != "petId" || tag != "required" {
		t.Fatalf("expected petId/required, got %s/%s", field, tag)
	}

	err = New().Struct(form{PetID: "p1"})
	if field, _, _ := FirstField(err); field != "service" {
		t.Fatalf("expected service, got %s", field)
	}
}

func TestFirstField_NotAValidationError(t *testing.T) {
	if _, _, ok := FirstField(errors.New("boom")); ok {
		t.Fatal("expected ok=false for plain errors")
	}
	if _, _, ok := FirstField(nil); ok {
		t.Fatal("expected ok=false for nil")
	}
}
