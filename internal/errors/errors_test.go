package errors

import "testing"

func TestValidationError(t *testing.T) {
	err := NewValidationError("view model must not be nil").WithField("viewModel")

	if !IsValidation(err) {
		t.Error("IsValidation should be true")
	}
	if IsPrecondition(err) {
		t.Error("IsPrecondition should be false")
	}
	if !Is(err, ErrInvalidInput) {
		t.Error("validation errors should match ErrInvalidInput")
	}

	msg := err.Error()
	if msg == "" || msg == "view model must not be nil" {
		t.Errorf("message should carry the field context, got %q", msg)
	}
}

func TestValidationErrorWithValue(t *testing.T) {
	err := NewValidationError("region name must not be blank").
		WithField("regionName").
		WithValue("   ")

	var v *ValidationError
	if !As(err, &v) {
		t.Fatal("As should extract *ValidationError")
	}
	if v.Field != "regionName" {
		t.Errorf("Field = %q, want regionName", v.Field)
	}
}

func TestPreconditionError(t *testing.T) {
	err := NewPreconditionError("view model must be shown at least once", ErrNotActivated).
		WithOperation("Deactivate").
		WithViewModel(42)

	if !IsPrecondition(err) {
		t.Error("IsPrecondition should be true")
	}
	if !Is(err, ErrNotActivated) {
		t.Error("should match the ErrNotActivated sentinel")
	}
	if Is(err, ErrSelfParent) {
		t.Error("should not match an unrelated sentinel")
	}

	var p *PreconditionError
	if !As(err, &p) {
		t.Fatal("As should extract *PreconditionError")
	}
	if p.ViewModelID != 42 {
		t.Errorf("ViewModelID = %d, want 42", p.ViewModelID)
	}
	if p.Operation != "Deactivate" {
		t.Errorf("Operation = %q, want Deactivate", p.Operation)
	}
}

func TestPreconditionErrorSelfParent(t *testing.T) {
	err := NewPreconditionError("cannot activate into itself", ErrSelfParent)

	if !Is(err, ErrSelfParent) {
		t.Error("should match ErrSelfParent")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("region", "Main")

	want := "region 'Main' not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := err.WithCause(ErrRegionNotFound)
	if !Is(wrapped, ErrRegionNotFound) {
		t.Error("should match the wrapped cause")
	}
}

func TestClassificationNil(t *testing.T) {
	if IsValidation(nil) {
		t.Error("IsValidation(nil) should be false")
	}
	if IsPrecondition(nil) {
		t.Error("IsPrecondition(nil) should be false")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}

	err := Wrap(ErrNotActivated, "deactivate failed")
	if !Is(err, ErrNotActivated) {
		t.Error("wrapped error should match sentinel")
	}

	err = Wrapf(ErrRegionNotFound, "region %q", "Main")
	if !Is(err, ErrRegionNotFound) {
		t.Error("Wrapf result should match sentinel")
	}
}
