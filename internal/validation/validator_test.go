package validation

import "testing"

type customerFields struct {
	Name  string `validate:"required,max=100"`
	Email string `validate:"required,email,max=255"`
	Phone string `validate:"required,max=20"`
}

func TestCustomerEmailValidation(t *testing.T) {
	val := New()

	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"jane@example.com", true},
		{"not-an-email", false},
		{"", false},
	}

	for _, c := range cases {
		err := val.Struct(customerFields{Name: "Jane Doe", Email: c.email, Phone: "0400000000"})
		if c.valid && err != nil {
			t.Fatalf("expected %q to be valid, got %v", c.email, err)
		}
		if !c.valid && err == nil {
			t.Fatalf("expected %q to be rejected", c.email)
		}
	}
}

func TestCustomRules(t *testing.T) {
	val := New()

	type slotFields struct {
		Therapist string `validate:"required,therapist"`
		Date      string `validate:"required,date"`
		Start     string `validate:"required,clock"`
		Period    string `validate:"omitempty,period"`
	}

	ok := slotFields{Therapist: "brett", Date: "2025-06-10", Start: "09:00", Period: "morning"}
	if err := val.Struct(ok); err != nil {
		t.Fatalf("expected valid fields, got %v", err)
	}

	bad := []slotFields{
		{Therapist: "nobody", Date: "2025-06-10", Start: "09:00"},
		{Therapist: "brett", Date: "10/06/2025", Start: "09:00"},
		{Therapist: "brett", Date: "2025-06-10", Start: "9am"},
		{Therapist: "brett", Date: "2025-06-10", Start: "09:00", Period: "midnight"},
	}
	for i, b := range bad {
		if err := val.Struct(b); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}
