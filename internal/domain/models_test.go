package domain

import "testing"

func TestCheckoutCredentialRoundTrip(t *testing.T) {
	m := &Member{ID: "m1"}

	if m.HasCheckoutCredential() {
		t.Error("fresh member reports a configured credential")
	}
	if m.VerifyCheckoutCredential("anything") {
		t.Error("verification passed with no credential configured")
	}

	if err := m.SetCheckoutCredential("8842"); err != nil {
		t.Fatal(err)
	}
	if !m.HasCheckoutCredential() {
		t.Error("credential not reported as configured")
	}
	if !m.VerifyCheckoutCredential("8842") {
		t.Error("correct checkout password rejected")
	}
	if m.VerifyCheckoutCredential("8843") {
		t.Error("wrong checkout password accepted")
	}
}

func TestMemberBuyer(t *testing.T) {
	m := &Member{ID: "m1", Email: "owner@bistro.example", RestaurantName: "Bistro One"}
	b := m.Buyer()
	if b.ID != "m1" || b.Email != "owner@bistro.example" || b.RestaurantName != "Bistro One" {
		t.Errorf("buyer = %+v", b)
	}
}
