package store_test

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dropDatabas3/learnhub/internal/store"
)

func validPayment() store.Payment {
	return store.Payment{
		UserID:          "u1",
		Items:           []store.PaymentItem{{CourseID: bson.NewObjectID(), Amount: 49.99, Currency: "USD"}},
		TotalAmount:     49.99,
		Currency:        "USD",
		Provider:        store.PayStripe,
		PaymentIntentID: "pi_123",
		Status:          store.PaymentSucceeded,
		Type:            store.PaymentOneTime,
	}
}

func TestPayment_Validate(t *testing.T) {
	p := validPayment()
	if err := p.Validate(); err != nil {
		t.Fatalf("valid payment rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*store.Payment)
	}{
		{"missing user", func(p *store.Payment) { p.UserID = "" }},
		{"no items", func(p *store.Payment) { p.Items = nil }},
		{"negative total", func(p *store.Payment) { p.TotalAmount = -1 }},
		{"missing intent id", func(p *store.Payment) { p.PaymentIntentID = "" }},
		{"unknown provider", func(p *store.Payment) { p.Provider = "cash" }},
		{"unknown type", func(p *store.Payment) { p.Type = "installments" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPayment()
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestPayment_RefundedTotal(t *testing.T) {
	p := validPayment()
	if got := p.RefundedTotal(); got != 0 {
		t.Fatalf("refunded total = %v, want 0", got)
	}

	now := time.Now()
	p.Refunds = []store.Refund{
		{Amount: 10, Reason: "partial", ProcessedAt: now},
		{Amount: 5.5, ProcessedAt: now},
	}
	if got := p.RefundedTotal(); got != 15.5 {
		t.Fatalf("refunded total = %v, want 15.5", got)
	}
}

func TestUser_HasProvider(t *testing.T) {
	u := store.User{Providers: []store.ProviderLink{
		{Provider: "github", ProviderID: "42"},
	}}

	if !u.HasProvider("github", "42") {
		t.Fatal("linked provider not found")
	}
	if u.HasProvider("github", "43") || u.HasProvider("google", "42") {
		t.Fatal("unlinked identity matched")
	}
}
