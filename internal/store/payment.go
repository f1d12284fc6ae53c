package store

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Payment providers.
const (
	PayStripe   = "stripe"
	PayPaypal   = "paypal"
	PayRazorpay = "razorpay"
)

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentSucceeded = "succeeded"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Payment types.
const (
	PaymentOneTime      = "one_time"
	PaymentSubscription = "subscription"
)

// PaymentItem is one course line in a payment.
type PaymentItem struct {
	CourseID bson.ObjectID `bson:"courseId" json:"courseId"`
	Amount   float64       `bson:"amount" json:"amount"`
	Currency string        `bson:"currency" json:"currency"`
}

// Refund records one (possibly partial) refund against a payment.
type Refund struct {
	Amount      float64   `bson:"amount" json:"amount"`
	Reason      string    `bson:"reason,omitempty" json:"reason,omitempty"`
	ProcessedAt time.Time `bson:"processedAt" json:"processedAt"`
}

// Payment is a checkout transaction. PaymentIntentID is the external
// processor's id and is unique across the collection.
type Payment struct {
	ID              bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID          string         `bson:"userId" json:"userId"`
	Items           []PaymentItem  `bson:"items" json:"items"`
	TotalAmount     float64        `bson:"totalAmount" json:"totalAmount"`
	Currency        string         `bson:"currency" json:"currency"`
	Provider        string         `bson:"provider" json:"provider"`
	PaymentIntentID string         `bson:"paymentIntentId" json:"paymentIntentId"`
	Status          string         `bson:"status" json:"status"`
	Type            string         `bson:"type" json:"type"`
	Refunds         []Refund       `bson:"refunds,omitempty" json:"refunds,omitempty"`
	Metadata        map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt       time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the structural invariants before insert.
func (p *Payment) Validate() error {
	if p.UserID == "" {
		return errors.New("payment: userId is required")
	}
	if len(p.Items) == 0 {
		return errors.New("payment: at least one item is required")
	}
	if p.TotalAmount < 0 {
		return errors.New("payment: total must not be negative")
	}
	if p.PaymentIntentID == "" {
		return errors.New("payment: paymentIntentId is required")
	}
	switch p.Provider {
	case PayStripe, PayPaypal, PayRazorpay:
	default:
		return errors.New("payment: unknown provider")
	}
	switch p.Type {
	case PaymentOneTime, PaymentSubscription:
	default:
		return errors.New("payment: unknown type")
	}
	return nil
}

// RefundedTotal sums all processed refunds.
func (p *Payment) RefundedTotal() float64 {
	var total float64
	for _, r := range p.Refunds {
		total += r.Amount
	}
	return total
}
