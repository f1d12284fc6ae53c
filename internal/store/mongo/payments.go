package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dropDatabas3/learnhub/internal/store"
)

// PaymentRepo implements store.PaymentStore.
type PaymentRepo struct {
	coll *mongo.Collection
}

func (r *PaymentRepo) Create(ctx context.Context, p *store.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = store.PaymentPending
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// ListByUser returns the user's payment history, newest first. Backed by
// the (userId, createdAt desc) compound index.
func (r *PaymentRepo) ListByUser(ctx context.Context, userID string) ([]store.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	payments := []store.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
