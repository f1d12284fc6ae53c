package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dropDatabas3/learnhub/internal/store"
)

// CourseRepo implements store.CourseStore.
type CourseRepo struct {
	coll *mongo.Collection
}

// Create validates, derives the slug and inserts.
func (r *CourseRepo) Create(ctx context.Context, c *store.Course) error {
	c.EnsureSlug()
	if err := c.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Currency == "" {
		c.Currency = "USD"
	}
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

// ListPublished returns the public catalog, newest first. category is an
// optional filter.
func (r *CourseRepo) ListPublished(ctx context.Context, category string, limit, offset int) ([]store.Course, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	filter := bson.M{"isPublished": true}
	if category != "" {
		filter["categories"] = category
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "publishedAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	courses := []store.Course{}
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepo) FindBySlug(ctx context.Context, slug string) (*store.Course, error) {
	var c store.Course
	err := r.coll.FindOne(ctx, bson.M{"slug": slug, "isPublished": true}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
