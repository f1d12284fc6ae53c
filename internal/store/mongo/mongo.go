// Package mongo implements the store contracts on MongoDB.
//
// The duplicate-user guard for concurrent first logins lives here: a
// unique compound index over (providers.provider, providers.providerId)
// plus an upsert makes find-or-create atomic per identity.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	collUsers    = "users"
	collCourses  = "courses"
	collPayments = "payments"
	collVideos   = "videos"
	collPDFs     = "pdfs"
)

// Store owns the client and exposes the per-collection repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	Users    *UserRepo
	Courses  *CourseRepo
	Payments *PaymentRepo
	Content  *ContentRepo
}

// Connect dials the deployment and prepares the repositories. The
// connection is verified with a ping so a bad URI fails at startup.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetTimeout(10 * time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	db := client.Database(database)
	s := &Store{
		client:   client,
		db:       db,
		Users:    &UserRepo{coll: db.Collection(collUsers)},
		Courses:  &CourseRepo{coll: db.Collection(collCourses)},
		Payments: &PaymentRepo{coll: db.Collection(collPayments)},
		Content: &ContentRepo{
			videos: db.Collection(collVideos),
			pdfs:   db.Collection(collPDFs),
		},
	}
	return s, nil
}

// EnsureIndexes creates every index the repositories rely on. Safe to call
// on every boot; Mongo treats existing identical indexes as a no-op.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(collUsers).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// the find-or-create guard
			Keys: bson.D{
				{Key: "providers.provider", Value: 1},
				{Key: "providers.providerId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("mongo: users indexes: %w", err)
	}

	_, err = s.db.Collection(collCourses).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "instructorId", Value: 1}}},
		{Keys: bson.D{{Key: "isPublished", Value: 1}}},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}}},
	})
	if err != nil {
		return fmt.Errorf("mongo: courses indexes: %w", err)
	}

	_, err = s.db.Collection(collPayments).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "paymentIntentId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("mongo: payments indexes: %w", err)
	}

	for _, coll := range []string{collVideos, collPDFs} {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "courseId", Value: 1}}},
			{
				Keys:    bson.D{{Key: "url", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		}); err != nil {
			return fmt.Errorf("mongo: %s indexes: %w", coll, err)
		}
	}
	return nil
}

// Ping verifies the deployment is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
