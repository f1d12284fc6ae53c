package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dropDatabas3/learnhub/internal/store"
)

// UserRepo implements store.UserStore.
type UserRepo struct {
	coll *mongo.Collection
}

func providerFilter(provider, providerID string) bson.M {
	return bson.M{"providers": bson.M{"$elemMatch": bson.M{
		"provider":   provider,
		"providerId": providerID,
	}}}
}

// FindOrCreate resolves or provisions the user owning nu.Link in a single
// upsert. Two concurrent first logins race on the unique provider index;
// the loser's retry then finds the winner's document, so exactly one user
// exists per identity.
func (r *UserRepo) FindOrCreate(ctx context.Context, nu store.NewSocialUser) (*store.User, error) {
	now := time.Now().UTC()

	insert := bson.M{
		"_id":             uuid.NewString(),
		"name":            nu.Name,
		"role":            store.RoleStudent,
		"enrolledCourses": []string{},
		"createdCourses":  []string{},
		"wishlist":        []string{},
		"socialLinks":     []store.SocialLink{},
		"settings":        store.DefaultSettings(),
		"providers":       []store.ProviderLink{nu.Link},
		"isDeleted":       false,
		"createdAt":       now,
	}
	// email is a sparse unique index: only set it when we actually have one
	if nu.Email != "" {
		insert["email"] = nu.Email
	}
	if nu.Avatar != "" {
		insert["avatar"] = nu.Avatar
	}

	update := bson.M{
		"$setOnInsert": insert,
		"$set":         bson.M{"updatedAt": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var u store.User
	err := r.coll.FindOneAndUpdate(ctx, providerFilter(nu.Link.Provider, nu.Link.ProviderID), update, opts).Decode(&u)
	if mongo.IsDuplicateKeyError(err) {
		// lost the upsert race; the document exists now
		return r.FindByProvider(ctx, nu.Link.Provider, nu.Link.ProviderID)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByProvider(ctx context.Context, provider, providerID string) (*store.User, error) {
	var u store.User
	err := r.coll.FindOne(ctx, providerFilter(provider, providerID)).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*store.User, error) {
	var u store.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "isDeleted": false}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SoftDelete flags the user deleted without dropping the document, so
// payment history keeps a valid owner reference.
func (r *UserRepo) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"isDeleted": true, "deletedAt": now, "updatedAt": now},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
