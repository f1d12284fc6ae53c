package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dropDatabas3/learnhub/internal/store"
)

// ContentRepo implements store.ContentStore over the videos and pdfs
// collections.
type ContentRepo struct {
	videos *mongo.Collection
	pdfs   *mongo.Collection
}

// AddVideo attaches a video to its course. Used by instructor tooling and
// the seeder, not by the public API.
func (r *ContentRepo) AddVideo(ctx context.Context, v *store.Video) error {
	res, err := r.videos.InsertOne(ctx, v)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		v.ID = oid
	}
	return nil
}

// AddPDF attaches a document to its course.
func (r *ContentRepo) AddPDF(ctx context.Context, p *store.PDF) error {
	res, err := r.pdfs.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *ContentRepo) ListByCourse(ctx context.Context, courseID string) (*store.CourseContent, error) {
	oid, err := bson.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, store.ErrNotFound
	}
	filter := bson.M{"courseId": oid}

	content := &store.CourseContent{Videos: []store.Video{}, PDFs: []store.PDF{}}

	cur, err := r.videos.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := cur.All(ctx, &content.Videos); err != nil {
		return nil, err
	}

	cur, err = r.pdfs.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := cur.All(ctx, &content.PDFs); err != nil {
		return nil, err
	}
	return content, nil
}
