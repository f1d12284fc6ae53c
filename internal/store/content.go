package store

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Video is a streamable lecture attached to a course.
type Video struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID bson.ObjectID `bson:"courseId" json:"courseId"`
	Title    string        `bson:"title" json:"title"`
	URL      string        `bson:"url" json:"url"`
	// Duration in seconds.
	Duration int      `bson:"duration" json:"duration"`
	Format   string   `bson:"format,omitempty" json:"format,omitempty"`
	Captions []string `bson:"captions,omitempty" json:"captions,omitempty"`
}

// PDF is a downloadable document attached to a course.
type PDF struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID  bson.ObjectID `bson:"courseId" json:"courseId"`
	Title     string        `bson:"title" json:"title"`
	URL       string        `bson:"url" json:"url"`
	PageCount int           `bson:"pageCount" json:"pageCount"`
	FileSize  int64         `bson:"fileSize,omitempty" json:"fileSize,omitempty"`
	FileType  string        `bson:"fileType,omitempty" json:"fileType,omitempty"`
}

// CourseContent groups everything attached to one course.
type CourseContent struct {
	Videos []Video `json:"videos"`
	PDFs   []PDF   `json:"pdfs"`
}
