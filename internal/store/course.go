package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Course difficulty levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course is a published or draft marketplace course.
type Course struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string        `bson:"title" json:"title"`
	Slug          string        `bson:"slug" json:"slug"`
	Description   string        `bson:"description,omitempty" json:"description,omitempty"`
	InstructorID  string        `bson:"instructorId" json:"instructorId"`
	Price         float64       `bson:"price" json:"price"`
	DiscountPrice float64       `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	Currency      string        `bson:"currency" json:"currency"`
	Level         string        `bson:"level,omitempty" json:"level,omitempty"`
	Thumbnail     string        `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	IsPublished   bool          `bson:"isPublished" json:"isPublished"`
	PublishedAt   *time.Time    `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	Categories    []string      `bson:"categories" json:"categories"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// EnsureSlug derives the slug from the title when unset.
func (c *Course) EnsureSlug() {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Title)
	}
}

// Validate checks the pricing invariants.
func (c *Course) Validate() error {
	if c.Title == "" {
		return errors.New("course: title is required")
	}
	if c.InstructorID == "" {
		return errors.New("course: instructorId is required")
	}
	if c.Price < 0 {
		return errors.New("course: price must not be negative")
	}
	if c.DiscountPrice < 0 {
		return errors.New("course: discount price must not be negative")
	}
	if c.DiscountPrice > c.Price {
		return errors.New("course: discount price must be less than or equal to the price")
	}
	switch c.Level {
	case "", LevelBeginner, LevelIntermediate, LevelAdvanced:
	default:
		return fmt.Errorf("course: unknown level %q", c.Level)
	}
	return nil
}

// IsFree reports whether the course costs nothing.
func (c *Course) IsFree() bool { return c.Price == 0 }

// FormattedPrice renders "USD 49.99" style display prices.
func (c *Course) FormattedPrice() string {
	cur := c.Currency
	if cur == "" {
		cur = "USD"
	}
	return fmt.Sprintf("%s %.2f", cur, c.Price)
}
