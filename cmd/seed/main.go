// seed loads a small demo catalog into MongoDB for local development.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dropDatabas3/learnhub/internal/config"
	"github.com/dropDatabas3/learnhub/internal/store"
	"github.com/dropDatabas3/learnhub/internal/store/mongo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := mongo.Connect(ctx, cfg.Storage.Mongo.URI, cfg.Storage.Mongo.Database)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("indexes: %v", err)
	}

	now := time.Now().UTC()
	courses := []store.Course{
		{
			Title:        "Go for Backend Developers",
			Description:  "Build production HTTP services in Go, from routing to deployment.",
			InstructorID: "seed-instructor",
			Price:        49.99,
			Currency:     "USD",
			Level:        store.LevelIntermediate,
			IsPublished:  true,
			PublishedAt:  &now,
			Categories:   []string{"programming", "backend"},
		},
		{
			Title:        "MongoDB Data Modeling",
			Description:  "Schema design, indexes and aggregation pipelines that scale.",
			InstructorID: "seed-instructor",
			Price:        39.99,
			DiscountPrice: 24.99,
			Currency:     "USD",
			Level:        store.LevelBeginner,
			IsPublished:  true,
			PublishedAt:  &now,
			Categories:   []string{"databases"},
		},
	}

	for i := range courses {
		c := &courses[i]
		if err := st.Courses.Create(ctx, c); err != nil {
			log.Printf("course %q skipped: %v", c.Title, err)
			continue
		}
		log.Printf("course %q created (%s)", c.Title, c.Slug)

		if err := st.Content.AddVideo(ctx, &store.Video{
			CourseID: c.ID,
			Title:    "Welcome and course tour",
			URL:      "https://cdn.example.com/" + c.Slug + "/intro.mp4",
			Duration: 420,
			Format:   "mp4",
			Captions: []string{"en"},
		}); err != nil {
			log.Printf("video for %q skipped: %v", c.Title, err)
		}
		if err := st.Content.AddPDF(ctx, &store.PDF{
			CourseID:  c.ID,
			Title:     "Course handbook",
			URL:       "https://cdn.example.com/" + c.Slug + "/handbook.pdf",
			PageCount: 24,
			FileType:  "pdf",
		}); err != nil {
			log.Printf("pdf for %q skipped: %v", c.Title, err)
		}
	}

	log.Println("seed complete")
}
