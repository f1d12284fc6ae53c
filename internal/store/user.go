package store

import "time"

// User roles.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// ProviderLink joins a user to one external identity. The pair is unique
// across the collection.
type ProviderLink struct {
	Provider   string `bson:"provider" json:"provider"`
	ProviderID string `bson:"providerId" json:"providerId"`
}

// Settings holds per-user preferences.
type Settings struct {
	Language string `bson:"language" json:"language"`
	DarkMode bool   `bson:"darkMode" json:"darkMode"`
}

// SocialLink is a profile link the user chose to display.
type SocialLink struct {
	Platform string `bson:"platform" json:"platform"`
	URL      string `bson:"url" json:"url"`
}

// User is a marketplace account. Email can be empty: some providers
// withhold it and signup proceeds anyway.
type User struct {
	ID              string         `bson:"_id" json:"id"`
	Name            string         `bson:"name" json:"name"`
	Email           string         `bson:"email,omitempty" json:"email,omitempty"`
	Avatar          string         `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Role            string         `bson:"role" json:"role"`
	Bio             string         `bson:"bio,omitempty" json:"bio,omitempty"`
	EnrolledCourses []string       `bson:"enrolledCourses" json:"enrolledCourses"`
	CreatedCourses  []string       `bson:"createdCourses" json:"createdCourses"`
	Wishlist        []string       `bson:"wishlist" json:"wishlist"`
	SocialLinks     []SocialLink   `bson:"socialLinks" json:"socialLinks"`
	Settings        Settings       `bson:"settings" json:"settings"`
	Providers       []ProviderLink `bson:"providers" json:"providers"`
	IsDeleted       bool           `bson:"isDeleted" json:"-"`
	DeletedAt       *time.Time     `bson:"deletedAt,omitempty" json:"-"`
	CreatedAt       time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// DefaultSettings for new accounts.
func DefaultSettings() Settings {
	return Settings{Language: "en", DarkMode: false}
}

// HasProvider reports whether the user is linked to (provider, providerID).
func (u *User) HasProvider(provider, providerID string) bool {
	for _, l := range u.Providers {
		if l.Provider == provider && l.ProviderID == providerID {
			return true
		}
	}
	return false
}
