package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string  `gorm:"size:150;uniqueIndex;not null"`
	Password string  `gorm:"not null"`
	Profile  Profile `gorm:"foreignKey:OwnerID"`
}

// Profile is the one-to-one companion record of a User, created together
// with it at registration.
type Profile struct {
	gorm.Model
	OwnerID uint `gorm:"uniqueIndex;not null"`
	Name    string
	Image   string // avatar URL in object storage
}

type Post struct {
	gorm.Model
	OwnerID     uint   `gorm:"index;not null"`
	Owner       User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"size:50"`
	Image       string // uploaded image URL in object storage
	LikeCount   uint   // denormalized, refreshed from the redis counters
}

type Comment struct {
	gorm.Model
	OwnerID uint   `gorm:"index;not null"`
	Owner   User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	PostID  uint   `gorm:"index;not null"`
	Post    Post   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Body    string `gorm:"type:text;not null"`
}

// Like records one user's endorsement of one post. The (owner, post) pair
// is unique: liking twice is rejected, deleting the row is "unlike".
type Like struct {
	gorm.Model
	OwnerID uint `gorm:"uniqueIndex:idx_like_owner_post;not null"`
	Owner   User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	PostID  uint `gorm:"uniqueIndex:idx_like_owner_post;not null"`
	Post    Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// Categories is the closed set of post category labels. Anything outside
// it is rejected at validation time.
var Categories = []string{
	"Quotes",
	"Animals",
	"Lifestyle",
	"Fun Fact",
	"Creative",
	"Nature",
	"Arts & Entertainmen",
	"Books",
	"Design & Fashion",
	"Education",
	"Food & Beverage",
	"Health/Beauty",
	"Sport",
	"Clothing (Brand)",
	"Automotive",
	"Games/Toys",
	"Musician/Band",
	"Movie",
	"Other",
}

func ValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}
