// Package store holds the persistence boundary: a Store interface the
// handlers are given, a gorm/MySQL implementation used in production and
// an in-memory implementation used by tests.
package store

import (
	"errors"

	"harmonize/models"
)

var (
	// ErrNotFound is returned by every *ByID lookup for an unknown key.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicate is returned when a write violates a uniqueness rule,
	// e.g. a second Like on the same post by the same user.
	ErrDuplicate = errors.New("store: duplicate record")
)

type Store interface {
	CreateUser(u *models.User) error
	UserByID(id uint) (*models.User, error)
	UserByUsername(username string) (*models.User, error)

	CreateProfile(p *models.Profile) error
	Profiles() ([]models.Profile, error)
	ProfileByOwner(ownerID uint) (*models.Profile, error)

	CreatePost(p *models.Post) error
	// Posts returns all posts newest-first, with Owner and the owner's
	// Profile populated.
	Posts() ([]models.Post, error)
	PostByID(id uint) (*models.Post, error)
	SavePost(p *models.Post) error
	DeletePost(id uint) error

	CreateComment(c *models.Comment) error
	Comments() ([]models.Comment, error)
	CommentByID(id uint) (*models.Comment, error)
	SaveComment(c *models.Comment) error
	DeleteComment(id uint) error

	CreateLike(l *models.Like) error
	Likes() ([]models.Like, error)
	LikeByID(id uint) (*models.Like, error)
	DeleteLike(id uint) error
}
