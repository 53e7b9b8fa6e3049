package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"harmonize/models"
)

// Gorm is the MySQL-backed Store used in production.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Migrate creates or updates the schema for every record type.
func (s *Gorm) Migrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "Duplicate entry") {
		return ErrDuplicate
	}
	return err
}

func (s *Gorm) CreateUser(u *models.User) error {
	return translate(s.db.Create(u).Error)
}

func (s *Gorm) UserByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.Preload("Profile").First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Gorm) UserByUsername(username string) (*models.User, error) {
	var u models.User
	err := s.db.Preload("Profile").Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Gorm) CreateProfile(p *models.Profile) error {
	return translate(s.db.Create(p).Error)
}

func (s *Gorm) Profiles() ([]models.Profile, error) {
	var ps []models.Profile
	if err := s.db.Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *Gorm) ProfileByOwner(ownerID uint) (*models.Profile, error) {
	var p models.Profile
	err := s.db.Where("owner_id = ?", ownerID).First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Gorm) CreatePost(p *models.Post) error {
	return translate(s.db.Omit(clause.Associations).Create(p).Error)
}

func (s *Gorm) Posts() ([]models.Post, error) {
	var ps []models.Post
	err := s.db.Preload("Owner.Profile").Preload("Owner").
		Order("created_at DESC, id DESC").Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *Gorm) PostByID(id uint) (*models.Post, error) {
	var p models.Post
	err := s.db.Preload("Owner.Profile").Preload("Owner").First(&p, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Gorm) SavePost(p *models.Post) error {
	return translate(s.db.Omit(clause.Associations).Save(p).Error)
}

func (s *Gorm) DeletePost(id uint) error {
	return translate(s.db.Delete(&models.Post{}, id).Error)
}

func (s *Gorm) CreateComment(c *models.Comment) error {
	return translate(s.db.Omit(clause.Associations).Create(c).Error)
}

func (s *Gorm) Comments() ([]models.Comment, error) {
	var cs []models.Comment
	if err := s.db.Preload("Owner").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *Gorm) CommentByID(id uint) (*models.Comment, error) {
	var c models.Comment
	if err := s.db.Preload("Owner").First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Gorm) SaveComment(c *models.Comment) error {
	return translate(s.db.Omit(clause.Associations).Save(c).Error)
}

func (s *Gorm) DeleteComment(id uint) error {
	return translate(s.db.Delete(&models.Comment{}, id).Error)
}

func (s *Gorm) CreateLike(l *models.Like) error {
	var count int64
	err := s.db.Model(&models.Like{}).
		Where("owner_id = ? AND post_id = ?", l.OwnerID, l.PostID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return translate(s.db.Omit(clause.Associations).Create(l).Error)
}

func (s *Gorm) Likes() ([]models.Like, error) {
	var ls []models.Like
	if err := s.db.Preload("Owner").Find(&ls).Error; err != nil {
		return nil, err
	}
	return ls, nil
}

func (s *Gorm) LikeByID(id uint) (*models.Like, error) {
	var l models.Like
	if err := s.db.Preload("Owner").First(&l, id).Error; err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func (s *Gorm) DeleteLike(id uint) error {
	return translate(s.db.Delete(&models.Like{}, id).Error)
}
