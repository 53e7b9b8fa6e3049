package store

import (
	"sort"
	"sync"
	"time"

	"harmonize/models"
)

// Memory is an in-process Store. It backs the handler tests and mirrors
// the lookup/ordering behavior of the gorm implementation, including
// Owner/Profile population on reads.
type Memory struct {
	mu       sync.Mutex
	users    map[uint]models.User
	profiles map[uint]models.Profile
	posts    map[uint]models.Post
	comments map[uint]models.Comment
	likes    map[uint]models.Like
	nextID   map[string]uint
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[uint]models.User),
		profiles: make(map[uint]models.Profile),
		posts:    make(map[uint]models.Post),
		comments: make(map[uint]models.Comment),
		likes:    make(map[uint]models.Like),
		nextID:   make(map[string]uint),
	}
}

func (s *Memory) id(kind string) uint {
	s.nextID[kind]++
	return s.nextID[kind]
}

// userWithProfile resolves the stored user and attaches their profile,
// the same shape Preload("Owner.Profile") yields.
func (s *Memory) userWithProfile(id uint) models.User {
	u := s.users[id]
	for _, p := range s.profiles {
		if p.OwnerID == id {
			u.Profile = p
			break
		}
	}
	return u
}

func (s *Memory) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return ErrDuplicate
		}
	}
	u.ID = s.id("user")
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = *u
	return nil
}

func (s *Memory) UserByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return nil, ErrNotFound
	}
	u := s.userWithProfile(id)
	return &u, nil
}

func (s *Memory) UserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if u.Username == username {
			full := s.userWithProfile(id)
			return &full, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) CreateProfile(p *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.profiles {
		if existing.OwnerID == p.OwnerID {
			return ErrDuplicate
		}
	}
	p.ID = s.id("profile")
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = p.CreatedAt
	s.profiles[p.ID] = *p
	return nil
}

func (s *Memory) Profiles() ([]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps := make([]models.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
	return ps, nil
}

func (s *Memory) ProfileByOwner(ownerID uint) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.OwnerID == ownerID {
			out := p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) CreatePost(p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id("post")
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = p.CreatedAt
	p.Owner = models.User{}
	s.posts[p.ID] = *p
	return nil
}

func (s *Memory) Posts() ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		p.Owner = s.userWithProfile(p.OwnerID)
		ps = append(ps, p)
	}
	// newest first; ID breaks ties within one clock tick
	sort.Slice(ps, func(i, j int) bool {
		if !ps[i].CreatedAt.Equal(ps[j].CreatedAt) {
			return ps[i].CreatedAt.After(ps[j].CreatedAt)
		}
		return ps[i].ID > ps[j].ID
	})
	return ps, nil
}

func (s *Memory) PostByID(id uint) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.Owner = s.userWithProfile(p.OwnerID)
	return &p, nil
}

func (s *Memory) SavePost(p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[p.ID]; !ok {
		return ErrNotFound
	}
	p.UpdatedAt = time.Now()
	stored := *p
	stored.Owner = models.User{}
	s.posts[p.ID] = stored
	return nil
}

func (s *Memory) DeletePost(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.posts, id)
	return nil
}

func (s *Memory) CreateComment(c *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id("comment")
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.UpdatedAt = c.CreatedAt
	c.Owner = models.User{}
	c.Post = models.Post{}
	s.comments[c.ID] = *c
	return nil
}

func (s *Memory) Comments() ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := make([]models.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		c.Owner = s.userWithProfile(c.OwnerID)
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
	return cs, nil
}

func (s *Memory) CommentByID(id uint) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	c.Owner = s.userWithProfile(c.OwnerID)
	return &c, nil
}

func (s *Memory) SaveComment(c *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[c.ID]; !ok {
		return ErrNotFound
	}
	c.UpdatedAt = time.Now()
	stored := *c
	stored.Owner = models.User{}
	stored.Post = models.Post{}
	s.comments[c.ID] = stored
	return nil
}

func (s *Memory) DeleteComment(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.comments, id)
	return nil
}

func (s *Memory) CreateLike(l *models.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.likes {
		if existing.OwnerID == l.OwnerID && existing.PostID == l.PostID {
			return ErrDuplicate
		}
	}
	l.ID = s.id("like")
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	l.UpdatedAt = l.CreatedAt
	l.Owner = models.User{}
	l.Post = models.Post{}
	s.likes[l.ID] = *l
	return nil
}

func (s *Memory) Likes() ([]models.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls := make([]models.Like, 0, len(s.likes))
	for _, l := range s.likes {
		l.Owner = s.userWithProfile(l.OwnerID)
		ls = append(ls, l)
	}
	sort.Slice(ls, func(i, j int) bool { return ls[i].ID < ls[j].ID })
	return ls, nil
}

func (s *Memory) LikeByID(id uint) (*models.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.likes[id]
	if !ok {
		return nil, ErrNotFound
	}
	l.Owner = s.userWithProfile(l.OwnerID)
	return &l, nil
}

func (s *Memory) DeleteLike(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.likes, id)
	return nil
}
