// Package repotest provides in-memory repositories for service and handler tests.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"board/dto"
	"board/models"
	"board/repositories"
)

// Store holds users and posts in memory and vends both repositories over them.
type Store struct {
	mu     sync.Mutex
	users  map[int64]models.User
	posts  map[int64]models.Post
	nextID int64

	// Err, when set, is returned by every call.
	Err error
}

func NewStore() *Store {
	return &Store{users: map[int64]models.User{}, posts: map[int64]models.Post{}}
}

func (s *Store) Posts() *PostRepository { return &PostRepository{s: s} }
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Set returns a repositories.Set backed by this store.
func (s *Store) Set() repositories.Set {
	return repositories.Set{Posts: s.Posts(), Users: s.Users(), Pinger: s}
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Err
}

// AddUser seeds a user and returns it with its id.
func (s *Store) AddUser(name, email string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	u := models.User{ID: s.nextID, Name: name, Email: email, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.users[u.ID] = u
	return u
}

// Post returns the stored row as-is, without the author attached.
func (s *Store) Post(id int64) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	return p, ok
}

func (s *Store) withAuthor(p models.Post) (models.Post, bool) {
	u, ok := s.users[p.UserID]
	if !ok {
		return p, false
	}
	p.User = &u
	return p, true
}

type PostRepository struct{ s *Store }

var _ repositories.PostRepository = (*PostRepository)(nil)

func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.users[p.UserID]; !ok {
		return repositories.ErrNotFound
	}
	r.s.nextID++
	now := time.Now()
	p.ID = r.s.nextID
	p.CreatedAt, p.UpdatedAt = now, now
	row := *p
	row.User = nil
	r.s.posts[p.ID] = row
	return nil
}

func (r *PostRepository) Update(ctx context.Context, p *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	row, ok := r.s.posts[p.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	row.Title, row.Content, row.UpdatedAt = p.Title, p.Content, p.UpdatedAt
	r.s.posts[p.ID] = row
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	row, ok := r.s.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	p, ok := r.s.withAuthor(row)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (r *PostRepository) List(ctx context.Context, page dto.PageRequest) ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	ids := make([]int64, 0, len(r.s.posts))
	for id := range r.s.posts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []models.Post{}
	for i := page.Offset(); i < len(ids) && len(out) < page.Limit(); i++ {
		if p, ok := r.s.withAuthor(r.s.posts[ids[i]]); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type UserRepository struct{ s *Store }

var _ repositories.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return repositories.ErrDuplicate
		}
	}
	r.s.nextID++
	now := time.Now()
	u.ID = r.s.nextID
	u.CreatedAt, u.UpdatedAt = now, now
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}
