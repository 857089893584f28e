package memory

import (
	"errors"
	"postmanager/domain/entities"
	"sort"
	"sync"
)

var ErrNonExistentData = errors.New("storage: non-existent data")

type Storage struct {
	mu       sync.RWMutex
	posts_pk int
	posts    map[int]entities.Post
}

// NewStorage returns a storage holding the given posts. Ids of seeded posts
// are kept; new posts are numbered after the highest one.
func NewStorage(seed ...entities.Post) *Storage {
	s := &Storage{
		posts_pk: 1,
		posts:    map[int]entities.Post{},
	}
	for _, p := range seed {
		s.posts[p.Id] = p
		if p.Id >= s.posts_pk {
			s.posts_pk = p.Id + 1
		}
	}
	return s
}

func (s *Storage) GetPost(id int) *entities.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found, ok := s.posts[id]
	if !ok {
		return nil
	}
	return entities.NewPost(found.Id, found.UserId, found.Title, found.Body)
}

// GetPosts lists posts in id order.
func (s *Storage) GetPosts() []entities.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]entities.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].Id < posts[j].Id })

	return posts
}

func (s *Storage) StorePost(post *entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.Id = s.posts_pk
	s.posts[post.Id] = *post
	s.posts_pk++
	return nil
}

func (s *Storage) EditPost(post *entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.Id]; !ok {
		return ErrNonExistentData
	}
	s.posts[post.Id] = *post
	return nil
}

func (s *Storage) DeletePost(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return ErrNonExistentData
	}
	delete(s.posts, id)
	return nil
}
